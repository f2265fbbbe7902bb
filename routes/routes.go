package routes

import (
	"github.com/gofiber/fiber/v2"

	"gacha-backend/controllers"
	"gacha-backend/middleware"
)

func DataRoutes(app *fiber.App, data *controllers.DataController, telemetrySecret string) {
	api := app.Group("/api")

	api.Get("/health", controllers.Health)
	api.Get("/data/:type", data.GetData)
	api.Post("/data", middleware.RequireTelemetryToken(telemetrySecret), data.ReceiveData)
}

func GachaRoutes(app *fiber.App, gacha *controllers.GachaController) {
	api := app.Group("/api/gacha")

	api.Post("/pull", gacha.Pull)
	api.Get("/weights", gacha.GetWeights)
	api.Get("/characters", gacha.GetCharacters)
	api.Get("/rates", gacha.GetRates)
	api.Get("/badge/:rarity", gacha.GetBadge)
}
