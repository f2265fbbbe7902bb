package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/logger"
	"github.com/redis/go-redis/v9"

	"gacha-backend/config"
	"gacha-backend/controllers"
	"gacha-backend/database"
	"gacha-backend/gacha"
	"gacha-backend/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}
	defer logger.Init("gacha-backend", cfg.LogVerbose, false, io.Discard).Close()

	weights, err := config.LoadWeights(cfg.WeightsFile)
	if err != nil {
		logger.Fatalf("Failed to load rarity weights: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.ConnectDB(ctx, cfg.DatabaseURL, database.PoolOptions{
		PoolSize:    cfg.DBPoolSize,
		ConnMaxIdle: cfg.DBConnMaxIdle,
	})
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	var provider gacha.CatalogProvider = gacha.NewPostgresRepository(db, cfg.PoolType)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, PoolSize: cfg.DBPoolSize})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warningf("Redis at %s not reachable, catalog cache will fall back to the database: %v", cfg.RedisAddr, err)
		}
		provider = gacha.NewCachedCatalog(rdb, provider, cfg.PoolType, cfg.CatalogCacheTTL)
		logger.Infof("Catalog cache enabled (ttl %s)", cfg.CatalogCacheTTL)
	}

	service, err := gacha.NewService(&gacha.ServiceConfig{
		Provider: provider,
		Weights:  weights,
		MaxPull:  cfg.MaxPull,
	})
	if err != nil {
		logger.Fatalf("Failed to create gacha service: %v", err)
	}

	app := fiber.New(fiber.Config{AppName: "gacha-backend"})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Setup routes
	routes.DataRoutes(app, controllers.NewDataController(cfg.JSONDataPath), cfg.TelemetrySecret)
	routes.GachaRoutes(app, controllers.NewGachaController(service))

	go func() {
		<-ctx.Done()
		logger.Info("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			logger.Errorf("Server shutdown: %v", err)
		}
	}()

	logger.Infof("Server running on port %s with rarity weights %v", cfg.Port, weights)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}
