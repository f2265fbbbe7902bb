package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/logger"
	"github.com/google/uuid"

	"gacha-backend/models"
)

var dataFiles = map[string]string{
	"test":   "test_data.json",
	"player": "player_data.json",
	"game":   "game_data.json",
	"config": "config_data.json",
}

// DataController serves the static JSON blobs and accepts client telemetry.
type DataController struct {
	dataPath string
}

func NewDataController(dataPath string) *DataController {
	return &DataController{dataPath: dataPath}
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "message": "Server is running"})
}

// GetData handles GET /api/data/:type.
func (h *DataController) GetData(c *fiber.Ctx) error {
	dataType := c.Params("type")
	fileName, ok := dataFiles[dataType]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown data type: " + dataType})
	}

	b, err := os.ReadFile(filepath.Join(h.dataPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data file not found: " + dataType})
		}
		logger.Errorf("read data file %s: %v", fileName, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read data: " + dataType})
	}

	if !json.Valid(b) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Invalid JSON in file: " + dataType})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(b)
}

// ReceiveData handles POST /api/data: it logs the payload and echoes it back.
func (h *DataController) ReceiveData(c *fiber.Ctx) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 || !json.Valid(body) || bytes.Equal(body, []byte("null")) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No JSON data received"})
	}

	receipt := models.TelemetryReceipt{
		Status: "received",
		ID:     uuid.NewString(),
		Data:   json.RawMessage(append([]byte(nil), body...)),
	}
	if player, ok := c.Locals("player_id").(string); ok {
		logger.Infof("Received data %s from %s: %s", receipt.ID, player, body)
	} else {
		logger.Infof("Received data %s: %s", receipt.ID, body)
	}

	return c.JSON(receipt)
}
