package controllers

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/logger"

	"gacha-backend/badge"
	"gacha-backend/gacha"
)

type PullRequest struct {
	Count *int `json:"count"`
}

type GachaController struct {
	service *gacha.Service
}

func NewGachaController(service *gacha.Service) *GachaController {
	return &GachaController{service: service}
}

// Pull handles POST /api/gacha/pull. A missing body or count means ten draws.
func (h *GachaController) Pull(c *fiber.Ctx) error {
	count := gacha.DefaultPullCount
	if len(bytes.TrimSpace(c.Body())) > 0 {
		var req PullRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
		}
		if req.Count != nil {
			count = *req.Count
		}
	}

	result, err := h.service.Pull(c.UserContext(), count)
	if err != nil {
		if errors.Is(err, gacha.ErrInvalidCount) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		logger.Errorf("gacha pull failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(result)
}

// GetWeights handles GET /api/gacha/weights.
func (h *GachaController) GetWeights(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"weights": h.service.Weights()})
}

// GetCharacters handles GET /api/gacha/characters.
func (h *GachaController) GetCharacters(c *fiber.Ctx) error {
	characters, err := h.service.Catalog(c.UserContext())
	if err != nil {
		logger.Errorf("list characters failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"characters": characters})
}

// GetRates handles GET /api/gacha/rates.
func (h *GachaController) GetRates(c *fiber.Ctx) error {
	rates, err := h.service.Rates(c.UserContext())
	if err != nil {
		logger.Errorf("gacha rates failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"total_weight": h.service.Weights().Total(),
		"rates":        rates,
	})
}

// GetBadge handles GET /api/gacha/badge/:rarity.
func (h *GachaController) GetBadge(c *fiber.Ctx) error {
	tier, err := c.ParamsInt("rarity")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid rarity"})
	}
	if _, ok := h.service.Weights()[tier]; !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown rarity"})
	}

	var buf bytes.Buffer
	if err := badge.Render(&buf, tier); err != nil {
		logger.Errorf("render badge for rarity %d: %v", tier, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to render badge"})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(buf.Bytes())
}
