package handler

import (
	"mindflow/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck godoc
// @Summary Health check
// @Description Reports that the API is up
// @Tags health
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router / [get]
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Message: "MindFlow API is running"})
}
