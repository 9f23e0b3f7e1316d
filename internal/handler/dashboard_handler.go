package handler

import (
	"mindflow/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetDashboard godoc
// @Summary Progress summary across modules
// @Tags dashboard
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	summary, err := h.service.GetSummary(c.UserContext(), validatedUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(summary)
}
