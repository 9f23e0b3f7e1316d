package handler

import (
	"mindflow/internal/domain"
	"mindflow/internal/dto"
	"mindflow/internal/middleware"
	"mindflow/internal/service"

	"github.com/gofiber/fiber/v2"
)

type JhanaHandler struct {
	service service.JhanaService
}

func NewJhanaHandler(service service.JhanaService) *JhanaHandler {
	return &JhanaHandler{service: service}
}

// CreateSession godoc
// @Summary Record a meditation session
// @Tags jhana
// @Accept json
// @Produce json
// @Param session body dto.CreateJhanaSessionRequest true "Session"
// @Success 200 {object} dto.JhanaSessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /jhana/sessions [post]
func (h *JhanaHandler) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateJhanaSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	session, err := h.service.CreateSession(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(session)
}

// ListSessions godoc
// @Summary List meditation sessions
// @Description Newest first, at most 1000
// @Tags jhana
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {array} dto.JhanaSessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /jhana/sessions [get]
func (h *JhanaHandler) ListSessions(c *fiber.Ctx) error {
	sessions, err := h.service.ListSessions(c.UserContext(), validatedUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(sessions)
}

// GetStats godoc
// @Summary Meditation totals
// @Tags jhana
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} dto.JhanaStatsResponse
// @Router /jhana/stats [get]
func (h *JhanaHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats(c.UserContext(), validatedUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func validatedUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(middleware.ValidatedUserIDKey).(string)
	return userID
}
