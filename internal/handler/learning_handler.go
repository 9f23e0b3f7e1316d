package handler

import (
	"mindflow/internal/domain"
	"mindflow/internal/dto"
	"mindflow/internal/service"

	"github.com/gofiber/fiber/v2"
)

// LearningHandler serves flashcards and pomodoro sessions.
type LearningHandler struct {
	service service.LearningService
}

func NewLearningHandler(service service.LearningService) *LearningHandler {
	return &LearningHandler{service: service}
}

// ListCards godoc
// @Summary List learning cards
// @Description Ordered by next review. due=true keeps only cards due now.
// @Tags learning
// @Produce json
// @Param user_id query string true "User ID"
// @Param due query bool false "Only due cards"
// @Success 200 {array} dto.LearningCardResponse
// @Router /learning/cards [get]
func (h *LearningHandler) ListCards(c *fiber.Ctx) error {
	cards, err := h.service.ListCards(c.UserContext(), validatedUserID(c), c.QueryBool("due", false))
	if err != nil {
		return err
	}
	return c.JSON(cards)
}

// CreateCard godoc
// @Summary Create a learning card
// @Tags learning
// @Accept json
// @Produce json
// @Param card body dto.CreateCardRequest true "Card"
// @Success 200 {object} dto.LearningCardResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /learning/cards [post]
func (h *LearningHandler) CreateCard(c *fiber.Ctx) error {
	var req dto.CreateCardRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	card, err := h.service.CreateCard(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(card)
}

// ReviewCard godoc
// @Summary Store a card's new review schedule
// @Tags learning
// @Accept json
// @Produce json
// @Param id path string true "Card ID"
// @Param review body dto.ReviewCardRequest true "Schedule"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /learning/cards/{id}/review [put]
func (h *LearningHandler) ReviewCard(c *fiber.Ctx) error {
	var req dto.ReviewCardRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	if err := h.service.ReviewCard(c.UserContext(), c.Params("id"), &req); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// ListPomodoros godoc
// @Summary List pomodoro sessions
// @Tags pomodoro
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {array} dto.PomodoroSessionResponse
// @Router /pomodoro/sessions [get]
func (h *LearningHandler) ListPomodoros(c *fiber.Ctx) error {
	sessions, err := h.service.ListPomodoros(c.UserContext(), validatedUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(sessions)
}

// CreatePomodoro godoc
// @Summary Record a pomodoro session
// @Tags pomodoro
// @Accept json
// @Produce json
// @Param session body dto.CreatePomodoroRequest true "Session"
// @Success 200 {object} dto.PomodoroSessionResponse
// @Router /pomodoro/sessions [post]
func (h *LearningHandler) CreatePomodoro(c *fiber.Ctx) error {
	var req dto.CreatePomodoroRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	session, err := h.service.CreatePomodoro(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(session)
}
