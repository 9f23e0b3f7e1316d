package handler

import (
	"mindflow/internal/domain"
	"mindflow/internal/dto"
	"mindflow/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AssessmentHandler handles assessment submission and user lookup
type AssessmentHandler struct {
	service service.AssessmentService
}

// NewAssessmentHandler creates a new AssessmentHandler instance
func NewAssessmentHandler(service service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{service: service}
}

// SubmitAssessment godoc
// @Summary Submit the onboarding assessment
// @Description Scores the answers, ranks the wellness modules, generates a coaching message and creates a user
// @Tags assessment
// @Accept json
// @Produce json
// @Param answers body []dto.AssessmentAnswerRequest true "Assessment answers"
// @Success 200 {object} dto.SubmitAssessmentResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 429 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /assessment/submit [post]
func (h *AssessmentHandler) SubmitAssessment(c *fiber.Ctx) error {
	var req []dto.AssessmentAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.SubmitAssessment(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetUser godoc
// @Summary Get a user
// @Description Returns a user created by an assessment submission
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /users/{id} [get]
func (h *AssessmentHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.service.GetUser(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(user)
}
