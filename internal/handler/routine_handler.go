package handler

import (
	"mindflow/internal/domain"
	"mindflow/internal/dto"
	"mindflow/internal/service"

	"github.com/gofiber/fiber/v2"
)

type RoutineHandler struct {
	service service.RoutineService
}

func NewRoutineHandler(service service.RoutineService) *RoutineHandler {
	return &RoutineHandler{service: service}
}

// ListRoutines godoc
// @Summary List routines
// @Tags routines
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {array} dto.RoutineResponse
// @Router /routines [get]
func (h *RoutineHandler) ListRoutines(c *fiber.Ctx) error {
	routines, err := h.service.ListRoutines(c.UserContext(), validatedUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(routines)
}

// CreateRoutine godoc
// @Summary Create a routine
// @Tags routines
// @Accept json
// @Produce json
// @Param routine body dto.CreateRoutineRequest true "Routine"
// @Success 200 {object} dto.RoutineResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /routines [post]
func (h *RoutineHandler) CreateRoutine(c *fiber.Ctx) error {
	var req dto.CreateRoutineRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	routine, err := h.service.CreateRoutine(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(routine)
}

// UpdateRoutine godoc
// @Summary Update a routine's name or habits
// @Tags routines
// @Accept json
// @Produce json
// @Param id path string true "Routine ID"
// @Param update body dto.UpdateRoutineRequest true "Fields to change"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /routines/{id} [put]
func (h *RoutineHandler) UpdateRoutine(c *fiber.Ctx) error {
	var req dto.UpdateRoutineRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	if err := h.service.UpdateRoutine(c.UserContext(), c.Params("id"), &req); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// CompleteRoutine godoc
// @Summary Record completed habits for a day
// @Tags routines
// @Accept json
// @Produce json
// @Param id path string true "Routine ID"
// @Param completion body dto.CompleteRoutineRequest true "Completion"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /routines/{id}/complete [post]
func (h *RoutineHandler) CompleteRoutine(c *fiber.Ctx) error {
	var req dto.CompleteRoutineRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	if err := h.service.CompleteHabits(c.UserContext(), c.Params("id"), &req); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
