package service

import (
	"context"
	"errors"
	"strings"

	"mindflow/internal/domain"
	"mindflow/internal/dto"
	"mindflow/internal/repository"
	"mindflow/internal/util"
)

// RoutineService manages habit-stacking routines.
type RoutineService interface {
	CreateRoutine(ctx context.Context, req *dto.CreateRoutineRequest) (*dto.RoutineResponse, error)
	ListRoutines(ctx context.Context, userID string) ([]dto.RoutineResponse, error)
	UpdateRoutine(ctx context.Context, routineID string, req *dto.UpdateRoutineRequest) error
	CompleteHabits(ctx context.Context, routineID string, req *dto.CompleteRoutineRequest) error
}

type routineService struct {
	repo repository.RoutineRepository
}

func NewRoutineService(repo repository.RoutineRepository) RoutineService {
	return &routineService{repo: repo}
}

func (s *routineService) CreateRoutine(ctx context.Context, req *dto.CreateRoutineRequest) (*dto.RoutineResponse, error) {
	routine := domain.NewRoutine(util.NewULID(), req.UserID, req.Name)
	if req.Habits != nil {
		routine.Habits = toDomainHabits(req.Habits)
	}
	if err := routine.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.CreateRoutine(ctx, routine); err != nil {
		return nil, domain.NewInternalError("Failed to save routine", err)
	}
	resp := toRoutineResponse(routine)
	return &resp, nil
}

func (s *routineService) ListRoutines(ctx context.Context, userID string) ([]dto.RoutineResponse, error) {
	routines, err := s.repo.ListRoutinesByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list routines", err)
	}
	out := make([]dto.RoutineResponse, 0, len(routines))
	for _, r := range routines {
		out = append(out, toRoutineResponse(r))
	}
	return out, nil
}

func (s *routineService) UpdateRoutine(ctx context.Context, routineID string, req *dto.UpdateRoutineRequest) error {
	update := domain.RoutineUpdate{Name: req.Name}
	if req.Habits != nil {
		update.Habits = toDomainHabits(req.Habits)
	}
	if update.IsEmpty() {
		return domain.NewInvalidInputError("No fields to update")
	}
	if err := update.Validate(); err != nil {
		return err
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		update.Name = &name
	}

	if err := s.repo.UpdateRoutine(ctx, routineID, update); err != nil {
		return routineWriteError(routineID, err)
	}
	return nil
}

func (s *routineService) CompleteHabits(ctx context.Context, routineID string, req *dto.CompleteRoutineRequest) error {
	completion := domain.HabitCompletion{Date: req.Date, HabitIDs: req.HabitIDs}
	if err := completion.Validate(); err != nil {
		return err
	}
	if err := s.repo.SetCompletion(ctx, routineID, completion); err != nil {
		return routineWriteError(routineID, err)
	}
	return nil
}

func routineWriteError(routineID string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewNotFoundError("Routine", routineID)
	}
	return domain.NewInternalError("Failed to update routine", err)
}

func toDomainHabits(habits []dto.HabitDTO) []domain.Habit {
	out := make([]domain.Habit, 0, len(habits))
	for _, h := range habits {
		out = append(out, domain.Habit{
			ID:           h.ID,
			Name:         h.Name,
			Anchor:       h.Anchor,
			StackedAfter: h.StackedAfter,
			Time:         h.Time,
		})
	}
	return out
}

func toRoutineResponse(r *domain.Routine) dto.RoutineResponse {
	habits := make([]dto.HabitDTO, 0, len(r.Habits))
	for _, h := range r.Habits {
		habits = append(habits, dto.HabitDTO{
			ID:           h.ID,
			Name:         h.Name,
			Anchor:       h.Anchor,
			StackedAfter: h.StackedAfter,
			Time:         h.Time,
		})
	}
	return dto.RoutineResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Habits:      habits,
		Completions: r.Completions,
	}
}
