package service

import (
	"context"
	"time"

	"mindflow/internal/domain"
	"mindflow/internal/dto"
	"mindflow/internal/repository"

	"golang.org/x/sync/errgroup"
)

// DashboardService builds the cross-module progress summary.
type DashboardService interface {
	GetSummary(ctx context.Context, userID string) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	jhanaRepo    repository.JhanaRepository
	learningRepo repository.LearningRepository
	routineRepo  repository.RoutineRepository
	now          func() time.Time
}

func NewDashboardService(
	jhanaRepo repository.JhanaRepository,
	learningRepo repository.LearningRepository,
	routineRepo repository.RoutineRepository,
) DashboardService {
	return &dashboardService{
		jhanaRepo:    jhanaRepo,
		learningRepo: learningRepo,
		routineRepo:  routineRepo,
		now:          time.Now,
	}
}

// GetSummary queries every store concurrently; the first error cancels the rest.
func (s *dashboardService) GetSummary(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	resp := &dto.DashboardResponse{UserID: userID}
	now := s.now().UTC()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.jhanaRepo.GetStatsByUser(gctx, userID)
		if err != nil {
			return err
		}
		resp.Jhana = dto.JhanaStatsResponse{TotalSessions: stats.TotalSessions, TotalMinutes: stats.TotalMinutes}
		return nil
	})
	g.Go(func() error {
		n, err := s.learningRepo.CountCards(gctx, userID, nil)
		resp.TotalCards = n
		return err
	})
	g.Go(func() error {
		n, err := s.learningRepo.CountCards(gctx, userID, &now)
		resp.DueCards = n
		return err
	})
	g.Go(func() error {
		n, err := s.learningRepo.CountPomodoros(gctx, userID)
		resp.PomodoroSessions = n
		return err
	})
	g.Go(func() error {
		n, err := s.routineRepo.CountRoutines(gctx, userID)
		resp.Routines = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("Failed to build dashboard", err)
	}
	return resp, nil
}
