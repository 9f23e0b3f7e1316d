package service

import (
	"context"

	"mindflow/internal/domain"
	"mindflow/internal/dto"
	"mindflow/internal/repository"
	"mindflow/internal/util"
)

// JhanaService records meditation sessions and summarises them.
type JhanaService interface {
	CreateSession(ctx context.Context, req *dto.CreateJhanaSessionRequest) (*dto.JhanaSessionResponse, error)
	ListSessions(ctx context.Context, userID string) ([]dto.JhanaSessionResponse, error)
	GetStats(ctx context.Context, userID string) (*dto.JhanaStatsResponse, error)
}

type jhanaService struct {
	repo repository.JhanaRepository
}

func NewJhanaService(repo repository.JhanaRepository) JhanaService {
	return &jhanaService{repo: repo}
}

func (s *jhanaService) CreateSession(ctx context.Context, req *dto.CreateJhanaSessionRequest) (*dto.JhanaSessionResponse, error) {
	session := domain.NewJhanaSession(util.NewULID(), req.UserID, req.Duration, req.Type)
	if err := session.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, domain.NewInternalError("Failed to save jhana session", err)
	}
	resp := toJhanaSessionResponse(session)
	return &resp, nil
}

func (s *jhanaService) ListSessions(ctx context.Context, userID string) ([]dto.JhanaSessionResponse, error) {
	sessions, err := s.repo.ListSessionsByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list jhana sessions", err)
	}
	out := make([]dto.JhanaSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, toJhanaSessionResponse(session))
	}
	return out, nil
}

func (s *jhanaService) GetStats(ctx context.Context, userID string) (*dto.JhanaStatsResponse, error) {
	stats, err := s.repo.GetStatsByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to compute jhana stats", err)
	}
	return &dto.JhanaStatsResponse{
		TotalSessions: stats.TotalSessions,
		TotalMinutes:  stats.TotalMinutes,
	}, nil
}

func toJhanaSessionResponse(s *domain.JhanaSession) dto.JhanaSessionResponse {
	return dto.JhanaSessionResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		Duration:  s.Duration,
		Type:      s.Type,
		Date:      s.Date,
		Completed: s.Completed,
	}
}
