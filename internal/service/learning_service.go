package service

import (
	"context"
	"errors"
	"time"

	"mindflow/internal/domain"
	"mindflow/internal/dto"
	"mindflow/internal/repository"
	"mindflow/internal/util"
)

// LearningService manages flashcards and pomodoro sessions. Review schedules are computed
// by the client; the service only stores them.
type LearningService interface {
	CreateCard(ctx context.Context, req *dto.CreateCardRequest) (*dto.LearningCardResponse, error)
	ListCards(ctx context.Context, userID string, dueOnly bool) ([]dto.LearningCardResponse, error)
	ReviewCard(ctx context.Context, cardID string, req *dto.ReviewCardRequest) error
	CreatePomodoro(ctx context.Context, req *dto.CreatePomodoroRequest) (*dto.PomodoroSessionResponse, error)
	ListPomodoros(ctx context.Context, userID string) ([]dto.PomodoroSessionResponse, error)
}

type learningService struct {
	repo repository.LearningRepository
	now  func() time.Time
}

func NewLearningService(repo repository.LearningRepository) LearningService {
	return &learningService{repo: repo, now: time.Now}
}

func (s *learningService) CreateCard(ctx context.Context, req *dto.CreateCardRequest) (*dto.LearningCardResponse, error) {
	card := domain.NewLearningCard(util.NewULID(), req.UserID, req.Front, req.Back)
	if err := card.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.CreateCard(ctx, card); err != nil {
		return nil, domain.NewInternalError("Failed to save learning card", err)
	}
	resp := toLearningCardResponse(card)
	return &resp, nil
}

func (s *learningService) ListCards(ctx context.Context, userID string, dueOnly bool) ([]dto.LearningCardResponse, error) {
	var dueBefore *time.Time
	if dueOnly {
		now := s.now().UTC()
		dueBefore = &now
	}
	cards, err := s.repo.ListCards(ctx, userID, dueBefore)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list learning cards", err)
	}
	out := make([]dto.LearningCardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, toLearningCardResponse(c))
	}
	return out, nil
}

func (s *learningService) ReviewCard(ctx context.Context, cardID string, req *dto.ReviewCardRequest) error {
	review := domain.CardReview{
		Interval:   req.Interval,
		EaseFactor: req.EaseFactor,
		NextReview: req.NextReview.UTC(),
	}
	if err := review.Validate(); err != nil {
		return err
	}
	if err := s.repo.UpdateCardReview(ctx, cardID, review); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewNotFoundError("Card", cardID)
		}
		return domain.NewInternalError("Failed to update learning card", err)
	}
	return nil
}

func (s *learningService) CreatePomodoro(ctx context.Context, req *dto.CreatePomodoroRequest) (*dto.PomodoroSessionResponse, error) {
	session := domain.NewPomodoroSession(util.NewULID(), req.UserID, req.Duration, req.Task)
	if err := session.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.CreatePomodoro(ctx, session); err != nil {
		return nil, domain.NewInternalError("Failed to save pomodoro session", err)
	}
	resp := toPomodoroResponse(session)
	return &resp, nil
}

func (s *learningService) ListPomodoros(ctx context.Context, userID string) ([]dto.PomodoroSessionResponse, error) {
	sessions, err := s.repo.ListPomodoros(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list pomodoro sessions", err)
	}
	out := make([]dto.PomodoroSessionResponse, 0, len(sessions))
	for _, p := range sessions {
		out = append(out, toPomodoroResponse(p))
	}
	return out, nil
}

func toLearningCardResponse(c *domain.LearningCard) dto.LearningCardResponse {
	return dto.LearningCardResponse{
		ID:         c.ID,
		UserID:     c.UserID,
		Front:      c.Front,
		Back:       c.Back,
		NextReview: c.NextReview,
		Interval:   c.Interval,
		EaseFactor: c.EaseFactor,
	}
}

func toPomodoroResponse(p *domain.PomodoroSession) dto.PomodoroSessionResponse {
	return dto.PomodoroSessionResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Duration:  p.Duration,
		Task:      p.Task,
		Date:      p.Date,
		Completed: p.Completed,
	}
}
