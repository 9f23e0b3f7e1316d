package handler_test

import (
	"context"

	"mindflow/internal/domain"
	"mindflow/internal/dto"

	"github.com/stretchr/testify/mock"
)

type MockAssessmentService struct {
	mock.Mock
}

func (m *MockAssessmentService) Analyze(ctx context.Context, answers []domain.AssessmentAnswer) *domain.RecommendationResult {
	args := m.Called(ctx, answers)
	return args.Get(0).(*domain.RecommendationResult)
}

func (m *MockAssessmentService) SubmitAssessment(ctx context.Context, answers []dto.AssessmentAnswerRequest) (*dto.SubmitAssessmentResponse, error) {
	args := m.Called(ctx, answers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SubmitAssessmentResponse), args.Error(1)
}

func (m *MockAssessmentService) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

type MockJhanaService struct {
	mock.Mock
}

func (m *MockJhanaService) CreateSession(ctx context.Context, req *dto.CreateJhanaSessionRequest) (*dto.JhanaSessionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.JhanaSessionResponse), args.Error(1)
}

func (m *MockJhanaService) ListSessions(ctx context.Context, userID string) ([]dto.JhanaSessionResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.JhanaSessionResponse), args.Error(1)
}

func (m *MockJhanaService) GetStats(ctx context.Context, userID string) (*dto.JhanaStatsResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.JhanaStatsResponse), args.Error(1)
}

type MockLearningService struct {
	mock.Mock
}

func (m *MockLearningService) CreateCard(ctx context.Context, req *dto.CreateCardRequest) (*dto.LearningCardResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LearningCardResponse), args.Error(1)
}

func (m *MockLearningService) ListCards(ctx context.Context, userID string, dueOnly bool) ([]dto.LearningCardResponse, error) {
	args := m.Called(ctx, userID, dueOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.LearningCardResponse), args.Error(1)
}

func (m *MockLearningService) ReviewCard(ctx context.Context, cardID string, req *dto.ReviewCardRequest) error {
	args := m.Called(ctx, cardID, req)
	return args.Error(0)
}

func (m *MockLearningService) CreatePomodoro(ctx context.Context, req *dto.CreatePomodoroRequest) (*dto.PomodoroSessionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PomodoroSessionResponse), args.Error(1)
}

func (m *MockLearningService) ListPomodoros(ctx context.Context, userID string) ([]dto.PomodoroSessionResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.PomodoroSessionResponse), args.Error(1)
}

type MockRoutineService struct {
	mock.Mock
}

func (m *MockRoutineService) CreateRoutine(ctx context.Context, req *dto.CreateRoutineRequest) (*dto.RoutineResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RoutineResponse), args.Error(1)
}

func (m *MockRoutineService) ListRoutines(ctx context.Context, userID string) ([]dto.RoutineResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RoutineResponse), args.Error(1)
}

func (m *MockRoutineService) UpdateRoutine(ctx context.Context, routineID string, req *dto.UpdateRoutineRequest) error {
	args := m.Called(ctx, routineID, req)
	return args.Error(0)
}

func (m *MockRoutineService) CompleteHabits(ctx context.Context, routineID string, req *dto.CompleteRoutineRequest) error {
	args := m.Called(ctx, routineID, req)
	return args.Error(0)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetSummary(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DashboardResponse), args.Error(1)
}
