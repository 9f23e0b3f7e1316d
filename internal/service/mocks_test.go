package service

import (
	"context"
	"time"

	"mindflow/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- MockJhanaRepository ---
type MockJhanaRepository struct {
	mock.Mock
}

func (m *MockJhanaRepository) CreateSession(ctx context.Context, session *domain.JhanaSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockJhanaRepository) ListSessionsByUser(ctx context.Context, userID string) ([]*domain.JhanaSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.JhanaSession), args.Error(1)
}

func (m *MockJhanaRepository) GetStatsByUser(ctx context.Context, userID string) (domain.JhanaStats, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.JhanaStats), args.Error(1)
}

// --- MockLearningRepository ---
type MockLearningRepository struct {
	mock.Mock
}

func (m *MockLearningRepository) CreateCard(ctx context.Context, card *domain.LearningCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockLearningRepository) ListCards(ctx context.Context, userID string, dueBefore *time.Time) ([]*domain.LearningCard, error) {
	args := m.Called(ctx, userID, dueBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LearningCard), args.Error(1)
}

func (m *MockLearningRepository) CountCards(ctx context.Context, userID string, dueBefore *time.Time) (int64, error) {
	args := m.Called(ctx, userID, dueBefore)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLearningRepository) UpdateCardReview(ctx context.Context, cardID string, review domain.CardReview) error {
	args := m.Called(ctx, cardID, review)
	return args.Error(0)
}

func (m *MockLearningRepository) CreatePomodoro(ctx context.Context, session *domain.PomodoroSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockLearningRepository) ListPomodoros(ctx context.Context, userID string) ([]*domain.PomodoroSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PomodoroSession), args.Error(1)
}

func (m *MockLearningRepository) CountPomodoros(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// --- MockRoutineRepository ---
type MockRoutineRepository struct {
	mock.Mock
}

func (m *MockRoutineRepository) CreateRoutine(ctx context.Context, routine *domain.Routine) error {
	args := m.Called(ctx, routine)
	return args.Error(0)
}

func (m *MockRoutineRepository) ListRoutinesByUser(ctx context.Context, userID string) ([]*domain.Routine, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Routine), args.Error(1)
}

func (m *MockRoutineRepository) CountRoutines(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoutineRepository) UpdateRoutine(ctx context.Context, routineID string, update domain.RoutineUpdate) error {
	args := m.Called(ctx, routineID, update)
	return args.Error(0)
}

func (m *MockRoutineRepository) SetCompletion(ctx context.Context, routineID string, completion domain.HabitCompletion) error {
	args := m.Called(ctx, routineID, completion)
	return args.Error(0)
}

// --- MockTextGenerator ---
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, systemPrompt, prompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, prompt)
	return args.String(0), args.Error(1)
}

// --- MockMessageGenerator ---
type MockMessageGenerator struct {
	mock.Mock
}

func (m *MockMessageGenerator) GenerateMessage(ctx context.Context, ranked []string, scores domain.ModuleScores, answers []domain.AssessmentAnswer) string {
	args := m.Called(ctx, ranked, scores, answers)
	return args.String(0)
}
