package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"mindflow/internal/config"
	"mindflow/internal/domain"
	"mindflow/internal/dto"
	"mindflow/internal/handler"
	"mindflow/internal/logger"
	"mindflow/internal/middleware"
	"mindflow/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "error"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

type testServer struct {
	app        *fiber.App
	assessment *MockAssessmentService
	jhana      *MockJhanaService
	learning   *MockLearningService
	routine    *MockRoutineService
	dashboard  *MockDashboardService
}

func newTestServer(limiter service.RateLimiter) *testServer {
	s := &testServer{
		app:        fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()}),
		assessment: new(MockAssessmentService),
		jhana:      new(MockJhanaService),
		learning:   new(MockLearningService),
		routine:    new(MockRoutineService),
		dashboard:  new(MockDashboardService),
	}
	if limiter == nil {
		limiter = service.NewNoopLimiter()
	}
	handler.RegisterRoutes(s.app.Group("/api"), handler.Handlers{
		Assessment: handler.NewAssessmentHandler(s.assessment),
		Jhana:      handler.NewJhanaHandler(s.jhana),
		Learning:   handler.NewLearningHandler(s.learning),
		Routine:    handler.NewRoutineHandler(s.routine),
		Dashboard:  handler.NewDashboardHandler(s.dashboard),
	}, limiter)
	return s
}

func (s *testServer) do(t *testing.T, method, target, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(nil)
	resp, body := s.do(t, "GET", "/api/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "MindFlow API is running", body["message"])
}

func TestSubmitAssessment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s := newTestServer(nil)
		s.assessment.On("SubmitAssessment", mock.Anything, []dto.AssessmentAnswerRequest{
			{QuestionID: 1, OptionID: "a", Modules: []string{"jhana"}},
		}).Return(&dto.SubmitAssessmentResponse{
			UserID:             "01HZX3J9Q5K7W2M8N4P6R0T1V3",
			RecommendedModules: []string{"jhana", "learning", "routine"},
			AIMessage:          "Begin with breath.",
			ModuleScores:       map[string]int{"jhana": 1, "learning": 0, "routine": 0},
		}, nil).Once()

		resp, body := s.do(t, "POST", "/api/assessment/submit", `[{"question_id":1,"option_id":"a","modules":["jhana"]}]`)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Begin with breath.", body["ai_message"])
		assert.Equal(t, []interface{}{"jhana", "learning", "routine"}, body["recommended_modules"])
		s.assessment.AssertExpectations(t)
	})

	t.Run("schema violation", func(t *testing.T) {
		s := newTestServer(nil)
		resp, body := s.do(t, "POST", "/api/assessment/submit", `[{"question_id":"x","option_id":"a"}]`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", body["code"])
		s.assessment.AssertNotCalled(t, "SubmitAssessment", mock.Anything, mock.Anything)
	})

	t.Run("persistence failure", func(t *testing.T) {
		s := newTestServer(nil)
		s.assessment.On("SubmitAssessment", mock.Anything, mock.Anything).
			Return(nil, domain.NewInternalError("Failed to save assessment", nil)).Once()

		resp, body := s.do(t, "POST", "/api/assessment/submit", `[]`)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "INTERNAL_ERROR", body["code"])
	})

	t.Run("rate limited", func(t *testing.T) {
		s := newTestServer(rejectAll{})
		resp, body := s.do(t, "POST", "/api/assessment/submit", `[]`)

		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
		assert.Equal(t, "RATE_LIMITED", body["code"])
	})
}

type rejectAll struct{}

func (rejectAll) Allow(_ context.Context, _, _ string) error { return domain.NewRateLimitedError(0) }

func TestGetUser(t *testing.T) {
	s := newTestServer(nil)
	s.assessment.On("GetUser", mock.Anything, "ghost").Return(nil, domain.NewNotFoundError("User", "ghost")).Once()

	resp, body := s.do(t, "GET", "/api/users/ghost", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestJhanaRoutes(t *testing.T) {
	s := newTestServer(nil)
	s.jhana.On("GetStats", mock.Anything, "u1").Return(&dto.JhanaStatsResponse{TotalSessions: 3, TotalMinutes: 45}, nil).Once()
	s.jhana.On("CreateSession", mock.Anything, &dto.CreateJhanaSessionRequest{UserID: "u1", Duration: 600, Type: "breath"}).
		Return(&dto.JhanaSessionResponse{ID: "s1", UserID: "u1", Duration: 600, Type: "breath", Completed: true}, nil).Once()

	resp, body := s.do(t, "GET", "/api/jhana/stats?user_id=u1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(45), body["total_minutes"])

	resp, body = s.do(t, "POST", "/api/jhana/sessions", `{"user_id":"u1","duration":600,"type":"breath"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["completed"])

	resp, _ = s.do(t, "GET", "/api/jhana/sessions", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	s.jhana.AssertExpectations(t)
}

func TestLearningRoutes(t *testing.T) {
	s := newTestServer(nil)
	s.learning.On("ListCards", mock.Anything, "u1", true).Return([]dto.LearningCardResponse{{ID: "c1"}}, nil).Once()
	s.learning.On("ReviewCard", mock.Anything, "c404", mock.Anything).Return(domain.NewNotFoundError("Card", "c404")).Once()
	s.learning.On("ReviewCard", mock.Anything, "c1", mock.Anything).Return(nil).Once()

	resp, _ := s.do(t, "GET", "/api/learning/cards?user_id=u1&due=true", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	review := `{"interval":3,"ease_factor":2.6,"next_review":"2024-03-04T00:00:00Z"}`
	resp, _ = s.do(t, "PUT", "/api/learning/cards/c404/review", review)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body := s.do(t, "PUT", "/api/learning/cards/c1/review", review)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	s.learning.AssertExpectations(t)
}

func TestRoutineRoutes(t *testing.T) {
	s := newTestServer(nil)
	s.routine.On("UpdateRoutine", mock.Anything, "r1", mock.Anything).Return(domain.NewInvalidInputError("No fields to update")).Once()
	s.routine.On("CompleteHabits", mock.Anything, "r1", &dto.CompleteRoutineRequest{Date: "2024-03-01", HabitIDs: []string{"h1"}}).Return(nil).Once()

	resp, body := s.do(t, "PUT", "/api/routines/r1", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_INPUT", body["code"])

	resp, body = s.do(t, "POST", "/api/routines/r1/complete", `{"date":"2024-03-01","habit_ids":["h1"]}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	resp, _ = s.do(t, "POST", "/api/routines", `{bad json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	s.routine.AssertExpectations(t)
}

func TestDashboard(t *testing.T) {
	s := newTestServer(nil)
	s.dashboard.On("GetSummary", mock.Anything, "u1").Return(&dto.DashboardResponse{UserID: "u1", DueCards: 2}, nil).Once()

	resp, body := s.do(t, "GET", "/api/dashboard?user_id=u1", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), body["due_cards"])
}

func TestCreateRoutes_RejectUnreadableUserID(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
	}{
		{name: "jhana session", target: "/api/jhana/sessions", body: `{"user_id":"has space","duration":600,"type":"breath"}`},
		{name: "learning card", target: "/api/learning/cards", body: `{"user_id":"has space","front":"f","back":"b"}`},
		{name: "pomodoro session", target: "/api/pomodoro/sessions", body: `{"user_id":"has space","duration":1500,"task":"write"}`},
		{name: "routine", target: "/api/routines", body: `{"user_id":"has space","name":"Morning","habits":[]}`},
		{name: "missing user", target: "/api/routines", body: `{"name":"Morning"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(nil)

			resp, body := s.do(t, "POST", tt.target, tt.body)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "VALIDATION_ERROR", body["code"])
			s.jhana.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
			s.learning.AssertNotCalled(t, "CreateCard", mock.Anything, mock.Anything)
			s.learning.AssertNotCalled(t, "CreatePomodoro", mock.Anything, mock.Anything)
			s.routine.AssertNotCalled(t, "CreateRoutine", mock.Anything, mock.Anything)
		})
	}

	t.Run("list uses the same rule", func(t *testing.T) {
		s := newTestServer(nil)
		resp, _ := s.do(t, "GET", "/api/jhana/sessions?user_id=has%20space", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
