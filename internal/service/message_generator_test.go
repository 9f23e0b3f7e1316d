package service

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"mindflow/internal/config"
	"mindflow/internal/domain"
	"mindflow/internal/logger"
	"mindflow/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "error"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

var defaultRanked = []string{"jhana", "learning", "routine"}

func fallbackCount() float64 {
	return testutil.ToFloat64(metrics.MessageGenerations.WithLabelValues(metrics.OutcomeFallback))
}

func TestMessageGenerator_Success(t *testing.T) {
	gen := new(MockTextGenerator)
	gen.On("Generate", mock.Anything, coachSystemPrompt, mock.AnythingOfType("string")).
		Return("  You've got this. Start with jhana today.  ", nil).Once()

	msg := NewMessageGenerator(gen, time.Second).
		GenerateMessage(context.Background(), defaultRanked, domain.ModuleScores{"jhana": 2, "learning": 1, "routine": 0}, nil)

	assert.Equal(t, "You've got this. Start with jhana today.", msg)
	gen.AssertExpectations(t)
}

func TestMessageGenerator_Fallbacks(t *testing.T) {
	ranked := []string{"routine", "jhana", "learning"}
	scores := domain.ModuleScores{"jhana": 1, "learning": 0, "routine": 3}
	expected := domain.FallbackMessage(ranked)

	tests := []struct {
		name string
		ret  string
		err  error
	}{
		{name: "provider error", err: errors.New("503 service unavailable")},
		{name: "empty output", ret: "   \n"},
		{name: "timeout", err: context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := new(MockTextGenerator)
			gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return(tt.ret, tt.err).Once()

			before := fallbackCount()
			msg := NewMessageGenerator(gen, time.Second).GenerateMessage(context.Background(), ranked, scores, nil)

			assert.Equal(t, expected, msg)
			assert.Equal(t, before+1, fallbackCount())
		})
	}
}

func TestMessageGenerator_NoGenerator(t *testing.T) {
	msg := NewMessageGenerator(nil, time.Second).
		GenerateMessage(context.Background(), defaultRanked, domain.TallyAnswers(nil), nil)
	assert.Equal(t, domain.FallbackMessage(defaultRanked), msg)
}

func TestMessageGenerator_AppliesTimeout(t *testing.T) {
	gen := new(MockTextGenerator)
	gen.On("Generate", mock.MatchedBy(func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()
		return ok && time.Until(deadline) <= 50*time.Millisecond
	}), mock.Anything, mock.Anything).Return("ok", nil).Once()

	msg := NewMessageGenerator(gen, 50*time.Millisecond).
		GenerateMessage(context.Background(), defaultRanked, domain.TallyAnswers(nil), nil)

	assert.Equal(t, "ok", msg)
	gen.AssertExpectations(t)
}

func TestBuildPrompt(t *testing.T) {
	answers := []domain.AssessmentAnswer{
		{QuestionID: 1, OptionID: "a", Modules: []string{"jhana"}},
		{QuestionID: 2, OptionID: "b", Modules: []string{"jhana", "focus"}},
	}
	scores := domain.TallyAnswers(answers)
	ranked := domain.RankModules(scores)

	prompt := BuildPrompt(ranked, scores, answers)

	assert.Contains(t, prompt, "Q1: Selected option 'a'\nQ2: Selected option 'b'")
	assert.Contains(t, prompt, "- Jhana Meditation: 2 points")
	assert.Contains(t, prompt, "- focus: 1 points")
	assert.Contains(t, prompt, "Recommended order: jhana, focus, learning, routine")
	assert.True(t, strings.HasSuffix(prompt, "no labels or formatting."))
}
