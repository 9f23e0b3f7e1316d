package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mindflow/internal/domain"
	"mindflow/internal/logger"
	"mindflow/internal/metrics"

	"go.uber.org/zap"
)

const coachSystemPrompt = "You are a supportive wellness coach focused on mental health and productivity."

// moduleLabels names the known modules in the prompt.
var moduleLabels = map[string]string{
	domain.ModuleJhana:    "Jhana Meditation",
	domain.ModuleLearning: "Learning Module",
	domain.ModuleRoutine:  "Routine Builder",
}

// MessageGenerator produces the coaching message shown with a recommendation.
// It never fails: any problem with the text generator yields domain.FallbackMessage.
type MessageGenerator interface {
	GenerateMessage(ctx context.Context, ranked []string, scores domain.ModuleScores, answers []domain.AssessmentAnswer) string
}

type messageGenerator struct {
	generator domain.TextGenerator
	timeout   time.Duration
}

// NewMessageGenerator creates a MessageGenerator. A nil generator always falls back.
func NewMessageGenerator(generator domain.TextGenerator, timeout time.Duration) MessageGenerator {
	return &messageGenerator{
		generator: generator,
		timeout:   timeout,
	}
}

func (g *messageGenerator) GenerateMessage(ctx context.Context, ranked []string, scores domain.ModuleScores, answers []domain.AssessmentAnswer) string {
	if g.generator == nil {
		metrics.MessageGenerations.WithLabelValues(metrics.OutcomeFallback).Inc()
		logger.Get().Debug("No text generator configured, using fallback message")
		return domain.FallbackMessage(ranked)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := g.generator.Generate(ctx, coachSystemPrompt, BuildPrompt(ranked, scores, answers))
	metrics.MessageGenerationDuration.Observe(time.Since(start).Seconds())

	if err == nil {
		text = strings.TrimSpace(text)
		if text == "" {
			err = domain.ErrEmptyGeneration
		}
	}
	if err != nil {
		metrics.MessageGenerations.WithLabelValues(metrics.OutcomeFallback).Inc()
		logger.Get().Warn("Message generation failed, using fallback message",
			zap.Error(err),
			zap.Strings("ranked_modules", ranked),
			zap.Duration("elapsed", time.Since(start)))
		return domain.FallbackMessage(ranked)
	}

	metrics.MessageGenerations.WithLabelValues(metrics.OutcomeGenerated).Inc()
	return text
}

// BuildPrompt renders the generation request for one assessment.
func BuildPrompt(ranked []string, scores domain.ModuleScores, answers []domain.AssessmentAnswer) string {
	var b strings.Builder
	b.WriteString("You are a compassionate wellness coach analyzing a user's self-assessment.\n\n")
	b.WriteString("User's assessment responses:\n")
	b.WriteString(domain.Transcript(answers))
	b.WriteString("\n\nModule recommendation scores:\n")
	for _, m := range domain.RankModules(scores) {
		label, ok := moduleLabels[m]
		if !ok {
			label = m
		}
		fmt.Fprintf(&b, "- %s: %d points\n", label, scores[m])
	}
	fmt.Fprintf(&b, "\nRecommended order: %s\n\n", strings.Join(ranked, ", "))
	b.WriteString(`Provide a warm, encouraging message (2-3 sentences) that:
1. Acknowledges their challenges
2. Explains why these modules will help them
3. Motivates them to start their journey

Keep it personal, supportive, and action-oriented. Respond with ONLY the message text, no labels or formatting.`)
	return b.String()
}
