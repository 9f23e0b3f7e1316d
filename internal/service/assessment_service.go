package service

import (
	"context"

	"mindflow/internal/domain"
	"mindflow/internal/dto"
	"mindflow/internal/logger"
	"mindflow/internal/metrics"
	"mindflow/internal/repository"
	"mindflow/internal/util"

	"go.uber.org/zap"
)

// AssessmentService scores assessments and stores the resulting users.
type AssessmentService interface {
	// Analyze runs tally, ranking, message generation and assembly. It never fails.
	Analyze(ctx context.Context, answers []domain.AssessmentAnswer) *domain.RecommendationResult
	SubmitAssessment(ctx context.Context, answers []dto.AssessmentAnswerRequest) (*dto.SubmitAssessmentResponse, error)
	GetUser(ctx context.Context, userID string) (*dto.UserResponse, error)
}

type assessmentService struct {
	userRepo repository.UserRepository
	messages MessageGenerator
}

func NewAssessmentService(userRepo repository.UserRepository, messages MessageGenerator) AssessmentService {
	return &assessmentService{
		userRepo: userRepo,
		messages: messages,
	}
}

func (s *assessmentService) Analyze(ctx context.Context, answers []domain.AssessmentAnswer) *domain.RecommendationResult {
	scores := domain.TallyAnswers(answers)
	ranked := domain.RankModules(scores)
	message := s.messages.GenerateMessage(ctx, ranked, scores, answers)
	return domain.AssembleRecommendation(ranked, message, scores)
}

func (s *assessmentService) SubmitAssessment(ctx context.Context, req []dto.AssessmentAnswerRequest) (*dto.SubmitAssessmentResponse, error) {
	answers := toDomainAnswers(req)
	result := s.Analyze(ctx, answers)

	user := domain.NewAssessedUser(util.NewULID(), answers, result)
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		logger.Get().Error("Failed to store assessed user", zap.String("user_id", user.ID), zap.Error(err))
		return nil, domain.NewInternalError("Failed to save assessment", err)
	}
	metrics.AssessmentsSubmitted.Inc()

	logger.Get().Info("Assessment submitted",
		zap.String("user_id", user.ID),
		zap.Int("answers", len(answers)),
		zap.Strings("recommended_modules", result.RecommendedModules))

	return &dto.SubmitAssessmentResponse{
		UserID:             user.ID,
		RecommendedModules: result.RecommendedModules,
		AIMessage:          result.AIMessage,
		ModuleScores:       result.ModuleScores,
	}, nil
}

func (s *assessmentService) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User", userID)
	}

	answers := make([]dto.AssessmentAnswerRequest, 0, len(user.AssessmentAnswers))
	for _, a := range user.AssessmentAnswers {
		answers = append(answers, dto.AssessmentAnswerRequest{
			QuestionID: a.QuestionID,
			OptionID:   a.OptionID,
			Modules:    a.Modules,
		})
	}
	return &dto.UserResponse{
		ID:                  user.ID,
		CreatedAt:           user.CreatedAt,
		AssessmentCompleted: user.AssessmentCompleted,
		AssessmentAnswers:   answers,
		RecommendedModules:  user.RecommendedModules,
		ModuleScores:        user.ModuleScores,
	}, nil
}

func toDomainAnswers(req []dto.AssessmentAnswerRequest) []domain.AssessmentAnswer {
	answers := make([]domain.AssessmentAnswer, 0, len(req))
	for _, a := range req {
		modules := a.Modules
		if modules == nil {
			modules = []string{}
		}
		answers = append(answers, domain.AssessmentAnswer{
			QuestionID: a.QuestionID,
			OptionID:   a.OptionID,
			Modules:    modules,
		})
	}
	return answers
}
