package domain

import "time"

// User is created by an assessment submission and keeps its outcome.
type User struct {
	ID                  string             `json:"id"`
	CreatedAt           time.Time          `json:"created_at"`
	AssessmentCompleted bool               `json:"assessment_completed"`
	AssessmentAnswers   []AssessmentAnswer `json:"assessment_answers"`
	RecommendedModules  []string           `json:"recommended_modules"`
	ModuleScores        ModuleScores       `json:"module_scores"`
}

// NewAssessedUser records a completed assessment for a fresh user id.
func NewAssessedUser(id string, answers []AssessmentAnswer, result *RecommendationResult) *User {
	if answers == nil {
		answers = []AssessmentAnswer{}
	}
	return &User{
		ID:                  id,
		CreatedAt:           time.Now().UTC(),
		AssessmentCompleted: true,
		AssessmentAnswers:   answers,
		RecommendedModules:  result.RecommendedModules,
		ModuleScores:        result.ModuleScores,
	}
}
