package dto

import "time"

// AssessmentAnswerRequest is one element of the assessment submission body.
// @Description One answered assessment question
type AssessmentAnswerRequest struct {
	QuestionID int      `json:"question_id"`
	OptionID   string   `json:"option_id"`
	Modules    []string `json:"modules"`
}

// SubmitAssessmentResponse represents the scored assessment.
// @Description Ranked modules, coaching message and raw scores for a new user
type SubmitAssessmentResponse struct {
	UserID             string         `json:"user_id"`
	RecommendedModules []string       `json:"recommended_modules"`
	AIMessage          string         `json:"ai_message"`
	ModuleScores       map[string]int `json:"module_scores"`
}

// UserResponse represents a stored user and their assessment outcome.
type UserResponse struct {
	ID                  string                    `json:"id"`
	CreatedAt           time.Time                 `json:"created_at"`
	AssessmentCompleted bool                      `json:"assessment_completed"`
	AssessmentAnswers   []AssessmentAnswerRequest `json:"assessment_answers"`
	RecommendedModules  []string                  `json:"recommended_modules"`
	ModuleScores        map[string]int            `json:"module_scores"`
}
