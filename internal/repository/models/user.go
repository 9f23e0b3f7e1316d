package models

import "time"

// AssessmentAnswer is the stored form of one answered question.
type AssessmentAnswer struct {
	QuestionID int      `bson:"question_id"`
	OptionID   string   `bson:"option_id"`
	Modules    []string `bson:"modules"`
}

// User is a document of the users collection.
type User struct {
	ID                  string             `bson:"_id"`
	CreatedAt           time.Time          `bson:"created_at"`
	AssessmentCompleted bool               `bson:"assessment_completed"`
	AssessmentAnswers   []AssessmentAnswer `bson:"assessment_answers"`
	RecommendedModules  []string           `bson:"recommended_modules"`
	ModuleScores        map[string]int     `bson:"module_scores"`
}
