package dto

import "time"

// CreateCardRequest represents a new flashcard.
// @Description Request body for creating a learning card
type CreateCardRequest struct {
	UserID string `json:"user_id"`
	Front  string `json:"front"`
	Back   string `json:"back"`
}

// ReviewCardRequest carries the schedule computed by the client after a review.
// @Description Request body for reviewing a learning card
type ReviewCardRequest struct {
	Interval   int       `json:"interval"`
	EaseFactor float64   `json:"ease_factor"`
	NextReview time.Time `json:"next_review"`
}

type LearningCardResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Front      string    `json:"front"`
	Back       string    `json:"back"`
	NextReview time.Time `json:"next_review"`
	Interval   int       `json:"interval"`
	EaseFactor float64   `json:"ease_factor"`
}

// CreatePomodoroRequest represents a finished focus block. Duration is in seconds.
// @Description Request body for recording a pomodoro session
type CreatePomodoroRequest struct {
	UserID   string `json:"user_id"`
	Duration int    `json:"duration"`
	Task     string `json:"task"`
}

type PomodoroSessionResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Duration  int       `json:"duration"`
	Task      string    `json:"task"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
}
