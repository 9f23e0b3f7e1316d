package domain

import (
	"strings"
	"time"
)

const DefaultEaseFactor = 2.5

// LearningCard is a spaced-repetition flashcard. Interval, EaseFactor and NextReview are
// computed by the client and stored as given.
type LearningCard struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Front      string    `json:"front"`
	Back       string    `json:"back"`
	NextReview time.Time `json:"next_review"`
	Interval   int       `json:"interval"`
	EaseFactor float64   `json:"ease_factor"`
}

func NewLearningCard(id, userID, front, back string) *LearningCard {
	return &LearningCard{
		ID:         id,
		UserID:     userID,
		Front:      front,
		Back:       back,
		NextReview: time.Now().UTC(),
		Interval:   0,
		EaseFactor: DefaultEaseFactor,
	}
}

// Validate validates the card
func (c *LearningCard) Validate() error {
	var errs ValidationErrors
	errs = append(errs, ValidateID("user_id", c.UserID)...)
	if strings.TrimSpace(c.Front) == "" {
		errs = append(errs, NewMissingFieldError("front"))
	}
	if strings.TrimSpace(c.Back) == "" {
		errs = append(errs, NewMissingFieldError("back"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CardReview carries the new schedule for a card after the user reviewed it.
type CardReview struct {
	Interval   int       `json:"interval"`
	EaseFactor float64   `json:"ease_factor"`
	NextReview time.Time `json:"next_review"`
}

func (r CardReview) Validate() error {
	var errs ValidationErrors
	if r.Interval < 0 {
		errs = append(errs, NewInvalidValueError("interval", "must not be negative"))
	}
	if r.EaseFactor <= 0 {
		errs = append(errs, NewInvalidValueError("ease_factor", "must be positive"))
	}
	if r.NextReview.IsZero() {
		errs = append(errs, NewMissingFieldError("next_review"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PomodoroSession is one finished focus block. Duration is in seconds.
type PomodoroSession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Duration  int       `json:"duration"`
	Task      string    `json:"task"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
}

func NewPomodoroSession(id, userID string, duration int, task string) *PomodoroSession {
	return &PomodoroSession{
		ID:        id,
		UserID:    userID,
		Duration:  duration,
		Task:      task,
		Date:      time.Now().UTC(),
		Completed: true,
	}
}

func (s *PomodoroSession) Validate() error {
	var errs ValidationErrors
	errs = append(errs, ValidateID("user_id", s.UserID)...)
	if s.Duration <= 0 {
		errs = append(errs, NewInvalidValueError("duration", "must be a positive number of seconds"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
