package domain

import (
	"strings"
	"time"
)

// JhanaSession is one completed meditation sitting. Duration is in seconds.
type JhanaSession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Duration  int       `json:"duration"`
	Type      string    `json:"type"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
}

func NewJhanaSession(id, userID string, duration int, sessionType string) *JhanaSession {
	return &JhanaSession{
		ID:        id,
		UserID:    userID,
		Duration:  duration,
		Type:      strings.TrimSpace(sessionType),
		Date:      time.Now().UTC(),
		Completed: true,
	}
}

// Validate validates the session
func (s *JhanaSession) Validate() error {
	var errs ValidationErrors
	errs = append(errs, ValidateID("user_id", s.UserID)...)
	if s.Duration <= 0 {
		errs = append(errs, NewInvalidValueError("duration", "must be a positive number of seconds"))
	}
	if s.Type == "" {
		errs = append(errs, NewMissingFieldError("type"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// JhanaStats summarises a user's meditation history.
type JhanaStats struct {
	TotalSessions int `json:"total_sessions"`
	TotalMinutes  int `json:"total_minutes"`
}

// NewJhanaStats converts a session count and summed seconds into whole minutes.
func NewJhanaStats(sessions int, totalSeconds int64) JhanaStats {
	return JhanaStats{
		TotalSessions: sessions,
		TotalMinutes:  int(totalSeconds / 60),
	}
}
