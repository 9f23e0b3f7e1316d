package dto

import "time"

// CreateJhanaSessionRequest represents a finished meditation sitting.
// @Description Request body for recording a jhana session. Duration is in seconds.
type CreateJhanaSessionRequest struct {
	UserID   string `json:"user_id"`
	Duration int    `json:"duration"`
	Type     string `json:"type"`
}

type JhanaSessionResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Duration  int       `json:"duration"`
	Type      string    `json:"type"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
}

// JhanaStatsResponse summarises a user's meditation history.
type JhanaStatsResponse struct {
	TotalSessions int `json:"total_sessions"`
	TotalMinutes  int `json:"total_minutes"`
}
