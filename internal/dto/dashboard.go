package dto

// DashboardResponse aggregates a user's progress across every module.
// @Description Summary of a user's activity
type DashboardResponse struct {
	UserID           string             `json:"user_id"`
	Jhana            JhanaStatsResponse `json:"jhana"`
	TotalCards       int64              `json:"total_cards"`
	DueCards         int64              `json:"due_cards"`
	PomodoroSessions int64              `json:"pomodoro_sessions"`
	Routines         int64              `json:"routines"`
}
