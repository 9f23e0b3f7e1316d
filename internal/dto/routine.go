package dto

// HabitDTO is one step of a routine as exchanged with clients.
type HabitDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Anchor       bool    `json:"anchor"`
	StackedAfter *string `json:"stacked_after,omitempty"`
	Time         *string `json:"time,omitempty"`
}

// CreateRoutineRequest represents a new routine.
// @Description Request body for creating a routine
type CreateRoutineRequest struct {
	UserID string     `json:"user_id"`
	Name   string     `json:"name"`
	Habits []HabitDTO `json:"habits"`
}

// UpdateRoutineRequest changes the name and/or the habits of a routine.
// @Description Request body for updating a routine. At least one field is required.
type UpdateRoutineRequest struct {
	Name   *string    `json:"name,omitempty"`
	Habits []HabitDTO `json:"habits,omitempty"`
}

// CompleteRoutineRequest records which habits were done on a day (YYYY-MM-DD).
// @Description Request body for marking routine habits complete
type CompleteRoutineRequest struct {
	Date     string   `json:"date"`
	HabitIDs []string `json:"habit_ids"`
}

type RoutineResponse struct {
	ID          string              `json:"id"`
	UserID      string              `json:"user_id"`
	Name        string              `json:"name"`
	Habits      []HabitDTO          `json:"habits"`
	Completions map[string][]string `json:"completions"`
}
