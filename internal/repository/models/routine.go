package models

// Habit is embedded in Routine.Habits.
type Habit struct {
	ID           string  `bson:"id"`
	Name         string  `bson:"name"`
	Anchor       bool    `bson:"anchor"`
	StackedAfter *string `bson:"stacked_after,omitempty"`
	Time         *string `bson:"time,omitempty"`
}

// Routine is a document of the routines collection. Completions is keyed by YYYY-MM-DD.
type Routine struct {
	ID          string              `bson:"_id"`
	UserID      string              `bson:"user_id"`
	Name        string              `bson:"name"`
	Habits      []Habit             `bson:"habits"`
	Completions map[string][]string `bson:"completions"`
}
