package models

import "time"

// JhanaSession is a document of the jhana_sessions collection.
type JhanaSession struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Duration  int       `bson:"duration"` // seconds
	Type      string    `bson:"type"`
	Date      time.Time `bson:"date"`
	Completed bool      `bson:"completed"`
}

// JhanaStats is the output row of the per-user stats aggregation.
type JhanaStats struct {
	TotalSessions int   `bson:"total_sessions"`
	TotalSeconds  int64 `bson:"total_seconds"`
}
