package models

import "time"

// LearningCard is a document of the learning_cards collection.
type LearningCard struct {
	ID         string    `bson:"_id"`
	UserID     string    `bson:"user_id"`
	Front      string    `bson:"front"`
	Back       string    `bson:"back"`
	NextReview time.Time `bson:"next_review"`
	Interval   int       `bson:"interval"`
	EaseFactor float64   `bson:"ease_factor"`
}

// PomodoroSession is a document of the pomodoro_sessions collection.
type PomodoroSession struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Duration  int       `bson:"duration"` // seconds
	Task      string    `bson:"task"`
	Date      time.Time `bson:"date"`
	Completed bool      `bson:"completed"`
}
