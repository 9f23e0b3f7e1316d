package repository

import (
	"context"
	"fmt"
	"time"

	"mindflow/internal/database"
	"mindflow/internal/domain"
	"mindflow/internal/repository/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LearningRepository stores flashcards and pomodoro sessions.
type LearningRepository interface {
	CreateCard(ctx context.Context, card *domain.LearningCard) error
	// ListCards returns the user's cards ordered by next review. A non-nil dueBefore keeps
	// only cards whose next review is at or before it.
	ListCards(ctx context.Context, userID string, dueBefore *time.Time) ([]*domain.LearningCard, error)
	CountCards(ctx context.Context, userID string, dueBefore *time.Time) (int64, error)
	// UpdateCardReview returns ErrNotFound when no card has the id.
	UpdateCardReview(ctx context.Context, cardID string, review domain.CardReview) error

	CreatePomodoro(ctx context.Context, session *domain.PomodoroSession) error
	ListPomodoros(ctx context.Context, userID string) ([]*domain.PomodoroSession, error)
	CountPomodoros(ctx context.Context, userID string) (int64, error)
}

type mongoLearningRepository struct {
	cards     *mongo.Collection
	pomodoros *mongo.Collection
}

func NewMongoLearningRepository(db *mongo.Database) LearningRepository {
	return &mongoLearningRepository{
		cards:     db.Collection(database.CollectionLearningCards),
		pomodoros: db.Collection(database.CollectionPomodoroSessions),
	}
}

func cardFilter(userID string, dueBefore *time.Time) bson.M {
	filter := bson.M{"user_id": userID}
	if dueBefore != nil {
		filter["next_review"] = bson.M{"$lte": *dueBefore}
	}
	return filter
}

func (r *mongoLearningRepository) CreateCard(ctx context.Context, card *domain.LearningCard) error {
	if _, err := r.cards.InsertOne(ctx, toModelLearningCard(card)); err != nil {
		return fmt.Errorf("failed to create learning card: %w", err)
	}
	return nil
}

func (r *mongoLearningRepository) ListCards(ctx context.Context, userID string, dueBefore *time.Time) ([]*domain.LearningCard, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "next_review", Value: 1}}).
		SetLimit(maxListSize)

	cursor, err := r.cards.Find(ctx, cardFilter(userID, dueBefore), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list learning cards: %w", err)
	}
	var docs []models.LearningCard
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode learning cards: %w", err)
	}

	cards := make([]*domain.LearningCard, 0, len(docs))
	for i := range docs {
		cards = append(cards, toDomainLearningCard(&docs[i]))
	}
	return cards, nil
}

func (r *mongoLearningRepository) CountCards(ctx context.Context, userID string, dueBefore *time.Time) (int64, error) {
	n, err := r.cards.CountDocuments(ctx, cardFilter(userID, dueBefore))
	if err != nil {
		return 0, fmt.Errorf("failed to count learning cards: %w", err)
	}
	return n, nil
}

func (r *mongoLearningRepository) UpdateCardReview(ctx context.Context, cardID string, review domain.CardReview) error {
	update := bson.M{"$set": bson.M{
		"interval":    review.Interval,
		"ease_factor": review.EaseFactor,
		"next_review": review.NextReview,
	}}
	res, err := r.cards.UpdateOne(ctx, bson.M{"_id": cardID}, update)
	if err != nil {
		return fmt.Errorf("failed to update learning card: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoLearningRepository) CreatePomodoro(ctx context.Context, session *domain.PomodoroSession) error {
	if _, err := r.pomodoros.InsertOne(ctx, toModelPomodoroSession(session)); err != nil {
		return fmt.Errorf("failed to create pomodoro session: %w", err)
	}
	return nil
}

func (r *mongoLearningRepository) ListPomodoros(ctx context.Context, userID string) ([]*domain.PomodoroSession, error) {
	cursor, err := r.pomodoros.Find(ctx, bson.M{"user_id": userID}, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("failed to list pomodoro sessions: %w", err)
	}
	var docs []models.PomodoroSession
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode pomodoro sessions: %w", err)
	}

	sessions := make([]*domain.PomodoroSession, 0, len(docs))
	for i := range docs {
		sessions = append(sessions, toDomainPomodoroSession(&docs[i]))
	}
	return sessions, nil
}

func (r *mongoLearningRepository) CountPomodoros(ctx context.Context, userID string) (int64, error) {
	n, err := r.pomodoros.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to count pomodoro sessions: %w", err)
	}
	return n, nil
}
