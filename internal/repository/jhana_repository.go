package repository

import (
	"context"
	"fmt"

	"mindflow/internal/database"
	"mindflow/internal/domain"
	"mindflow/internal/repository/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// JhanaRepository stores meditation sessions.
type JhanaRepository interface {
	CreateSession(ctx context.Context, session *domain.JhanaSession) error
	ListSessionsByUser(ctx context.Context, userID string) ([]*domain.JhanaSession, error)
	GetStatsByUser(ctx context.Context, userID string) (domain.JhanaStats, error)
}

type mongoJhanaRepository struct {
	coll *mongo.Collection
}

func NewMongoJhanaRepository(db *mongo.Database) JhanaRepository {
	return &mongoJhanaRepository{coll: db.Collection(database.CollectionJhanaSessions)}
}

func (r *mongoJhanaRepository) CreateSession(ctx context.Context, session *domain.JhanaSession) error {
	if _, err := r.coll.InsertOne(ctx, toModelJhanaSession(session)); err != nil {
		return fmt.Errorf("failed to create jhana session: %w", err)
	}
	return nil
}

// ListSessionsByUser returns the newest sessions first.
func (r *mongoJhanaRepository) ListSessionsByUser(ctx context.Context, userID string) ([]*domain.JhanaSession, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("failed to list jhana sessions: %w", err)
	}
	var docs []models.JhanaSession
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode jhana sessions: %w", err)
	}

	sessions := make([]*domain.JhanaSession, 0, len(docs))
	for i := range docs {
		sessions = append(sessions, toDomainJhanaSession(&docs[i]))
	}
	return sessions, nil
}

func (r *mongoJhanaRepository) GetStatsByUser(ctx context.Context, userID string) (domain.JhanaStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total_sessions", Value: bson.M{"$sum": 1}},
			{Key: "total_seconds", Value: bson.M{"$sum": "$duration"}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return domain.JhanaStats{}, fmt.Errorf("failed to aggregate jhana stats: %w", err)
	}
	var rows []models.JhanaStats
	if err := cursor.All(ctx, &rows); err != nil {
		return domain.JhanaStats{}, fmt.Errorf("failed to decode jhana stats: %w", err)
	}
	if len(rows) == 0 {
		return domain.NewJhanaStats(0, 0), nil
	}
	return domain.NewJhanaStats(rows[0].TotalSessions, rows[0].TotalSeconds), nil
}
