package repository

import (
	"context"
	"fmt"

	"mindflow/internal/database"
	"mindflow/internal/domain"
	"mindflow/internal/repository/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RoutineRepository stores habit routines and their daily completions.
type RoutineRepository interface {
	CreateRoutine(ctx context.Context, routine *domain.Routine) error
	ListRoutinesByUser(ctx context.Context, userID string) ([]*domain.Routine, error)
	CountRoutines(ctx context.Context, userID string) (int64, error)
	// UpdateRoutine and SetCompletion return ErrNotFound when no routine has the id.
	UpdateRoutine(ctx context.Context, routineID string, update domain.RoutineUpdate) error
	SetCompletion(ctx context.Context, routineID string, completion domain.HabitCompletion) error
}

type mongoRoutineRepository struct {
	coll *mongo.Collection
}

func NewMongoRoutineRepository(db *mongo.Database) RoutineRepository {
	return &mongoRoutineRepository{coll: db.Collection(database.CollectionRoutines)}
}

func (r *mongoRoutineRepository) CreateRoutine(ctx context.Context, routine *domain.Routine) error {
	if _, err := r.coll.InsertOne(ctx, toModelRoutine(routine)); err != nil {
		return fmt.Errorf("failed to create routine: %w", err)
	}
	return nil
}

func (r *mongoRoutineRepository) ListRoutinesByUser(ctx context.Context, userID string) ([]*domain.Routine, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}).SetLimit(maxListSize)
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list routines: %w", err)
	}
	var docs []models.Routine
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode routines: %w", err)
	}

	routines := make([]*domain.Routine, 0, len(docs))
	for i := range docs {
		routines = append(routines, toDomainRoutine(&docs[i]))
	}
	return routines, nil
}

func (r *mongoRoutineRepository) CountRoutines(ctx context.Context, userID string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to count routines: %w", err)
	}
	return n, nil
}

func (r *mongoRoutineRepository) UpdateRoutine(ctx context.Context, routineID string, update domain.RoutineUpdate) error {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Habits != nil {
		set["habits"] = toModelHabits(update.Habits)
	}
	return r.set(ctx, routineID, set)
}

// SetCompletion replaces the habit list recorded for completion.Date.
func (r *mongoRoutineRepository) SetCompletion(ctx context.Context, routineID string, completion domain.HabitCompletion) error {
	ids := completion.HabitIDs
	if ids == nil {
		ids = []string{}
	}
	return r.set(ctx, routineID, bson.M{"completions." + completion.Date: ids})
}

func (r *mongoRoutineRepository) set(ctx context.Context, routineID string, fields bson.M) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": routineID}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update routine: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
