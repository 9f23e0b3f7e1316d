package repository

import (
	"context"
	"errors"
	"fmt"

	"mindflow/internal/database"
	"mindflow/internal/domain"
	"mindflow/internal/repository/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	// GetUserByID returns nil, nil when no user has the id.
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
}

type mongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository creates a UserRepository on the users collection.
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{coll: db.Collection(database.CollectionUsers)}
}

func (r *mongoUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if _, err := r.coll.InsertOne(ctx, toModelUser(user)); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *mongoUserRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	var doc models.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return toDomainUser(&doc), nil
}
