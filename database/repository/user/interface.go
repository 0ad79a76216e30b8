package userRepo

import (
	"context"
	"errors"

	"wanderly/database"
	"wanderly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when the referenced user or profile does not exist.
var ErrNotFound = errors.New("user not found")

// UserRepository defines data access for accounts and travel profiles.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpsertProfile(ctx context.Context, profile *models.Profile) error
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	ListProfilesExcluding(ctx context.Context, userID string) ([]models.Profile, error)
	ListProfilesByUserIDs(ctx context.Context, userIDs []string) ([]models.Profile, error)
}

// MongoUserRepo implements UserRepository on MongoDB.
type MongoUserRepo struct {
	userColl    *mongo.Collection
	profileColl *mongo.Collection
}

// NewMongoUserRepo returns a UserRepository backed by MongoDB.
func NewMongoUserRepo() UserRepository {
	db := database.DB()
	return &MongoUserRepo{
		userColl:    db.Collection("users"),
		profileColl: db.Collection("profiles"),
	}
}
