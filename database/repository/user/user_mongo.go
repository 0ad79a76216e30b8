package userRepo

import (
	"context"
	"fmt"
	"time"

	"wanderly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const opTimeout = 5 * time.Second

// Create inserts a new user account.
func (repo *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := repo.userColl.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID.
func (repo *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return repo.getUser(ctx, bson.M{"id": id})
}

// GetByEmail retrieves a user by email.
func (repo *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return repo.getUser(ctx, bson.M{"email": email})
}

func (repo *MongoUserRepo) getUser(ctx context.Context, filter bson.M) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var user models.User
	err := repo.userColl.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	return &user, nil
}

// UpsertProfile creates or replaces a user's travel profile.
func (repo *MongoUserRepo) UpsertProfile(ctx context.Context, profile *models.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := repo.profileColl.ReplaceOne(ctx, bson.M{"userId": profile.UserID}, profile, opts); err != nil {
		return fmt.Errorf("upsert profile for %s: %w", profile.UserID, err)
	}
	return nil
}

// GetProfile retrieves a travel profile by user ID.
func (repo *MongoUserRepo) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var profile models.Profile
	err := repo.profileColl.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch profile for %s: %w", userID, err)
	}
	return &profile, nil
}

// ListProfilesExcluding returns every profile except the given user's own.
func (repo *MongoUserRepo) ListProfilesExcluding(ctx context.Context, userID string) ([]models.Profile, error) {
	return repo.listProfiles(ctx, bson.M{"userId": bson.M{"$ne": userID}})
}

// ListProfilesByUserIDs returns the profiles for the given user IDs.
func (repo *MongoUserRepo) ListProfilesByUserIDs(ctx context.Context, userIDs []string) ([]models.Profile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	return repo.listProfiles(ctx, bson.M{"userId": bson.M{"$in": userIDs}})
}

func (repo *MongoUserRepo) listProfiles(ctx context.Context, filter bson.M) ([]models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := repo.profileColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	return profiles, nil
}
