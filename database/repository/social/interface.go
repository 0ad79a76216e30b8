package socialRepo

import (
	"context"

	"wanderly/database"
	"wanderly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SocialRepository defines data access for swipes and matches. Match creation
// pairs the match document with both users' notifications in one transaction.
type SocialRepository interface {
	InsertSwipe(ctx context.Context, swipe *models.Swipe) error
	HasPositiveSwipe(ctx context.Context, swiperID, swipedID string) (bool, error)
	ListSwipedIDs(ctx context.Context, swiperID string) ([]string, error)
	CreateMatchWithNotifications(ctx context.Context, match *models.Match, notifs []*models.Notification) error
	ListMatchesByUser(ctx context.Context, userID string) ([]models.Match, error)
}

// MongoSocialRepo implements SocialRepository on MongoDB.
type MongoSocialRepo struct {
	swipeColl *mongo.Collection
	matchColl *mongo.Collection
	notifColl *mongo.Collection
}

// NewMongoSocialRepo returns a SocialRepository backed by MongoDB.
func NewMongoSocialRepo() SocialRepository {
	db := database.DB()
	return &MongoSocialRepo{
		swipeColl: db.Collection("swipes"),
		matchColl: db.Collection("matches"),
		notifColl: db.Collection("notifications"),
	}
}
