package notificationRepo

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

// Insert persists a single notification document.
func (repo *MongoNotificationRepo) Insert(ctx context.Context, notif *models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, notif); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// GetByID retrieves a notification by its ID.
func (repo *MongoNotificationRepo) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var notif models.Notification
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&notif)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch notification %s: %w", id, err)
	}
	return &notif, nil
}

// ListByUser returns the recipient's notifications, newest first, capped at limit.
func (repo *MongoNotificationRepo) ListByUser(ctx context.Context, userID string, limit int64) ([]models.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := repo.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var notifs []models.Notification
	if err := cursor.All(ctx, &notifs); err != nil {
		return nil, fmt.Errorf("decode notifications: %w", err)
	}
	return notifs, nil
}

// MarkRead flips the read flag on a notification.
func (repo *MongoNotificationRepo) MarkRead(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return fmt.Errorf("mark notification %s read: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
