package notificationRepo

import (
	"context"
	"errors"

	"wanderly/database"
	"wanderly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when the referenced notification does not exist.
var ErrNotFound = errors.New("notification not found")

// NotificationRepository defines data access for notifications. Booking
// notifications are written transactionally by the booking repository; this
// repository covers reads, the read flag, and standalone inserts from the
// social and messaging flows.
type NotificationRepository interface {
	Insert(ctx context.Context, notif *models.Notification) error
	GetByID(ctx context.Context, id string) (*models.Notification, error)
	ListByUser(ctx context.Context, userID string, limit int64) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// MongoNotificationRepo implements NotificationRepository on MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo returns a NotificationRepository backed by MongoDB.
func NewMongoNotificationRepo() NotificationRepository {
	return &MongoNotificationRepo{
		coll: database.DB().Collection("notifications"),
	}
}
