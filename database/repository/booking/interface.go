package bookingRepo

import (
	"context"
	"errors"

	"wanderly/database"
	"wanderly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when the referenced booking does not exist.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines data access for bookings. The two mutating
// methods pair the booking write with its notification write in a single
// transaction: both land or neither does.
type BookingRepository interface {
	CreateWithNotification(ctx context.Context, booking *models.Booking, notif *models.Notification) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateStatusWithNotification(ctx context.Context, bookingID string, status models.BookingStatus, message, updatedAt string, notif *models.Notification) error
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Booking, error)
	ListConfirmedEndedBefore(ctx context.Context, date string) ([]models.Booking, error)
}

// MongoBookingRepo implements BookingRepository on MongoDB.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
	notifColl   *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	return &MongoBookingRepo{
		bookingColl: db.Collection("bookings"),
		notifColl:   db.Collection("notifications"),
	}
}
