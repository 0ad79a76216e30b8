package bookingRepo

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

// CreateWithNotification inserts the booking and the owner's notification in
// one transaction.
func (repo *MongoBookingRepo) CreateWithNotification(ctx context.Context, booking *models.Booking, notif *models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return repo.inTransaction(ctx, func(sc mongo.SessionContext) error {
		if _, err := repo.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		if _, err := repo.notifColl.InsertOne(sc, notif); err != nil {
			return fmt.Errorf("insert notification failed: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a booking by its ID.
func (repo *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var booking models.Booking
	err := repo.bookingColl.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

// UpdateStatusWithNotification sets the booking status (and message, when
// non-empty) and inserts the requester's notification in one transaction.
func (repo *MongoBookingRepo) UpdateStatusWithNotification(ctx context.Context, bookingID string, status models.BookingStatus, message, updatedAt string, notif *models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	set := bson.M{
		"status":    status,
		"updatedAt": updatedAt,
	}
	if message != "" {
		set["message"] = message
	}

	return repo.inTransaction(ctx, func(sc mongo.SessionContext) error {
		res, err := repo.bookingColl.UpdateOne(sc, bson.M{"id": bookingID}, bson.M{"$set": set})
		if err != nil {
			return fmt.Errorf("update booking %s: %w", bookingID, err)
		}
		if res.MatchedCount == 0 {
			return ErrNotFound
		}
		if _, err := repo.notifColl.InsertOne(sc, notif); err != nil {
			return fmt.Errorf("insert notification failed: %w", err)
		}
		return nil
	})
}

// ListByUser returns all bookings made by the requester, newest first.
func (repo *MongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return repo.list(ctx, bson.M{"userId": userID})
}

// ListByOwner returns all bookings against the owner's listings, newest first.
func (repo *MongoBookingRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Booking, error) {
	return repo.list(ctx, bson.M{"ownerId": ownerID})
}

// ListConfirmedEndedBefore returns confirmed bookings whose end date is
// strictly before the given "YYYY-MM-DD" date.
func (repo *MongoBookingRepo) ListConfirmedEndedBefore(ctx context.Context, date string) ([]models.Booking, error) {
	return repo.list(ctx, bson.M{
		"status":  models.BookingConfirmed,
		"endDate": bson.M{"$gt": "", "$lt": date},
	})
}

func (repo *MongoBookingRepo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.bookingColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return bookings, nil
}

func (repo *MongoBookingRepo) inTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}
