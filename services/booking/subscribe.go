package booking

import (
	"context"

	"wanderly/models"
	"wanderly/services/feed"

	"go.uber.org/zap"
)

// SubscribeToUserBookings invokes callback with the requester's full booking
// list now and again after every change that touches it. Returns an
// unsubscribe func.
func (svc *DefaultBookingService) SubscribeToUserBookings(userID string, callback func([]models.Booking)) func() {
	return svc.subscribe(feed.UserBookingsTopic(userID), func(ctx context.Context) ([]models.Booking, error) {
		return svc.Repo.ListByUser(ctx, userID)
	}, callback)
}

// SubscribeToOwnerBookings is the owner-side equivalent of
// SubscribeToUserBookings.
func (svc *DefaultBookingService) SubscribeToOwnerBookings(ownerID string, callback func([]models.Booking)) func() {
	return svc.subscribe(feed.OwnerBookingsTopic(ownerID), func(ctx context.Context) ([]models.Booking, error) {
		return svc.Repo.ListByOwner(ctx, ownerID)
	}, callback)
}

func (svc *DefaultBookingService) subscribe(topic string, query func(context.Context) ([]models.Booking, error), callback func([]models.Booking)) func() {
	push := func() {
		bookings, err := query(context.Background())
		if err != nil {
			svc.logger().Warn("booking feed query failed", zap.String("topic", topic), zap.Error(err))
			return
		}
		callback(bookings)
	}
	unsubscribe := svc.Feed.Subscribe(topic, push)
	// Initial snapshot so new subscribers don't wait for the first change.
	go push()
	return unsubscribe
}
