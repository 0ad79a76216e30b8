package booking

import (
	"context"

	bookingRepo "wanderly/database/repository/booking"
	listingRepo "wanderly/database/repository/listing"
	"wanderly/models"
	"wanderly/services/feed"

	"go.uber.org/zap"
)

// CreateBookingInput is a booking minus everything the server assigns. Status
// is not accepted from callers: every new booking starts pending.
type CreateBookingInput struct {
	ServiceID       string             `json:"serviceId"`
	ServiceType     models.ServiceType `json:"serviceType"`
	OwnerID         string             `json:"ownerId"`
	StartDate       string             `json:"startDate,omitempty"`
	EndDate         string             `json:"endDate,omitempty"`
	Quantity        int                `json:"quantity,omitempty"`
	TotalPrice      float64            `json:"totalPrice,omitempty"`
	Message         string             `json:"message,omitempty"`
	ServiceTitle    string             `json:"serviceTitle,omitempty"`
	ServiceLocation string             `json:"serviceLocation,omitempty"`
}

// BookingService manages the booking lifecycle. Every mutating operation
// writes exactly one notification to the counter-party, atomically with the
// booking write. actorID is the authenticated caller on whose behalf the
// operation runs.
type BookingService interface {
	CreateBooking(ctx context.Context, actorID string, input CreateBookingInput) (string, error)
	UpdateBookingStatus(ctx context.Context, actorID, bookingID string, status models.BookingStatus, message string) error
	CancelBooking(ctx context.Context, actorID, bookingID string) error
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	GetUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	GetOwnerBookings(ctx context.Context, ownerID string) ([]models.Booking, error)
	CompleteExpired(ctx context.Context) (int, error)

	SubscribeToUserBookings(userID string, callback func([]models.Booking)) func()
	SubscribeToOwnerBookings(ownerID string, callback func([]models.Booking)) func()
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Listings listingRepo.ListingRepository
	Feed     *feed.Hub
	Logger   *zap.Logger
}
