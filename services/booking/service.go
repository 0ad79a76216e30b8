package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	bookingRepo "wanderly/database/repository/booking"
	listingRepo "wanderly/database/repository/listing"
	"wanderly/models"
	"wanderly/services/feed"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Canned notification bodies per target status, used when the caller supplies
// no message of their own.
var statusMessages = map[models.BookingStatus]string{
	models.BookingConfirmed: "Your booking has been confirmed!",
	models.BookingRejected:  "Your booking request was rejected",
	models.BookingCancelled: "Your booking has been cancelled",
	models.BookingCompleted: "Your booking has been completed",
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// CreateBooking persists a new pending booking and the owner's
// booking_request notification as one atomic batch, returning the booking ID.
// Title and location are copied from the listing when the caller left them
// blank, so dashboards can render without joins.
func (svc *DefaultBookingService) CreateBooking(ctx context.Context, actorID string, input CreateBookingInput) (string, error) {
	if actorID == "" {
		return "", newError(CodeInvalidInput, "missing caller identity")
	}
	if input.ServiceID == "" {
		return "", newError(CodeInvalidInput, "missing serviceId")
	}
	if !input.ServiceType.Valid() {
		return "", newError(CodeInvalidInput, "unknown service type %q", input.ServiceType)
	}

	ownerID := input.OwnerID
	title := input.ServiceTitle
	location := input.ServiceLocation
	if svc.Listings != nil {
		listing, err := svc.Listings.GetByID(ctx, input.ServiceID)
		switch {
		case err == nil:
			ownerID = listing.OwnerID
			if title == "" {
				title = listing.Title
			}
			if location == "" {
				location = listing.Location
			}
		case errors.Is(err, listingRepo.ErrNotFound):
			return "", newError(CodeInvalidInput, "listing %s does not exist", input.ServiceID)
		default:
			return "", fmt.Errorf("resolve listing %s: %w", input.ServiceID, err)
		}
	}
	if ownerID == "" {
		return "", newError(CodeInvalidInput, "missing ownerId")
	}

	now := nowISO()
	booking := &models.Booking{
		ID:              uuid.New().String(),
		UserID:          actorID,
		OwnerID:         ownerID,
		ServiceID:       input.ServiceID,
		ServiceType:     input.ServiceType,
		Status:          models.BookingPending,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Quantity:        input.Quantity,
		TotalPrice:      input.TotalPrice,
		Message:         input.Message,
		ServiceTitle:    title,
		ServiceLocation: location,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	notif := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    ownerID,
		Title:     "New Booking Request",
		Message:   fmt.Sprintf("You have a new %s booking request", input.ServiceType),
		Type:      models.NotifyBookingRequest,
		RelatedID: booking.ID,
		Read:      false,
		CreatedAt: now,
	}

	if err := svc.Repo.CreateWithNotification(ctx, booking, notif); err != nil {
		return "", fmt.Errorf("create booking: %w", err)
	}

	svc.logger().Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("userId", booking.UserID),
		zap.String("ownerId", booking.OwnerID),
		zap.String("serviceType", string(booking.ServiceType)))

	svc.Feed.Publish(
		feed.UserBookingsTopic(booking.UserID),
		feed.OwnerBookingsTopic(booking.OwnerID),
		feed.NotificationsTopic(booking.OwnerID),
	)
	return booking.ID, nil
}

// UpdateBookingStatus transitions a booking and writes the requester's
// booking_update notification atomically. Owners drive
// confirmed/rejected/completed; only the requester may drive cancelled, and
// only while the booking is still pending.
func (svc *DefaultBookingService) UpdateBookingStatus(ctx context.Context, actorID, bookingID string, status models.BookingStatus, message string) error {
	if !status.Valid() {
		return newError(CodeInvalidInput, "unknown booking status %q", status)
	}
	if status == models.BookingPending {
		return newError(CodeInvalidTransition, "cannot move a booking back to pending")
	}

	b, err := svc.getForUpdate(ctx, bookingID)
	if err != nil {
		return err
	}

	if status == models.BookingCancelled {
		if actorID != b.UserID {
			return newError(CodeNotAuthorized, "only the requester may cancel booking %s", bookingID)
		}
	} else if actorID != b.OwnerID {
		return newError(CodeNotAuthorized, "only the owner may set booking %s to %s", bookingID, status)
	}

	return svc.applyStatus(ctx, b, status, message)
}

// CancelBooking is the requester-facing cancel operation. It delegates to the
// same transition path as a status update to cancelled.
func (svc *DefaultBookingService) CancelBooking(ctx context.Context, actorID, bookingID string) error {
	b, err := svc.getForUpdate(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.UserID != actorID {
		return newError(CodeNotAuthorized, "booking %s does not belong to caller", bookingID)
	}
	return svc.applyStatus(ctx, b, models.BookingCancelled, "Cancelled by user")
}

// applyStatus enforces the transition table and commits the paired
// booking+notification write. The caller has already authorized the actor.
func (svc *DefaultBookingService) applyStatus(ctx context.Context, b *models.Booking, status models.BookingStatus, message string) error {
	if !b.Status.CanTransitionTo(status) {
		return newError(CodeInvalidTransition, "booking %s cannot go from %s to %s", b.ID, b.Status, status)
	}

	now := nowISO()
	notifMessage := message
	if notifMessage == "" {
		notifMessage = statusMessages[status]
	}
	if notifMessage == "" {
		notifMessage = fmt.Sprintf("Your booking status has been updated to %s", status)
	}
	notif := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    b.UserID,
		Title:     "Booking " + capitalize(status.String()),
		Message:   notifMessage,
		Type:      models.NotifyBookingUpdate,
		RelatedID: b.ID,
		Read:      false,
		CreatedAt: now,
	}

	if err := svc.Repo.UpdateStatusWithNotification(ctx, b.ID, status, message, now, notif); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return newError(CodeNotFound, "booking %s does not exist", b.ID)
		}
		return fmt.Errorf("update booking %s: %w", b.ID, err)
	}

	svc.logger().Info("booking status updated",
		zap.String("bookingId", b.ID),
		zap.String("from", b.Status.String()),
		zap.String("to", status.String()))

	svc.Feed.Publish(
		feed.UserBookingsTopic(b.UserID),
		feed.OwnerBookingsTopic(b.OwnerID),
		feed.NotificationsTopic(b.UserID),
	)
	return nil
}

// GetBooking returns a booking by ID.
func (svc *DefaultBookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return svc.getForUpdate(ctx, bookingID)
}

// GetUserBookings returns the requester's bookings, newest first.
func (svc *DefaultBookingService) GetUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return svc.Repo.ListByUser(ctx, userID)
}

// GetOwnerBookings returns the bookings an owner needs to manage, newest first.
func (svc *DefaultBookingService) GetOwnerBookings(ctx context.Context, ownerID string) ([]models.Booking, error) {
	return svc.Repo.ListByOwner(ctx, ownerID)
}

// CompleteExpired transitions confirmed bookings whose end date has passed to
// completed, each with its booking_update notification. It is invoked by the
// scheduler, not by callers, so no actor check applies. Returns the number of
// bookings completed.
func (svc *DefaultBookingService) CompleteExpired(ctx context.Context) (int, error) {
	today := time.Now().UTC().Format("2006-01-02")
	expired, err := svc.Repo.ListConfirmedEndedBefore(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("list expired bookings: %w", err)
	}

	completed := 0
	for i := range expired {
		b := expired[i]
		if err := svc.applyStatus(ctx, &b, models.BookingCompleted, ""); err != nil {
			svc.logger().Warn("failed to complete expired booking",
				zap.String("bookingId", b.ID), zap.Error(err))
			continue
		}
		completed++
	}
	return completed, nil
}

func (svc *DefaultBookingService) getForUpdate(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, err := svc.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, newError(CodeNotFound, "booking %s does not exist", bookingID)
		}
		return nil, fmt.Errorf("fetch booking %s: %w", bookingID, err)
	}
	return b, nil
}

func (svc *DefaultBookingService) logger() *zap.Logger {
	if svc.Logger != nil {
		return svc.Logger
	}
	return zap.L()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
