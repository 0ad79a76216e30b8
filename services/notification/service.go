package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	notificationRepo "wanderly/database/repository/notification"
	"wanderly/models"
	"wanderly/services/feed"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound is returned when the referenced notification does not exist.
var ErrNotFound = errors.New("notification not found")

// ErrNotAuthorized is returned when a caller acts on another user's notification.
var ErrNotAuthorized = errors.New("notification does not belong to caller")

// GetUserNotifications returns the recipient's notifications, newest first,
// capped at ListLimit.
func (svc *DefaultNotificationService) GetUserNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	return svc.Repo.ListByUser(ctx, userID, ListLimit)
}

// MarkNotificationRead flips the read flag. Only the recipient may do so.
func (svc *DefaultNotificationService) MarkNotificationRead(ctx context.Context, actorID, notificationID string) error {
	notif, err := svc.Repo.GetByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, notificationRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("fetch notification %s: %w", notificationID, err)
	}
	if notif.UserID != actorID {
		return ErrNotAuthorized
	}

	if err := svc.Repo.MarkRead(ctx, notificationID); err != nil {
		if errors.Is(err, notificationRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("mark notification %s read: %w", notificationID, err)
	}
	svc.Feed.Publish(feed.NotificationsTopic(notif.UserID))
	return nil
}

// Notify persists a standalone notification, filling server-assigned fields.
func (svc *DefaultNotificationService) Notify(ctx context.Context, notif *models.Notification) error {
	if notif.ID == "" {
		notif.ID = uuid.New().String()
	}
	if notif.CreatedAt == "" {
		notif.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	}
	notif.Read = false

	if err := svc.Repo.Insert(ctx, notif); err != nil {
		return fmt.Errorf("notify %s: %w", notif.UserID, err)
	}
	svc.Feed.Publish(feed.NotificationsTopic(notif.UserID))
	return nil
}

// SubscribeToNotifications invokes callback with the recipient's capped
// notification list now and again after every change. Returns an unsubscribe
// func.
func (svc *DefaultNotificationService) SubscribeToNotifications(userID string, callback func([]models.Notification)) func() {
	push := func() {
		notifs, err := svc.Repo.ListByUser(context.Background(), userID, ListLimit)
		if err != nil {
			svc.logger().Warn("notification feed query failed", zap.String("userId", userID), zap.Error(err))
			return
		}
		callback(notifs)
	}
	unsubscribe := svc.Feed.Subscribe(feed.NotificationsTopic(userID), push)
	go push()
	return unsubscribe
}

func (svc *DefaultNotificationService) logger() *zap.Logger {
	if svc.Logger != nil {
		return svc.Logger
	}
	return zap.L()
}
