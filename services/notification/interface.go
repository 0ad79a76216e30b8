package notification

import (
	"context"

	notificationRepo "wanderly/database/repository/notification"
	"wanderly/models"
	"wanderly/services/feed"

	"go.uber.org/zap"
)

// ListLimit caps every notification list and live view.
const ListLimit = 50

// NotificationService exposes the notification inbox. Booking notifications
// are created by the booking flow's atomic writes; Notify covers the social
// and messaging flows.
type NotificationService interface {
	GetUserNotifications(ctx context.Context, userID string) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, actorID, notificationID string) error
	Notify(ctx context.Context, notif *models.Notification) error

	SubscribeToNotifications(userID string, callback func([]models.Notification)) func()
}

// DefaultNotificationService implements NotificationService.
type DefaultNotificationService struct {
	Repo   notificationRepo.NotificationRepository
	Feed   *feed.Hub
	Logger *zap.Logger
}
