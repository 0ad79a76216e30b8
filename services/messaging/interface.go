package messaging

import (
	"context"

	messageRepo "wanderly/database/repository/message"
	"wanderly/models"
	"wanderly/services/feed"

	"go.uber.org/zap"
)

// MessageLimit caps per-thread message fetches.
const MessageLimit = 50

// MessagingService covers direct messages between matched travelers.
type MessagingService interface {
	SendMessage(ctx context.Context, actorID, receiverID, content string) (string, error)
	GetMessages(ctx context.Context, actorID, otherID string) ([]models.Message, error)
	GetConversations(ctx context.Context, actorID string) ([]models.Conversation, error)
	MarkMessagesRead(ctx context.Context, actorID, senderID string) error
	UnreadCount(ctx context.Context, actorID string) (int64, error)
}

// DefaultMessagingService implements MessagingService.
type DefaultMessagingService struct {
	Repo   messageRepo.MessageRepository
	Feed   *feed.Hub
	Logger *zap.Logger
}
