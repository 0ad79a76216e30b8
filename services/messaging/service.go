package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wanderly/models"
	"wanderly/services/feed"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrEmptyMessage is returned when the message body is blank.
var ErrEmptyMessage = errors.New("message content is empty")

// ErrSelfMessage is returned when a user messages themselves.
var ErrSelfMessage = errors.New("cannot message yourself")

// SendMessage persists the message, bumps the pair's conversation header and
// writes the receiver's message notification as one atomic batch. Returns the
// message ID.
func (svc *DefaultMessagingService) SendMessage(ctx context.Context, actorID, receiverID, content string) (string, error) {
	if content == "" {
		return "", ErrEmptyMessage
	}
	if actorID == receiverID {
		return "", ErrSelfMessage
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	msg := &models.Message{
		ID:         uuid.New().String(),
		SenderID:   actorID,
		ReceiverID: receiverID,
		Content:    content,
		Read:       false,
		CreatedAt:  now,
	}

	convID := models.ConversationID(actorID, receiverID)
	participants := []string{actorID, receiverID}
	if participants[1] < participants[0] {
		participants[0], participants[1] = participants[1], participants[0]
	}
	conv := &models.Conversation{
		ID:           convID,
		Participants: participants,
		LastMessage:  msg,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	notif := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    receiverID,
		Title:     "New Message",
		Message:   preview(content),
		Type:      models.NotifyMessage,
		RelatedID: msg.ID,
		Read:      false,
		CreatedAt: now,
	}

	if err := svc.Repo.SendTransactionally(ctx, msg, conv, notif); err != nil {
		return "", fmt.Errorf("send message: %w", err)
	}

	svc.logger().Debug("message sent",
		zap.String("messageId", msg.ID),
		zap.String("senderId", actorID),
		zap.String("receiverId", receiverID))

	svc.Feed.Publish(feed.NotificationsTopic(receiverID))
	return msg.ID, nil
}

// GetMessages returns the thread between the caller and the other user,
// oldest first, capped at MessageLimit.
func (svc *DefaultMessagingService) GetMessages(ctx context.Context, actorID, otherID string) ([]models.Message, error) {
	return svc.Repo.ListBetween(ctx, actorID, otherID, MessageLimit)
}

// GetConversations returns the caller's conversation headers, most recently
// active first.
func (svc *DefaultMessagingService) GetConversations(ctx context.Context, actorID string) ([]models.Conversation, error) {
	return svc.Repo.ListConversations(ctx, actorID)
}

// MarkMessagesRead marks everything the given sender sent to the caller as read.
func (svc *DefaultMessagingService) MarkMessagesRead(ctx context.Context, actorID, senderID string) error {
	if err := svc.Repo.MarkReadFrom(ctx, senderID, actorID); err != nil {
		return fmt.Errorf("mark messages read: %w", err)
	}
	return nil
}

// UnreadCount returns how many unread messages await the caller.
func (svc *DefaultMessagingService) UnreadCount(ctx context.Context, actorID string) (int64, error) {
	return svc.Repo.CountUnread(ctx, actorID)
}

func preview(content string) string {
	const max = 80
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max]) + "…"
}

func (svc *DefaultMessagingService) logger() *zap.Logger {
	if svc.Logger != nil {
		return svc.Logger
	}
	return zap.L()
}
