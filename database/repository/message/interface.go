package messageRepo

import (
	"context"

	"wanderly/database"
	"wanderly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MessageRepository defines data access for direct messages and conversation
// headers. Sending pairs the message insert, the conversation upsert and the
// receiver's notification in one transaction.
type MessageRepository interface {
	SendTransactionally(ctx context.Context, msg *models.Message, conv *models.Conversation, notif *models.Notification) error
	ListBetween(ctx context.Context, user1ID, user2ID string, limit int64) ([]models.Message, error)
	ListConversations(ctx context.Context, userID string) ([]models.Conversation, error)
	MarkReadFrom(ctx context.Context, senderID, receiverID string) error
	CountUnread(ctx context.Context, receiverID string) (int64, error)
}

// MongoMessageRepo implements MessageRepository on MongoDB.
type MongoMessageRepo struct {
	messageColl *mongo.Collection
	convColl    *mongo.Collection
	notifColl   *mongo.Collection
}

// NewMongoMessageRepo returns a MessageRepository backed by MongoDB.
func NewMongoMessageRepo() MessageRepository {
	db := database.DB()
	return &MongoMessageRepo{
		messageColl: db.Collection("messages"),
		convColl:    db.Collection("conversations"),
		notifColl:   db.Collection("notifications"),
	}
}
