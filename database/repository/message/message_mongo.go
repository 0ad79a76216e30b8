package messageRepo

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

// SendTransactionally inserts the message, upserts the conversation header and
// inserts the receiver's notification as one transaction.
func (repo *MongoMessageRepo) SendTransactionally(ctx context.Context, msg *models.Message, conv *models.Conversation, notif *models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	client := repo.messageColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if _, err := repo.messageColl.InsertOne(sc, msg); err != nil {
			_ = sc.AbortTransaction(sc)
			return fmt.Errorf("insert message failed: %w", err)
		}

		update := bson.M{
			"$set": bson.M{
				"participants": conv.Participants,
				"lastMessage":  msg,
				"updatedAt":    conv.UpdatedAt,
			},
			"$setOnInsert": bson.M{"createdAt": conv.CreatedAt},
			"$inc":         bson.M{"unreadCount": 1},
		}
		opts := options.Update().SetUpsert(true)
		if _, err := repo.convColl.UpdateOne(sc, bson.M{"id": conv.ID}, update, opts); err != nil {
			_ = sc.AbortTransaction(sc)
			return fmt.Errorf("upsert conversation failed: %w", err)
		}

		if _, err := repo.notifColl.InsertOne(sc, notif); err != nil {
			_ = sc.AbortTransaction(sc)
			return fmt.Errorf("insert message notification failed: %w", err)
		}
		return sc.CommitTransaction(sc)
	})
}

// ListBetween returns messages exchanged by the pair, oldest first, capped at limit.
func (repo *MongoMessageRepo) ListBetween(ctx context.Context, user1ID, user2ID string, limit int64) ([]models.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"senderId": user1ID, "receiverId": user2ID},
		{"senderId": user2ID, "receiverId": user1ID},
	}}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(limit)
	cursor, err := repo.messageColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	return messages, nil
}

// ListConversations returns a participant's conversation headers, most
// recently active first.
func (repo *MongoMessageRepo) ListConversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := repo.convColl.Find(ctx, bson.M{"participants": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer cursor.Close(ctx)

	var convs []models.Conversation
	if err := cursor.All(ctx, &convs); err != nil {
		return nil, fmt.Errorf("decode conversations: %w", err)
	}
	return convs, nil
}

// MarkReadFrom marks every unread message from sender to receiver as read and
// resets the conversation's unread counter.
func (repo *MongoMessageRepo) MarkReadFrom(ctx context.Context, senderID, receiverID string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"senderId": senderID, "receiverId": receiverID, "read": false}
	if _, err := repo.messageColl.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"read": true}}); err != nil {
		return fmt.Errorf("mark messages read: %w", err)
	}

	convID := models.ConversationID(senderID, receiverID)
	if _, err := repo.convColl.UpdateOne(ctx, bson.M{"id": convID}, bson.M{"$set": bson.M{"unreadCount": 0}}); err != nil {
		return fmt.Errorf("reset unread count: %w", err)
	}
	return nil
}

// CountUnread returns the number of unread messages addressed to the receiver.
func (repo *MongoMessageRepo) CountUnread(ctx context.Context, receiverID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	count, err := repo.messageColl.CountDocuments(ctx, bson.M{"receiverId": receiverID, "read": false})
	if err != nil {
		return 0, fmt.Errorf("count unread messages: %w", err)
	}
	return count, nil
}
