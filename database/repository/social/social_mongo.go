package socialRepo

import (
	"context"
	"fmt"
	"time"

	"wanderly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const opTimeout = 5 * time.Second

// InsertSwipe persists a swipe decision.
func (repo *MongoSocialRepo) InsertSwipe(ctx context.Context, swipe *models.Swipe) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := repo.swipeColl.InsertOne(ctx, swipe); err != nil {
		return fmt.Errorf("insert swipe: %w", err)
	}
	return nil
}

// HasPositiveSwipe reports whether swiperID has liked or super-liked swipedID.
func (repo *MongoSocialRepo) HasPositiveSwipe(ctx context.Context, swiperID, swipedID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{
		"swiperId": swiperID,
		"swipedId": swipedID,
		"action":   bson.M{"$in": []models.SwipeAction{models.SwipeLike, models.SwipeSuper}},
	}
	count, err := repo.swipeColl.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("count swipes: %w", err)
	}
	return count > 0, nil
}

// ListSwipedIDs returns the IDs of every user the swiper has already swiped on.
func (repo *MongoSocialRepo) ListSwipedIDs(ctx context.Context, swiperID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := repo.swipeColl.Find(ctx, bson.M{"swiperId": swiperID})
	if err != nil {
		return nil, fmt.Errorf("list swipes: %w", err)
	}
	defer cursor.Close(ctx)

	var swipes []models.Swipe
	if err := cursor.All(ctx, &swipes); err != nil {
		return nil, fmt.Errorf("decode swipes: %w", err)
	}

	ids := make([]string, 0, len(swipes))
	for _, s := range swipes {
		ids = append(ids, s.SwipedID)
	}
	return ids, nil
}

// CreateMatchWithNotifications inserts the match document and both users'
// notifications in one transaction.
func (repo *MongoSocialRepo) CreateMatchWithNotifications(ctx context.Context, match *models.Match, notifs []*models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	client := repo.matchColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if _, err := repo.matchColl.InsertOne(sc, match); err != nil {
			_ = sc.AbortTransaction(sc)
			return fmt.Errorf("insert match failed: %w", err)
		}
		for _, n := range notifs {
			if _, err := repo.notifColl.InsertOne(sc, n); err != nil {
				_ = sc.AbortTransaction(sc)
				return fmt.Errorf("insert match notification failed: %w", err)
			}
		}
		return sc.CommitTransaction(sc)
	})
}

// ListMatchesByUser returns all matches involving the user, newest first.
func (repo *MongoSocialRepo) ListMatchesByUser(ctx context.Context, userID string) ([]models.Match, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"user1Id": userID},
		{"user2Id": userID},
	}}
	cursor, err := repo.matchColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer cursor.Close(ctx)

	var matches []models.Match
	if err := cursor.All(ctx, &matches); err != nil {
		return nil, fmt.Errorf("decode matches: %w", err)
	}
	return matches, nil
}
