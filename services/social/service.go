package social

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

// ErrSelfSwipe is returned when a user swipes on their own profile.
var ErrSelfSwipe = errors.New("cannot swipe on your own profile")

// ErrInvalidAction is returned for an unknown swipe action.
var ErrInvalidAction = errors.New("invalid swipe action")

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// RecordSwipe persists the swipe. When a positive swipe is reciprocated, the
// match and both users' match notifications are committed as one atomic
// batch, and the new match is returned; otherwise the match is nil.
func (svc *DefaultSocialService) RecordSwipe(ctx context.Context, actorID, swipedID string, action models.SwipeAction) (*models.Match, error) {
	if !action.Valid() {
		return nil, ErrInvalidAction
	}
	if actorID == swipedID {
		return nil, ErrSelfSwipe
	}

	swipe := &models.Swipe{
		ID:        uuid.New().String(),
		SwiperID:  actorID,
		SwipedID:  swipedID,
		Action:    action,
		CreatedAt: nowISO(),
	}
	if err := svc.Repo.InsertSwipe(ctx, swipe); err != nil {
		return nil, fmt.Errorf("record swipe: %w", err)
	}

	if !action.Positive() {
		return nil, nil
	}

	mutual, err := svc.Repo.HasPositiveSwipe(ctx, swipedID, actorID)
	if err != nil {
		return nil, fmt.Errorf("check reciprocal swipe: %w", err)
	}
	if !mutual {
		return nil, nil
	}

	now := nowISO()
	match := &models.Match{
		ID:        uuid.New().String(),
		User1ID:   actorID,
		User2ID:   swipedID,
		CreatedAt: now,
	}
	notifs := []*models.Notification{
		matchNotification(actorID, match.ID, now),
		matchNotification(swipedID, match.ID, now),
	}
	if err := svc.Repo.CreateMatchWithNotifications(ctx, match, notifs); err != nil {
		return nil, fmt.Errorf("create match: %w", err)
	}

	svc.logger().Info("travelers matched",
		zap.String("matchId", match.ID),
		zap.String("user1", actorID),
		zap.String("user2", swipedID))

	svc.Feed.Publish(
		feed.NotificationsTopic(actorID),
		feed.NotificationsTopic(swipedID),
	)
	return match, nil
}

func matchNotification(userID, matchID, createdAt string) *models.Notification {
	return &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     "It's a Match!",
		Message:   "You matched with a fellow traveler",
		Type:      models.NotifyMatch,
		RelatedID: matchID,
		Read:      false,
		CreatedAt: createdAt,
	}
}

// GetSwipeableProfiles returns every profile except the caller's own and
// those already swiped on.
func (svc *DefaultSocialService) GetSwipeableProfiles(ctx context.Context, userID string) ([]models.Profile, error) {
	swipedIDs, err := svc.Repo.ListSwipedIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list swiped ids: %w", err)
	}
	swiped := make(map[string]bool, len(swipedIDs))
	for _, id := range swipedIDs {
		swiped[id] = true
	}

	profiles, err := svc.Users.ListProfilesExcluding(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	out := profiles[:0]
	for _, p := range profiles {
		if !swiped[p.UserID] {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetUserMatches returns the profiles of every user matched with userID.
func (svc *DefaultSocialService) GetUserMatches(ctx context.Context, userID string) ([]models.Profile, error) {
	matches, err := svc.Repo.ListMatchesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	otherIDs := make([]string, 0, len(matches))
	for _, m := range matches {
		if m.User1ID == userID {
			otherIDs = append(otherIDs, m.User2ID)
		} else {
			otherIDs = append(otherIDs, m.User1ID)
		}
	}
	if len(otherIDs) == 0 {
		return nil, nil
	}
	return svc.Users.ListProfilesByUserIDs(ctx, otherIDs)
}

func (svc *DefaultSocialService) logger() *zap.Logger {
	if svc.Logger != nil {
		return svc.Logger
	}
	return zap.L()
}
