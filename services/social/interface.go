package social

import (
	"context"

	socialRepo "wanderly/database/repository/social"
	userRepo "wanderly/database/repository/user"
	"wanderly/models"
	"wanderly/services/feed"

	"go.uber.org/zap"
)

// SocialService covers swipe-to-match between travelers. Swipeable profiles
// are simply every profile the caller has not yet swiped on; there is no
// ranking.
type SocialService interface {
	RecordSwipe(ctx context.Context, actorID, swipedID string, action models.SwipeAction) (*models.Match, error)
	GetSwipeableProfiles(ctx context.Context, userID string) ([]models.Profile, error)
	GetUserMatches(ctx context.Context, userID string) ([]models.Profile, error)
}

// DefaultSocialService implements SocialService.
type DefaultSocialService struct {
	Repo   socialRepo.SocialRepository
	Users  userRepo.UserRepository
	Feed   *feed.Hub
	Logger *zap.Logger
}
