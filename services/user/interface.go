package user

import (
	"context"

	userRepo "wanderly/database/repository/user"
	"wanderly/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// UserService covers accounts and travel profiles. Authentication is
// deliberately thin: its job is giving every mutating call an actor identity.
type UserService interface {
	Register(ctx context.Context, email, name, password string) (*models.User, string, error)
	SignIn(ctx context.Context, email, password string) (*models.User, string, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	SaveProfile(ctx context.Context, actorID string, profile models.Profile) (*models.Profile, error)
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
	Logger    *zap.Logger
}
