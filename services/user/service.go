package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "wanderly/database/repository/user"
	"wanderly/models"
	"wanderly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrEmailTaken is returned when registering with an email already in use.
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials is returned for a bad email/password pair.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrNotFound is returned when the referenced user or profile does not exist.
var ErrNotFound = errors.New("user not found")

const tokenTTL = 72 * time.Hour

// Register creates an account and returns it with a signed session token.
func (svc *DefaultUserService) Register(ctx context.Context, email, name, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	if _, err := svc.Repo.GetByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, userRepo.ErrNotFound) {
		return nil, "", fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := svc.Repo.Create(ctx, u); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := svc.issueToken(ctx, u)
	if err != nil {
		return nil, "", err
	}
	svc.logger().Info("user registered", zap.String("userId", u.ID))
	return u, token, nil
}

// SignIn authenticates the email/password pair and returns the account with a
// fresh session token.
func (svc *DefaultUserService) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	u, err := svc.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("fetch user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.issueToken(ctx, u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (svc *DefaultUserService) issueToken(ctx context.Context, u *models.User) (string, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, tokenTTL)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	if svc.AuthCache != nil {
		key := utils.AuthCachePrefix + u.ID
		if err := svc.AuthCache.Set(ctx, key, utils.HashToken(token), time.Hour).Err(); err != nil {
			svc.logger().Warn("auth cache write failed", zap.String("userId", u.ID), zap.Error(err))
		}
	}
	return token, nil
}

// GetUserByID returns an account by ID.
func (svc *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	u, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch user %s: %w", id, err)
	}
	return u, nil
}

// SaveProfile creates or updates the caller's travel profile.
func (svc *DefaultUserService) SaveProfile(ctx context.Context, actorID string, profile models.Profile) (*models.Profile, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	profile.UserID = actorID
	profile.UpdatedAt = now
	if profile.CreatedAt == "" {
		if existing, err := svc.Repo.GetProfile(ctx, actorID); err == nil {
			profile.CreatedAt = existing.CreatedAt
		} else {
			profile.CreatedAt = now
		}
	}

	if err := svc.Repo.UpsertProfile(ctx, &profile); err != nil {
		return nil, fmt.Errorf("save profile for %s: %w", actorID, err)
	}
	return &profile, nil
}

// GetProfile returns a user's travel profile.
func (svc *DefaultUserService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	p, err := svc.Repo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch profile for %s: %w", userID, err)
	}
	return p, nil
}

func (svc *DefaultUserService) logger() *zap.Logger {
	if svc.Logger != nil {
		return svc.Logger
	}
	return zap.L()
}
