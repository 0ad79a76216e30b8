package user

import (
	"context"
	"sync"
	"testing"

	"wanderly/config"
	userRepo "wanderly/database/repository/user"
	"wanderly/models"
	"wanderly/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	mu       sync.Mutex
	users    map[string]models.User
	profiles map[string]models.Profile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    make(map[string]models.User),
		profiles: make(map[string]models.Profile),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, userRepo.ErrNotFound
}

func (r *fakeUserRepo) UpsertProfile(ctx context.Context, p *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.UserID] = *p
	return nil
}

func (r *fakeUserRepo) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	return &p, nil
}

func (r *fakeUserRepo) ListProfilesExcluding(ctx context.Context, userID string) ([]models.Profile, error) {
	return nil, nil
}

func (r *fakeUserRepo) ListProfilesByUserIDs(ctx context.Context, userIDs []string) ([]models.Profile, error) {
	return nil, nil
}

func newTestService(t *testing.T) (*DefaultUserService, *fakeUserRepo) {
	t.Helper()
	config.AppConfig.JWTSecret = "test-secret"
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo, Logger: zap.NewNop()}
	return svc, repo
}

func TestRegisterAndSignIn(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	u, token, err := svc.Register(ctx, "amina@example.com", "Amina", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, "hunter22", u.PasswordHash)

	subject, err := utils.ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, subject)

	signed, token2, err := svc.SignIn(ctx, "amina@example.com", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, token2)
	assert.Equal(t, u.ID, signed.ID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "amina@example.com", "Amina", "hunter22")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "amina@example.com", "Impostor", "other-pass")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "amina@example.com", "Amina", "hunter22")
	require.NoError(t, err)

	_, _, err = svc.SignIn(ctx, "amina@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.SignIn(ctx, "nobody@example.com", "hunter22")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSaveProfilePreservesCreatedAt(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.SaveProfile(ctx, "user-1", models.Profile{Bio: "Hiker", City: "Nairobi"})
	require.NoError(t, err)
	require.NotEmpty(t, first.CreatedAt)

	second, err := svc.SaveProfile(ctx, "user-1", models.Profile{Bio: "Hiker and diver", City: "Nairobi"})
	require.NoError(t, err)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, "user-1", second.UserID)

	got, err := svc.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Hiker and diver", got.Bio)

	_, err = svc.GetProfile(ctx, "nobody")
	require.ErrorIs(t, err, ErrNotFound)
}
