package social

import (
	"context"
	"sync"
	"testing"

	"wanderly/models"
	"wanderly/services/feed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSocialRepo struct {
	mu      sync.Mutex
	swipes  []models.Swipe
	matches []models.Match
	notifs  []models.Notification
}

func (r *fakeSocialRepo) InsertSwipe(ctx context.Context, s *models.Swipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.swipes = append(r.swipes, *s)
	return nil
}

func (r *fakeSocialRepo) HasPositiveSwipe(ctx context.Context, swiperID, swipedID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.swipes {
		if s.SwiperID == swiperID && s.SwipedID == swipedID && s.Action.Positive() {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSocialRepo) ListSwipedIDs(ctx context.Context, swiperID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, s := range r.swipes {
		if s.SwiperID == swiperID {
			out = append(out, s.SwipedID)
		}
	}
	return out, nil
}

func (r *fakeSocialRepo) CreateMatchWithNotifications(ctx context.Context, m *models.Match, notifs []*models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches = append(r.matches, *m)
	for _, n := range notifs {
		r.notifs = append(r.notifs, *n)
	}
	return nil
}

func (r *fakeSocialRepo) ListMatchesByUser(ctx context.Context, userID string) ([]models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Match
	for _, m := range r.matches {
		if m.User1ID == userID || m.User2ID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeProfileRepo struct {
	profiles map[string]models.Profile
}

func (r *fakeProfileRepo) Create(ctx context.Context, u *models.User) error { return nil }
func (r *fakeProfileRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return nil, nil
}
func (r *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}
func (r *fakeProfileRepo) UpsertProfile(ctx context.Context, p *models.Profile) error { return nil }
func (r *fakeProfileRepo) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	return nil, nil
}

func (r *fakeProfileRepo) ListProfilesExcluding(ctx context.Context, userID string) ([]models.Profile, error) {
	var out []models.Profile
	for id, p := range r.profiles {
		if id != userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProfileRepo) ListProfilesByUserIDs(ctx context.Context, userIDs []string) ([]models.Profile, error) {
	var out []models.Profile
	for _, id := range userIDs {
		if p, ok := r.profiles[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func newTestService() (*DefaultSocialService, *fakeSocialRepo, *fakeProfileRepo) {
	repo := &fakeSocialRepo{}
	users := &fakeProfileRepo{profiles: map[string]models.Profile{
		"user-1": {UserID: "user-1", City: "Nairobi"},
		"user-2": {UserID: "user-2", City: "Mombasa"},
		"user-3": {UserID: "user-3", City: "Kisumu"},
	}}
	svc := &DefaultSocialService{
		Repo:   repo,
		Users:  users,
		Feed:   feed.NewHub(nil, zap.NewNop()),
		Logger: zap.NewNop(),
	}
	return svc, repo, users
}

func TestRecordSwipeValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.RecordSwipe(ctx, "user-1", "user-1", models.SwipeLike)
	require.ErrorIs(t, err, ErrSelfSwipe)

	_, err = svc.RecordSwipe(ctx, "user-1", "user-2", "wink")
	require.ErrorIs(t, err, ErrInvalidAction)
}

func TestRecordSwipeNoMatchUntilReciprocated(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	match, err := svc.RecordSwipe(ctx, "user-1", "user-2", models.SwipeLike)
	require.NoError(t, err)
	assert.Nil(t, match)
	assert.Empty(t, repo.matches)

	// A pass back does not complete the match.
	match, err = svc.RecordSwipe(ctx, "user-2", "user-1", models.SwipePass)
	require.NoError(t, err)
	assert.Nil(t, match)
	assert.Empty(t, repo.matches)
}

func TestReciprocalLikeCreatesMatch(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := svc.RecordSwipe(ctx, "user-2", "user-1", models.SwipeLike)
	require.NoError(t, err)

	match, err := svc.RecordSwipe(ctx, "user-1", "user-2", models.SwipeSuper)
	require.NoError(t, err)
	require.NotNil(t, match)

	require.Len(t, repo.matches, 1)
	require.Len(t, repo.notifs, 2)
	recipients := []string{repo.notifs[0].UserID, repo.notifs[1].UserID}
	assert.ElementsMatch(t, []string{"user-1", "user-2"}, recipients)
	for _, n := range repo.notifs {
		assert.Equal(t, "It's a Match!", n.Title)
		assert.Equal(t, "You matched with a fellow traveler", n.Message)
		assert.Equal(t, models.NotifyMatch, n.Type)
		assert.Equal(t, match.ID, n.RelatedID)
	}
}

func TestGetSwipeableProfilesExcludesSwiped(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.RecordSwipe(ctx, "user-1", "user-2", models.SwipePass)
	require.NoError(t, err)

	profiles, err := svc.GetSwipeableProfiles(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "user-3", profiles[0].UserID)
}

func TestGetUserMatches(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.RecordSwipe(ctx, "user-2", "user-1", models.SwipeLike)
	require.NoError(t, err)
	_, err = svc.RecordSwipe(ctx, "user-1", "user-2", models.SwipeLike)
	require.NoError(t, err)

	profiles, err := svc.GetUserMatches(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "user-2", profiles[0].UserID)

	none, err := svc.GetUserMatches(ctx, "user-3")
	require.NoError(t, err)
	assert.Empty(t, none)
}
