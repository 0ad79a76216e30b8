package listing

import (
	"context"
	"sync"
	"testing"

	listingRepo "wanderly/database/repository/listing"
	"wanderly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeListingRepo struct {
	mu       sync.Mutex
	listings map[string]models.Listing
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[string]models.Listing)}
}

func (r *fakeListingRepo) Create(ctx context.Context, l *models.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listings[l.ID] = *l
	return nil
}

func (r *fakeListingRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return nil, listingRepo.ErrNotFound
	}
	return &l, nil
}

func (r *fakeListingRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return listingRepo.ErrNotFound
	}
	if v, ok := fields["title"].(string); ok {
		l.Title = v
	}
	if v, ok := fields["location"].(string); ok {
		l.Location = v
	}
	r.listings[id] = l
	return nil
}

func (r *fakeListingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[id]; !ok {
		return listingRepo.ErrNotFound
	}
	delete(r.listings, id)
	return nil
}

func (r *fakeListingRepo) ListByType(ctx context.Context, t models.ServiceType) ([]models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Listing
	for _, l := range r.listings {
		if l.Type == t {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Listing
	for _, l := range r.listings {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func newTestService() (*DefaultListingService, *fakeListingRepo) {
	repo := newFakeListingRepo()
	return &DefaultListingService{Repo: repo, Logger: zap.NewNop()}, repo
}

func TestCreateListing(t *testing.T) {
	svc, _ := newTestService()

	l, err := svc.CreateListing(context.Background(), "owner-1", CreateListingInput{
		Type:         models.ServiceStay,
		Title:        "Lakeside Cabin",
		Location:     "Naivasha",
		PricePerUnit: 60,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "owner-1", l.OwnerID)
	assert.NotEmpty(t, l.CreatedAt)
}

func TestCreateListingValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateListing(ctx, "owner-1", CreateListingInput{Type: "flight", Title: "x", Location: "y"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateListing(ctx, "owner-1", CreateListingInput{Type: models.ServiceStay})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateListingOwnership(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	l, err := svc.CreateListing(ctx, "owner-1", CreateListingInput{
		Type:     models.ServiceTour,
		Title:    "Hell's Gate Cycling",
		Location: "Naivasha",
	})
	require.NoError(t, err)

	err = svc.UpdateListing(ctx, "someone-else", l.ID, map[string]interface{}{"title": "Hijacked"})
	require.ErrorIs(t, err, ErrNotOwner)
	assert.Equal(t, "Hell's Gate Cycling", repo.listings[l.ID].Title)

	err = svc.UpdateListing(ctx, "owner-1", l.ID, map[string]interface{}{"status": "hidden"})
	require.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, svc.UpdateListing(ctx, "owner-1", l.ID, map[string]interface{}{"title": "Hell's Gate Cycling Tour"}))
	assert.Equal(t, "Hell's Gate Cycling Tour", repo.listings[l.ID].Title)
}

func TestDeleteListingOwnership(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	l, err := svc.CreateListing(ctx, "owner-1", CreateListingInput{
		Type:     models.ServiceRide,
		Title:    "Airport transfer",
		Location: "Nairobi",
	})
	require.NoError(t, err)

	require.ErrorIs(t, svc.DeleteListing(ctx, "someone-else", l.ID), ErrNotOwner)
	require.NoError(t, svc.DeleteListing(ctx, "owner-1", l.ID))
	assert.Empty(t, repo.listings)

	require.ErrorIs(t, svc.DeleteListing(ctx, "owner-1", l.ID), ErrNotFound)
}
