package listing

import (
	"context"
	"errors"
	"fmt"
	"time"

	listingRepo "wanderly/database/repository/listing"
	"wanderly/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when the referenced listing does not exist.
var ErrNotFound = errors.New("listing not found")

// ErrNotOwner is returned when a caller mutates someone else's listing.
var ErrNotOwner = errors.New("listing does not belong to caller")

// ErrInvalidInput is returned for malformed listing data.
var ErrInvalidInput = errors.New("invalid listing input")

// Mutable fields for UpdateListing; everything else is server-owned.
var updatableFields = map[string]bool{
	"title":        true,
	"description":  true,
	"location":     true,
	"pricePerUnit": true,
	"capacity":     true,
	"images":       true,
}

// CreateListing persists a new offering owned by the caller.
func (svc *DefaultListingService) CreateListing(ctx context.Context, actorID string, input CreateListingInput) (*models.Listing, error) {
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, input.Type)
	}
	if input.Title == "" || input.Location == "" {
		return nil, fmt.Errorf("%w: title and location are required", ErrInvalidInput)
	}

	l := &models.Listing{
		ID:           uuid.New().String(),
		OwnerID:      actorID,
		Type:         input.Type,
		Title:        input.Title,
		Description:  input.Description,
		Location:     input.Location,
		PricePerUnit: input.PricePerUnit,
		Capacity:     input.Capacity,
		Images:       input.Images,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := svc.Repo.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}
	return l, nil
}

// GetListing returns an offering by ID.
func (svc *DefaultListingService) GetListing(ctx context.Context, id string) (*models.Listing, error) {
	l, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, listingRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch listing %s: %w", id, err)
	}
	return l, nil
}

// UpdateListing applies a partial update after checking ownership. Unknown
// fields are rejected rather than silently dropped.
func (svc *DefaultListingService) UpdateListing(ctx context.Context, actorID, id string, fields map[string]interface{}) error {
	for k := range fields {
		if !updatableFields[k] {
			return fmt.Errorf("%w: field %q is not updatable", ErrInvalidInput, k)
		}
	}

	l, err := svc.GetListing(ctx, id)
	if err != nil {
		return err
	}
	if l.OwnerID != actorID {
		return ErrNotOwner
	}

	if err := svc.Repo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, listingRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("update listing %s: %w", id, err)
	}
	return nil
}

// DeleteListing removes an offering after checking ownership.
func (svc *DefaultListingService) DeleteListing(ctx context.Context, actorID, id string) error {
	l, err := svc.GetListing(ctx, id)
	if err != nil {
		return err
	}
	if l.OwnerID != actorID {
		return ErrNotOwner
	}

	if err := svc.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, listingRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete listing %s: %w", id, err)
	}
	return nil
}

// ListByType returns offerings of one type, newest first.
func (svc *DefaultListingService) ListByType(ctx context.Context, t models.ServiceType) ([]models.Listing, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, t)
	}
	return svc.Repo.ListByType(ctx, t)
}

// ListMine returns the caller's own offerings, newest first.
func (svc *DefaultListingService) ListMine(ctx context.Context, actorID string) ([]models.Listing, error) {
	return svc.Repo.ListByOwner(ctx, actorID)
}
