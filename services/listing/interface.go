package listing

import (
	"context"

	listingRepo "wanderly/database/repository/listing"
	"wanderly/models"

	"go.uber.org/zap"
)

// CreateListingInput is a listing minus server-assigned fields.
type CreateListingInput struct {
	Type         models.ServiceType `json:"type"`
	Title        string             `json:"title"`
	Description  string             `json:"description,omitempty"`
	Location     string             `json:"location"`
	PricePerUnit float64            `json:"pricePerUnit"`
	Capacity     int                `json:"capacity,omitempty"`
	Images       []string           `json:"images,omitempty"`
}

// ListingService covers CRUD for bookable offerings.
type ListingService interface {
	CreateListing(ctx context.Context, actorID string, input CreateListingInput) (*models.Listing, error)
	GetListing(ctx context.Context, id string) (*models.Listing, error)
	UpdateListing(ctx context.Context, actorID, id string, fields map[string]interface{}) error
	DeleteListing(ctx context.Context, actorID, id string) error
	ListByType(ctx context.Context, t models.ServiceType) ([]models.Listing, error)
	ListMine(ctx context.Context, actorID string) ([]models.Listing, error)
}

// DefaultListingService implements ListingService.
type DefaultListingService struct {
	Repo   listingRepo.ListingRepository
	Logger *zap.Logger
}
