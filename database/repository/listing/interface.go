package listingRepo

import (
	"context"
	"errors"

	"wanderly/database"
	"wanderly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when the referenced listing does not exist.
var ErrNotFound = errors.New("listing not found")

// ListingRepository defines data access for bookable offerings.
type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) error
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	ListByType(ctx context.Context, t models.ServiceType) ([]models.Listing, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Listing, error)
}

// MongoListingRepo implements ListingRepository on MongoDB.
type MongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo returns a ListingRepository backed by MongoDB.
func NewMongoListingRepo() ListingRepository {
	return &MongoListingRepo{
		coll: database.DB().Collection("listings"),
	}
}
