package services

import (
	"context"
	"fmt"
	"time"

	"property-marketplace/marketplace-service/logging"
	"property-marketplace/marketplace-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListingService performs CRUD over the listings collection. Mutations are
// restricted to the listing's owner.
type ListingService struct {
	ListingCollection *mongo.Collection
}

func NewListingService(listingCollection *mongo.Collection) *ListingService {
	return &ListingService{ListingCollection: listingCollection}
}

// Create persists a new listing owned by the authenticated caller and
// returns it with its generated identifier.
func (s *ListingService) Create(ctx context.Context, listing models.Listing) (*models.Listing, error) {
	if err := listing.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	listing.ID = primitive.NilObjectID
	listing.CreatedAt = now
	listing.UpdatedAt = now

	result, err := s.ListingCollection.InsertOne(ctx, listing)
	if err != nil {
		return nil, fmt.Errorf("failed to create listing: %v", err)
	}
	listing.ID = result.InsertedID.(primitive.ObjectID)

	logging.Logger.Infof("Event ID: LISTING_CREATED, Description: Listing '%s' created with ID %s", listing.Name, listing.ID.Hex())
	return &listing, nil
}

// GetAll returns every listing, most recently created first.
func (s *ListingService) GetAll(ctx context.Context) ([]models.Listing, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.ListingCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve listings: %v", err)
	}
	defer cursor.Close(ctx)

	listings := []models.Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %v", err)
	}
	return listings, nil
}

func (s *ListingService) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrListingNotFound
	}

	var listing models.Listing
	if err := s.ListingCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&listing); err != nil {
		return nil, models.ErrListingNotFound
	}
	return &listing, nil
}

// Update applies a partial patch to the listing: unspecified fields keep
// their prior values, and the merged document is validated again. Only the
// owner may update.
func (s *ListingService) Update(ctx context.Context, id string, patch models.ListingPatch, callerID string) (*models.Listing, error) {
	listing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.Owner.Hex() != callerID {
		return nil, models.ErrNotOwner
	}

	patch.Apply(listing)
	if err := listing.Validate(); err != nil {
		return nil, err
	}
	listing.UpdatedAt = time.Now()

	if _, err := s.ListingCollection.ReplaceOne(ctx, bson.M{"_id": listing.ID}, listing); err != nil {
		return nil, fmt.Errorf("failed to update listing: %v", err)
	}

	logging.Logger.Infof("Event ID: LISTING_UPDATED, Description: Listing %s updated", listing.ID.Hex())
	return listing, nil
}

// Delete removes the listing permanently. Only the owner may delete.
func (s *ListingService) Delete(ctx context.Context, id string, callerID string) error {
	listing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if listing.Owner.Hex() != callerID {
		return models.ErrNotOwner
	}

	result, err := s.ListingCollection.DeleteOne(ctx, bson.M{"_id": listing.ID})
	if err != nil {
		return fmt.Errorf("failed to delete listing: %v", err)
	}
	if result.DeletedCount == 0 {
		return models.ErrListingNotFound
	}

	logging.Logger.Infof("Event ID: LISTING_DELETED, Description: Listing %s deleted", listing.ID.Hex())
	return nil
}
