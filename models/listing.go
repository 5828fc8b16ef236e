package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ListingType string

const (
	TypeSale ListingType = "sale"
	TypeRent ListingType = "rent"
)

const (
	MinRooms = 1
	MaxRooms = 6

	MinRegularPrice = 1000000
	MaxRegularPrice = 20000000
)

type Listing struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Address       string             `bson:"address" json:"address"`
	Description   string             `bson:"description" json:"description"`
	Type          ListingType        `bson:"type" json:"type"`
	Bedrooms      int                `bson:"bedrooms" json:"bedrooms"`
	Bathrooms     int                `bson:"bathrooms" json:"bathrooms"`
	RegularPrice  int64              `bson:"regularPrice" json:"regularPrice"`
	DiscountPrice int64              `bson:"discountPrice" json:"discountPrice"`
	Parking       bool               `bson:"parking" json:"parking"`
	Furnished     bool               `bson:"furnished" json:"furnished"`
	Offer         bool               `bson:"offer" json:"offer"`
	Images        []string           `bson:"images,omitempty" json:"images,omitempty"`
	Owner         primitive.ObjectID `bson:"owner,omitempty" json:"owner,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Validate enforces the schema constraints. It runs on create and again on
// the merged document during a partial update.
func (l Listing) Validate() error {
	if l.Name == "" {
		return NewValidationError("name is required")
	}
	if l.Address == "" {
		return NewValidationError("address is required")
	}
	if l.Type != TypeSale && l.Type != TypeRent {
		return NewValidationError("type must be either sale or rent")
	}
	if l.Bedrooms < MinRooms || l.Bedrooms > MaxRooms {
		return NewValidationError(fmt.Sprintf("bedrooms must be between %d and %d", MinRooms, MaxRooms))
	}
	if l.Bathrooms < MinRooms || l.Bathrooms > MaxRooms {
		return NewValidationError(fmt.Sprintf("bathrooms must be between %d and %d", MinRooms, MaxRooms))
	}
	if l.RegularPrice < MinRegularPrice || l.RegularPrice > MaxRegularPrice {
		return NewValidationError(fmt.Sprintf("regularPrice must be between %d and %d", MinRegularPrice, MaxRegularPrice))
	}
	if l.DiscountPrice < 0 {
		return NewValidationError("discountPrice cannot be negative")
	}
	return nil
}

// ListingPatch carries a partial update. Nil fields keep their prior values.
type ListingPatch struct {
	Name          *string      `json:"name"`
	Address       *string      `json:"address"`
	Description   *string      `json:"description"`
	Type          *ListingType `json:"type"`
	Bedrooms      *int         `json:"bedrooms"`
	Bathrooms     *int         `json:"bathrooms"`
	RegularPrice  *int64       `json:"regularPrice"`
	DiscountPrice *int64       `json:"discountPrice"`
	Parking       *bool        `json:"parking"`
	Furnished     *bool        `json:"furnished"`
	Offer         *bool        `json:"offer"`
	Images        *[]string    `json:"images"`
}

func (p ListingPatch) Apply(l *Listing) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Address != nil {
		l.Address = *p.Address
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.Type != nil {
		l.Type = *p.Type
	}
	if p.Bedrooms != nil {
		l.Bedrooms = *p.Bedrooms
	}
	if p.Bathrooms != nil {
		l.Bathrooms = *p.Bathrooms
	}
	if p.RegularPrice != nil {
		l.RegularPrice = *p.RegularPrice
	}
	if p.DiscountPrice != nil {
		l.DiscountPrice = *p.DiscountPrice
	}
	if p.Parking != nil {
		l.Parking = *p.Parking
	}
	if p.Furnished != nil {
		l.Furnished = *p.Furnished
	}
	if p.Offer != nil {
		l.Offer = *p.Offer
	}
	if p.Images != nil {
		l.Images = *p.Images
	}
}
