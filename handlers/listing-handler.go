package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"property-marketplace/marketplace-service/middleware"
	"property-marketplace/marketplace-service/models"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListingService is the slice of the listing service the handlers need.
type ListingService interface {
	Create(ctx context.Context, listing models.Listing) (*models.Listing, error)
	GetAll(ctx context.Context) ([]models.Listing, error)
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	Update(ctx context.Context, id string, patch models.ListingPatch, callerID string) (*models.Listing, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type ListingHandler struct {
	ListingService ListingService
}

func NewListingHandler(listingService ListingService) *ListingHandler {
	return &ListingHandler{ListingService: listingService}
}

// Create stamps the authenticated caller as the owner; a client-supplied
// owner field is ignored.
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, r, models.ErrTokenInvalid)
		return
	}

	var listing models.Listing
	if err := json.NewDecoder(r.Body).Decode(&listing); err != nil {
		respondError(w, r, models.NewValidationError("invalid request data"))
		return
	}

	ownerID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		respondError(w, r, models.ErrTokenInvalid)
		return
	}
	listing.Owner = ownerID

	created, err := h.ListingService.Create(r.Context(), listing)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, "Listing created", created)
}

func (h *ListingHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	listings, err := h.ListingService.GetAll(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, "", listings)
}

func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	listing, err := h.ListingService.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, "", listing)
}

func (h *ListingHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, r, models.ErrTokenInvalid)
		return
	}
	id := mux.Vars(r)["id"]

	var patch models.ListingPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, r, models.NewValidationError("invalid request data"))
		return
	}

	updated, err := h.ListingService.Update(r.Context(), id, patch, claims.UserID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, "Listing updated", updated)
}

func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, r, models.ErrTokenInvalid)
		return
	}
	id := mux.Vars(r)["id"]

	if err := h.ListingService.Delete(r.Context(), id, claims.UserID); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, "Listing deleted", nil)
}
