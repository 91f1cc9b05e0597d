package usecase

import (
	"context"

	"adboard_backend/internal/feature/ads/domain/entity"
)

// AdvertisementRepository abstracts the persistence layer for
// advertisement entities. Defined by the consumer (usecase), implemented
// by adapters.
type AdvertisementRepository interface {
	// Create persists a new advertisement. The repository stamps
	// CreationTime on insert.
	Create(ctx context.Context, ad *entity.Advertisement) error

	// FindByID retrieves an advertisement by ID, or
	// ErrAdvertisementNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Advertisement, error)

	// Update applies the given column values inside a single transaction,
	// or returns ErrAdvertisementNotFound.
	Update(ctx context.Context, id uint, fields map[string]any) error

	// Delete removes an advertisement by ID, or returns
	// ErrAdvertisementNotFound.
	Delete(ctx context.Context, id uint) error
}

// AdvertisementPatch carries the optional fields of a partial update.
// CreationTime and UserID are not patchable.
type AdvertisementPatch struct {
	Title       *string
	Description *string
}

// Fields returns the sanitized column map for the patch: only fields with
// a concrete, non-empty value are included.
func (p AdvertisementPatch) Fields() map[string]any {
	fields := make(map[string]any, 2)
	if p.Title != nil && *p.Title != "" {
		fields["title"] = *p.Title
	}
	if p.Description != nil && *p.Description != "" {
		fields["description"] = *p.Description
	}
	return fields
}

// adUsecase implements the CRUD business logic for advertisements.
type adUsecase struct {
	ads AdvertisementRepository
}

// NewAdvertisementUsecase creates a new adUsecase instance.
func NewAdvertisementUsecase(ads AdvertisementRepository) *adUsecase {
	return &adUsecase{ads: ads}
}

// Create stores a new advertisement and returns it with the generated ID
// and creation timestamp. The referenced user is deliberately not checked
// for existence.
func (u *adUsecase) Create(ctx context.Context, title, description string, userID uint) (*entity.Advertisement, error) {
	ad := &entity.Advertisement{Title: title, Description: description, UserID: userID}
	if err := u.ads.Create(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

// Get returns the advertisement with the given ID.
func (u *adUsecase) Get(ctx context.Context, id uint) (*entity.Advertisement, error) {
	return u.ads.FindByID(ctx, id)
}

// Patch applies a partial update. An empty sanitized patch still verifies
// the advertisement exists.
func (u *adUsecase) Patch(ctx context.Context, id uint, patch AdvertisementPatch) error {
	fields := patch.Fields()
	if len(fields) == 0 {
		_, err := u.ads.FindByID(ctx, id)
		return err
	}
	return u.ads.Update(ctx, id, fields)
}

// Delete removes the advertisement with the given ID.
func (u *adUsecase) Delete(ctx context.Context, id uint) error {
	return u.ads.Delete(ctx, id)
}
