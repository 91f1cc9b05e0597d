// Package adapters provides the repository implementations for the ads
// feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"adboard_backend/internal/feature/ads/domain/entity"
	"adboard_backend/internal/feature/ads/usecase"
)

// adPostgres is the GORM implementation of the AdvertisementRepository
// interface.
type adPostgres struct {
	db *gorm.DB
}

// Compile-time check that adPostgres implements AdvertisementRepository.
var _ usecase.AdvertisementRepository = (*adPostgres)(nil)

// NewAdvertisementPostgres creates a new adPostgres backed by the given
// gorm.DB handle. Constructor for dependency injection.
func NewAdvertisementPostgres(db *gorm.DB) *adPostgres {
	return &adPostgres{db: db}
}

// Create inserts the advertisement. CreationTime is stamped by GORM's
// autoCreateTime on insert; the caller-supplied value is ignored. The
// user_id column is written as given, without checking the user exists.
func (r *adPostgres) Create(ctx context.Context, ad *entity.Advertisement) error {
	return r.db.WithContext(ctx).Create(ad).Error
}

// FindByID retrieves an advertisement by ID.
// It returns usecase.ErrAdvertisementNotFound if no row matches.
func (r *adPostgres) FindByID(ctx context.Context, id uint) (*entity.Advertisement, error) {
	var ad entity.Advertisement
	if err := r.db.WithContext(ctx).First(&ad, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAdvertisementNotFound
		}
		return nil, err
	}
	return &ad, nil
}

// Update loads the advertisement and applies the given columns inside one
// transaction. creation_time is never part of the column map.
func (r *adPostgres) Update(ctx context.Context, id uint, fields map[string]any) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ad entity.Advertisement
		if err := tx.First(&ad, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrAdvertisementNotFound
			}
			return err
		}
		return tx.Model(&ad).Updates(fields).Error
	})
}

// Delete loads the advertisement and removes the row inside one
// transaction.
func (r *adPostgres) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ad entity.Advertisement
		if err := tx.First(&ad, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrAdvertisementNotFound
			}
			return err
		}
		return tx.Delete(&ad).Error
	})
}
