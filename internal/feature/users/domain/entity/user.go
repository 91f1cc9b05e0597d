// Package entity defines the domain entities for the users feature.
package entity

import (
	adentity "adboard_backend/internal/feature/ads/domain/entity"
)

// User represents a registered account that can post advertisements.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the login name of the user.
	// It must be unique across all users.
	Username string `gorm:"uniqueIndex;size:60;not null"`

	// Password is stored exactly as submitted. It is never included in
	// API responses.
	Password string `gorm:"size:255;not null" json:"-"`

	// Advertisements is a lookup-only association. It is not loaded by
	// default and carries no lifecycle semantics: deleting the user does
	// not cascade to its advertisements.
	Advertisements []adentity.Advertisement `gorm:"foreignKey:UserID"`
}
