// Package entity defines the domain entities for the ads feature.
package entity

import "time"

// Advertisement represents a classified ad posted by a user.
type Advertisement struct {
	// ID is the unique identifier for the advertisement.
	ID uint `gorm:"primaryKey"`

	// Title is the short headline of the advertisement.
	Title string `gorm:"size:255;not null"`

	// Description is the free-form body of the advertisement.
	Description string `gorm:"not null"`

	// CreationTime is stamped by the persistence layer when the row is
	// inserted and is never updated afterwards. Clients cannot set it.
	CreationTime time.Time `gorm:"column:creation_time;autoCreateTime"`

	// UserID references the posting user's ID. The column carries no
	// foreign key constraint: the referenced user is not required to
	// exist, and deleting a user leaves its advertisements in place.
	UserID uint
}
