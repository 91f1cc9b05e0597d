// Package usecase implements the business logic for the ads feature.
package usecase

import "errors"

// ErrAdvertisementNotFound is returned when no advertisement exists with
// the given ID.
var ErrAdvertisementNotFound = errors.New("advertisement not found")
