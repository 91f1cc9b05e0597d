// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no user exists with the given ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameAlreadyExists is returned when attempting to store a user
	// with a username that is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")
)
