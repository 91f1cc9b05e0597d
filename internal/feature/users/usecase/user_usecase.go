package usecase

import (
	"context"

	"adboard_backend/internal/feature/users/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase) rather than the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrUsernameAlreadyExists if
	// the username is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID, or ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Update applies the given column values to an existing user inside a
	// single transaction. It returns ErrUserNotFound if the user does not
	// exist.
	Update(ctx context.Context, id uint, fields map[string]any) error

	// Delete removes a user by ID, or returns ErrUserNotFound.
	Delete(ctx context.Context, id uint) error
}

// UserPatch carries the optional fields of a partial update. A nil field
// was absent from (or null in) the request and must not touch the stored
// value.
type UserPatch struct {
	Username *string
	Password *string
}

// Fields returns the sanitized column map for the patch: only fields with
// a concrete, non-empty value are included.
func (p UserPatch) Fields() map[string]any {
	fields := make(map[string]any, 2)
	if p.Username != nil && *p.Username != "" {
		fields["username"] = *p.Username
	}
	if p.Password != nil && *p.Password != "" {
		fields["password"] = *p.Password
	}
	return fields
}

// userUsecase implements the CRUD business logic for users.
type userUsecase struct {
	users UserRepository
}

// NewUserUsecase creates a new userUsecase instance.
func NewUserUsecase(users UserRepository) *userUsecase {
	return &userUsecase{users: users}
}

// Create stores a new user and returns it with the generated ID.
func (u *userUsecase) Create(ctx context.Context, username, password string) (*entity.User, error) {
	user := &entity.User{Username: username, Password: password}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get returns the user with the given ID.
func (u *userUsecase) Get(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// Patch applies a partial update. A patch that sanitizes down to no fields
// still verifies the user exists, matching the behavior of a full update
// with zero changes.
func (u *userUsecase) Patch(ctx context.Context, id uint, patch UserPatch) error {
	fields := patch.Fields()
	if len(fields) == 0 {
		_, err := u.users.FindByID(ctx, id)
		return err
	}
	return u.users.Update(ctx, id, fields)
}

// Delete removes the user with the given ID.
func (u *userUsecase) Delete(ctx context.Context, id uint) error {
	return u.users.Delete(ctx, id)
}
