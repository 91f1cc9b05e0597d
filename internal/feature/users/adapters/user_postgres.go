// Package adapters provides the repository implementations for the users
// feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"adboard_backend/internal/feature/users/domain/entity"
	"adboard_backend/internal/feature/users/usecase"
)

// userPostgres is the GORM implementation of the UserRepository interface.
type userPostgres struct {
	db *gorm.DB
}

// Compile-time check that userPostgres implements UserRepository.
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres creates a new userPostgres backed by the given gorm.DB
// handle. Constructor for dependency injection.
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// isUniqueViolation reports whether err is a unique constraint failure.
// Covers both GORM's translated error and the raw postgres error code.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	// Postgres error 23505: duplicate key value violates unique constraint
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create inserts the user. A duplicate username maps to
// usecase.ErrUsernameAlreadyExists.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrUsernameAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID retrieves a user by ID.
// It returns usecase.ErrUserNotFound if no row matches.
func (r *userPostgres) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update loads the user and applies the given columns inside one
// transaction. The transaction commits only if every step succeeds.
func (r *userPostgres) Update(ctx context.Context, id uint, fields map[string]any) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u entity.User
		if err := tx.First(&u, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrUserNotFound
			}
			return err
		}
		if err := tx.Model(&u).Updates(fields).Error; err != nil {
			if isUniqueViolation(err) {
				return usecase.ErrUsernameAlreadyExists
			}
			return err
		}
		return nil
	})
}

// Delete loads the user and removes the row inside one transaction.
// Deletion is physical; associated advertisements are left untouched.
func (r *userPostgres) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u entity.User
		if err := tx.First(&u, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrUserNotFound
			}
			return err
		}
		return tx.Delete(&u).Error
	})
}
