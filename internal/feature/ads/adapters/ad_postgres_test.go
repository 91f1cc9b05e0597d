package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"adboard_backend/internal/feature/ads/domain/entity"
	"adboard_backend/internal/feature/ads/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Advertisement{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestAdvertisementPostgres_Create(t *testing.T) {
	t.Run("creation stamps the timestamp server-side", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAdvertisementPostgres(db)

		before := time.Now().Add(-time.Second)
		ad := &entity.Advertisement{Title: "bike", Description: "red bike", UserID: 1}

		err := repo.Create(context.Background(), ad)

		require.NoError(t, err, "failed to create advertisement")
		assert.NotZero(t, ad.ID, "ID is not set")
		assert.False(t, ad.CreationTime.IsZero(), "CreationTime is not set")
		assert.True(t, ad.CreationTime.After(before), "CreationTime should be recent")
	})

	t.Run("orphaned user_id is accepted", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAdvertisementPostgres(db)

		// No users table rows exist at all; the insert must still succeed.
		ad := &entity.Advertisement{Title: "t", Description: "d", UserID: 9999}

		err := repo.Create(context.Background(), ad)

		assert.NoError(t, err, "insert must not validate the referenced user")
	})
}

func TestAdvertisementPostgres_FindByID(t *testing.T) {
	t.Run("find advertisement by ID successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAdvertisementPostgres(db)

		expected := &entity.Advertisement{Title: "sofa", Description: "blue sofa", UserID: 3}
		require.NoError(t, repo.Create(context.Background(), expected))

		found, err := repo.FindByID(context.Background(), expected.ID)

		assert.NoError(t, err, "failed to find advertisement")
		assert.Equal(t, expected.Title, found.Title, "title does not match")
		assert.Equal(t, expected.Description, found.Description, "description does not match")
		assert.Equal(t, expected.UserID, found.UserID, "user_id does not match")
	})

	t.Run("ID not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAdvertisementPostgres(db)

		found, err := repo.FindByID(context.Background(), 999)

		assert.Nil(t, found, "advertisement should be nil")
		assert.ErrorIs(t, err, usecase.ErrAdvertisementNotFound, "should return ErrAdvertisementNotFound")
	})
}

func TestAdvertisementPostgres_Update(t *testing.T) {
	t.Run("partial update changes exactly the given fields", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAdvertisementPostgres(db)

		ad := &entity.Advertisement{Title: "old title", Description: "keep", UserID: 5}
		require.NoError(t, repo.Create(context.Background(), ad))

		err := repo.Update(context.Background(), ad.ID, map[string]any{"title": "new title"})
		require.NoError(t, err, "failed to update advertisement")

		found, err := repo.FindByID(context.Background(), ad.ID)
		require.NoError(t, err)
		assert.Equal(t, "new title", found.Title, "title should change")
		assert.Equal(t, "keep", found.Description, "description should be retained")
		assert.Equal(t, ad.UserID, found.UserID, "user_id should be retained")
	})

	t.Run("creation_time survives updates", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAdvertisementPostgres(db)

		ad := &entity.Advertisement{Title: "a", Description: "b", UserID: 1}
		require.NoError(t, repo.Create(context.Background(), ad))
		stamped := ad.CreationTime

		err := repo.Update(context.Background(), ad.ID, map[string]any{"title": "c", "description": "d"})
		require.NoError(t, err)

		found, err := repo.FindByID(context.Background(), ad.ID)
		require.NoError(t, err)
		assert.Equal(t, stamped.Unix(), found.CreationTime.Unix(), "creation_time must never change")
	})

	t.Run("update of absent advertisement returns not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAdvertisementPostgres(db)

		err := repo.Update(context.Background(), 999, map[string]any{"title": "x"})

		assert.ErrorIs(t, err, usecase.ErrAdvertisementNotFound)
	})
}

func TestAdvertisementPostgres_Delete(t *testing.T) {
	t.Run("delete removes the row", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAdvertisementPostgres(db)

		ad := &entity.Advertisement{Title: "t", Description: "d", UserID: 1}
		require.NoError(t, repo.Create(context.Background(), ad))

		err := repo.Delete(context.Background(), ad.ID)
		require.NoError(t, err, "failed to delete advertisement")

		_, err = repo.FindByID(context.Background(), ad.ID)
		assert.ErrorIs(t, err, usecase.ErrAdvertisementNotFound, "advertisement should be gone")
	})

	t.Run("delete of absent advertisement returns not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAdvertisementPostgres(db)

		err := repo.Delete(context.Background(), 999)

		assert.ErrorIs(t, err, usecase.ErrAdvertisementNotFound)
	})
}
