package profiles

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupProfilesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS profiles (
  user_id INTEGER PRIMARY KEY,
  first_name TEXT NOT NULL DEFAULT '',
  last_name TEXT NOT NULL DEFAULT '',
  phone TEXT NOT NULL DEFAULT '',
  email TEXT NOT NULL DEFAULT '',
  address TEXT NOT NULL DEFAULT '',
  city TEXT NOT NULL DEFAULT '',
  state TEXT NOT NULL DEFAULT '',
  zip TEXT NOT NULL DEFAULT '',
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(ddl).Error)

	return db
}

func TestRepositoryCreateEmptyAndGet(t *testing.T) {
	db := setupProfilesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateEmpty(ctx, 1))

	profile, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), profile.UserID)
	assert.Empty(t, profile.FirstName)
}

func TestRepositoryUpdatePersistsFields(t *testing.T) {
	db := setupProfilesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateEmpty(ctx, 1))

	updated, err := repo.Update(ctx, 1, UpdateProfileRequest{
		FirstName: "Joe",
		LastName:  "Joesephus",
		Email:     "joe@example.com",
		City:      "Atlanta",
	})
	require.NoError(t, err)
	assert.Equal(t, "Joe", updated.FirstName)
	assert.Equal(t, "joe@example.com", updated.Email)
	assert.Equal(t, "Atlanta", updated.City)
}

func TestRepositoryUpdateMissingProfile(t *testing.T) {
	db := setupProfilesTestDB(t)
	repo := NewRepository(db)

	_, err := repo.Update(context.Background(), 99, UpdateProfileRequest{FirstName: "Nobody"})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
