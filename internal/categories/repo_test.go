package categories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCategoriesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS categories (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(ddl).Error)

	return db
}

func TestRepositoryCreateListAndGet(t *testing.T) {
	db := setupCategoriesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, UpsertCategoryRequest{Name: "Electronics", Description: "Gadgets"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	_, err = repo.Create(ctx, UpsertCategoryRequest{Name: "Apparel"})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Apparel", list[0].Name)
	assert.Equal(t, "Electronics", list[1].Name)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gadgets", found.Description)
}

func TestRepositoryUpdateAndDelete(t *testing.T) {
	db := setupCategoriesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, UpsertCategoryRequest{Name: "Books"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, UpsertCategoryRequest{Name: "Used Books", Description: "Second hand"})
	require.NoError(t, err)
	assert.Equal(t, "Used Books", updated.Name)
	assert.Equal(t, "Second hand", updated.Description)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.FindByID(ctx, created.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestRepositoryUpdateMissingCategory(t *testing.T) {
	db := setupCategoriesTestDB(t)
	repo := NewRepository(db)

	_, err := repo.Update(context.Background(), 404, UpsertCategoryRequest{Name: "Ghost"})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	assert.True(t, errors.Is(repo.Delete(context.Background(), 404), gorm.ErrRecordNotFound))
}
