package repository

import (
	"context"
	"testing"
	"time"

	"catalog-service/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_SaveFindDelete(t *testing.T) {
	repo := NewCategoryRepository(testDB)
	ctx := context.Background()
	now := stamp()
	name := "Category " + uuid.NewString()

	saved, err := repo.Save(ctx, &domain.Category{
		Name:        name,
		Description: "Everything with laces",
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	require.NoError(t, err)
	assert.Equal(t, "Everything with laces", saved.Description)

	byName, err := repo.FindByName(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, byName.ID)

	_, err = repo.Save(ctx, &domain.Category{Name: name, CreatedAt: now, UpdatedAt: now})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	require.NoError(t, repo.DeleteByID(ctx, saved.ID))
	_, err = repo.FindByID(ctx, saved.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryRepository_FindAllInsertionOrder(t *testing.T) {
	repo := NewCategoryRepository(testDB)
	ctx := context.Background()
	now := stamp()

	first, err := repo.Save(ctx, &domain.Category{Name: "Category " + uuid.NewString(), CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)
	second, err := repo.Save(ctx, &domain.Category{Name: "Category " + uuid.NewString(), CreatedAt: now.Add(time.Millisecond), UpdatedAt: now.Add(time.Millisecond)})
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)

	firstAt, secondAt := -1, -1
	for i, c := range all {
		switch c.ID {
		case first.ID:
			firstAt = i
		case second.ID:
			secondAt = i
		}
	}
	require.NotEqual(t, -1, firstAt)
	require.NotEqual(t, -1, secondAt)
	assert.Less(t, firstAt, secondAt)
}
