package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreListNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id1, err := s.Create(ctx, Product{Title: "First", Price: 1})
	require.NoError(t, err)
	id2, err := s.Create(ctx, Product{Title: "Second", Price: 2})
	require.NoError(t, err)

	products, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, id2, products[0].ID)
	assert.Equal(t, id1, products[1].ID)
}

func TestMemoryStoreCreateFillsDefaults(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, err := s.Create(ctx, Product{Title: "Bare", CategoryID: 1})
	require.NoError(t, err)
	p, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, PlaceholderImageURL, p.ImageURL)
	assert.Equal(t, "Jewelry", p.Category)
	assert.NotEmpty(t, p.CreatedAt)
}

func TestMemoryStoreCreateUnknownCategory(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Create(context.Background(), Product{Title: "X", CategoryID: 99})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStorePartialUpdate(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	id, err := s.Create(ctx, Product{Title: "Old", Description: "keep me", Price: 5})
	require.NoError(t, err)

	title := "New"
	price := 7.5
	require.NoError(t, s.Update(ctx, id, ProductUpdate{Title: &title, Price: &price}))

	p, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "New", p.Title)
	assert.Equal(t, 7.5, p.Price)
	assert.Equal(t, "keep me", p.Description)
}

func TestMemoryStoreUpdateMissing(t *testing.T) {
	s := NewMemoryStore()
	title := "X"
	assert.ErrorIs(t, s.Update(context.Background(), 99, ProductUpdate{Title: &title}), ErrNotFound)
}

func TestMemoryStoreDeleteReturnsProduct(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	id, err := s.Create(ctx, Product{Title: "Doomed"})
	require.NoError(t, err)

	p, err := s.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Doomed", p.Title)

	_, err = s.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Delete(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDeleteCategoryDetachesProducts(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	c, err := s.CreateCategory(ctx, "Hats")
	require.NoError(t, err)
	id, err := s.Create(ctx, Product{Title: "Kalpak", CategoryID: c.ID})
	require.NoError(t, err)

	require.NoError(t, s.DeleteCategory(ctx, c.ID))
	p, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, p.CategoryID)
	assert.Empty(t, p.Category)
}

func TestMemoryStoreRenameCategoryUpdatesProducts(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	id, err := s.Create(ctx, Product{Title: "Ring", CategoryID: 1})
	require.NoError(t, err)

	require.NoError(t, s.RenameCategory(ctx, 1, "Fine Jewelry"))
	p, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Fine Jewelry", p.Category)
}
