package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasheduzzaman2024/polashtoli/internal/model"
)

func TestCatalogCreateAndFind(t *testing.T) {
	catalog := NewCatalog()

	created := catalog.Create(model.ProductDraft{
		Name:        "Jute Rug",
		Price:       700,
		Category:    "Home",
		Image:       "🧶",
		Stock:       10,
		Description: "Hand-woven jute rug",
	})
	require.NotZero(t, created.ID)

	found, ok := catalog.FindByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, found)
	assert.Equal(t, 700.0, found.Price)
	assert.Equal(t, 10, found.Stock)
}

func TestCatalogCreateAssignsUniqueIDs(t *testing.T) {
	catalog := NewCatalog()

	seen := make(map[int64]bool)
	for i := 0; i < 100; i++ {
		p := catalog.Create(model.ProductDraft{Name: "Item", Price: 1, Category: "Misc", Stock: 1})
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
}

func TestCatalogFindMissing(t *testing.T) {
	catalog := NewCatalog()
	_, ok := catalog.FindByID(42)
	assert.False(t, ok)
}

func TestCatalogUpdate(t *testing.T) {
	catalog := NewCatalog()
	created := catalog.Create(model.ProductDraft{Name: "Kurta", Price: 900, Category: "Clothing", Stock: 20})

	created.Price = 950
	created.Stock = 18
	catalog.Update(created)

	found, ok := catalog.FindByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, 950.0, found.Price)
	assert.Equal(t, 18, found.Stock)
}

func TestCatalogUpdateUnknownIDIsNoOp(t *testing.T) {
	catalog := NewCatalog()
	catalog.Create(model.ProductDraft{Name: "Kurta", Price: 900, Category: "Clothing", Stock: 20})

	catalog.Update(model.Product{ID: 12345, Name: "Ghost"})

	assert.Len(t, catalog.Search(""), 1)
	_, ok := catalog.FindByID(12345)
	assert.False(t, ok)
}

func TestCatalogDelete(t *testing.T) {
	catalog := NewCatalog()
	created := catalog.Create(model.ProductDraft{Name: "Kurta", Price: 900, Category: "Clothing", Stock: 20})

	catalog.Delete(created.ID)
	_, ok := catalog.FindByID(created.ID)
	assert.False(t, ok)

	// deleting again is a no-op
	catalog.Delete(created.ID)
	assert.Empty(t, catalog.Search(""))
}

func TestCatalogSearch(t *testing.T) {
	catalog := NewCatalog()
	accounts := NewAccounts()
	SeedDemo(catalog, accounts)

	all := catalog.Search("")
	require.Len(t, all, 6)
	// insertion order is preserved
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(6), all[5].ID)

	// case-insensitive name match
	byName := catalog.Search("SAREE")
	require.Len(t, byName, 1)
	assert.Equal(t, "Traditional Saree", byName[0].Name)

	// category match
	byCategory := catalog.Search("clothing")
	require.Len(t, byCategory, 2)
	assert.Equal(t, "Traditional Saree", byCategory[0].Name)
	assert.Equal(t, "Cotton Kurta", byCategory[1].Name)

	assert.Empty(t, catalog.Search("no such thing"))
}
