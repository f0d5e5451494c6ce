package store

import (
	"strings"
	"sync"

	"github.com/rasheduzzaman2024/polashtoli/internal/model"
)

// Catalog is the in-memory product collection. Products keep their insertion
// order; identifiers are unique and stable once assigned.
type Catalog struct {
	mu       sync.Mutex
	products []model.Product
	lastID   int64
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// FindByID returns the product with the given id, if present.
func (c *Catalog) FindByID(id int64) (model.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// Create assigns a fresh identifier to the draft and appends it. It always
// succeeds and returns the stored product.
func (c *Catalog) Create(draft model.ProductDraft) model.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastID = timeID(c.lastID)
	p := model.Product{
		ID:          c.lastID,
		Name:        draft.Name,
		Price:       draft.Price,
		Category:    draft.Category,
		Image:       draft.Image,
		Stock:       draft.Stock,
		Description: draft.Description,
	}
	c.products = append(c.products, p)
	return p
}

// Update replaces the record matching the product's id in place. Unknown ids
// are ignored.
func (c *Catalog) Update(p model.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID == p.ID {
			c.products[i] = p
			return
		}
	}
}

// Delete removes the product with the given id. Unknown ids are ignored.
func (c *Catalog) Delete(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return
		}
	}
}

// Search returns products whose name or category contains the query,
// case-insensitively, in insertion order. An empty query matches everything.
func (c *Catalog) Search(query string) []model.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	q := strings.ToLower(query)
	matched := make([]model.Product, 0, len(c.products))
	for _, p := range c.products {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			matched = append(matched, p)
		}
	}
	return matched
}

// seed inserts a product as-is, trusting its id. Used only by demo seeding.
func (c *Catalog) seed(p model.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append(c.products, p)
	if p.ID > c.lastID {
		c.lastID = p.ID
	}
}
