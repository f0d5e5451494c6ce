package model

// Product represents a catalog entry. The image field holds a display
// reference (the demo data uses emoji), not an upload.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
}

// ProductDraft carries the fields an admin submits when creating a product.
// Price and stock are already coerced to numeric by the handler layer.
type ProductDraft struct {
	Name        string
	Price       float64
	Category    string
	Image       string
	Stock       int
	Description string
}
