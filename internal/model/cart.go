package model

// CartLine is one product in the cart. Name, price and image are snapshotted
// at add-time so later catalog edits do not change what the shopper agreed to.
type CartLine struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Subtotal returns price times quantity for this line.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Cart holds the lines a session has selected, at most one line per product,
// in insertion order. A line with quantity <= 0 is never stored. Cart is not
// safe for concurrent use; the owning session serializes access.
type Cart struct {
	lines []CartLine
}

// Add puts one unit of the product into the cart. If a line for the product
// already exists its quantity is incremented, otherwise a new line is appended
// with the product's current name, price and image.
func (c *Cart) Add(p Product) {
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
}

// ChangeQuantity adds delta to the line's quantity. Driving the quantity to
// zero or below removes the line. Unknown product ids are ignored.
func (c *Cart) ChangeQuantity(productID int64, delta int) {
	for i := range c.lines {
		if c.lines[i].ProductID != productID {
			continue
		}
		c.lines[i].Quantity += delta
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

// Remove deletes the line for the product unconditionally.
func (c *Cart) Remove(productID int64) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Total returns the sum of line subtotals.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	var count int
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear drops every line.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}
