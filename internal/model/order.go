package model

import "time"

// OrderStatusPending is the only status the demo store assigns; no
// fulfillment transitions are implemented.
const OrderStatusPending = "Pending"

// Order is an immutable record of a checkout. Items are a deep copy of the
// cart lines at checkout time.
type Order struct {
	ID            int64      `json:"id"`
	CustomerEmail string     `json:"customer_email"`
	Items         []CartLine `json:"items"`
	Total         float64    `json:"total"`
	Date          time.Time  `json:"date"`
	Status        string     `json:"status"`
}
