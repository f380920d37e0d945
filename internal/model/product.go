package model

import "time"

// Product represents a catalog item.
// The store assigns ID and CreatedAt on insert; Name is unique and Price is
// a non-negative fixed-point value (NUMERIC(10,2) at the store).
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}
