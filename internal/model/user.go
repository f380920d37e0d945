// Package model defines domain entities for the application.
package model

import "time"

// User represents a registered user.
// The store assigns ID and CreatedAt on insert; Email is unique.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
