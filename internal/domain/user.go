// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// User represents a registered user of the hydration tracker.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	WeightKG  float64   `json:"weight_kg"`
	CreatedAt time.Time `json:"created_at"`
}

// UserRepository defines the port for user persistence operations.
// Lookup methods return (nil, nil) when no user matches.
type UserRepository interface {
	Create(ctx context.Context, name string, weightKG float64, createdAt time.Time) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByName(ctx context.Context, name string) (*User, error)
	List(ctx context.Context, skip, limit int) ([]User, error)
}
