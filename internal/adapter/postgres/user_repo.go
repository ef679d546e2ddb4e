// Package postgres implements the domain repositories using PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hydration/internal/domain"
)

// Create inserts a new user and returns it with its assigned id.
func (d *DB) Create(ctx context.Context, name string, weightKG float64, createdAt time.Time) (*domain.User, error) {
	u := domain.User{Name: name, WeightKG: weightKG, CreatedAt: createdAt.UTC()}
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO users(name, weight_kg, created_at) VALUES($1, $2, $3) RETURNING id;",
		name, weightKG, createdAt.UTC(),
	).Scan(&u.ID)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID retrieves a user by id.
func (d *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, name, weight_kg, created_at FROM users WHERE id = $1;",
		id,
	).Scan(&u.ID, &u.Name, &u.WeightKG, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByName retrieves a user by exact name.
func (d *DB) GetByName(ctx context.Context, name string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, name, weight_kg, created_at FROM users WHERE name = $1;",
		name,
	).Scan(&u.ID, &u.Name, &u.WeightKG, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns users ordered by id with an offset and cap.
func (d *DB) List(ctx context.Context, skip, limit int) ([]domain.User, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, name, weight_kg, created_at FROM users ORDER BY id OFFSET $1 LIMIT $2;", skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.User, 0, limit)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.WeightKG, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
