// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"hydration/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu     sync.Mutex
	users  []domain.User
	events []domain.IntakeEvent

	userIDCounter  int64
	eventIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.IntakeRepository = (*DB)(nil)

// --- UserRepository ---

// Create adds a user with the next sequential id.
func (db *DB) Create(ctx context.Context, name string, weightKG float64, createdAt time.Time) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.userIDCounter++
	u := domain.User{
		ID:        db.userIDCounter,
		Name:      name,
		WeightKG:  weightKG,
		CreatedAt: createdAt.UTC(),
	}
	db.users = append(db.users, u)
	ret := u
	return &ret, nil
}

// GetByID returns the user with the given id, or nil when absent.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.users {
		if db.users[i].ID == id {
			ret := db.users[i]
			return &ret, nil
		}
	}
	return nil, nil
}

// GetByName returns the user with the given name, or nil when absent.
func (db *DB) GetByName(ctx context.Context, name string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.users {
		if db.users[i].Name == name {
			ret := db.users[i]
			return &ret, nil
		}
	}
	return nil, nil
}

// List returns users in insertion order honoring skip and limit.
func (db *DB) List(ctx context.Context, skip, limit int) ([]domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if skip >= len(db.users) {
		return []domain.User{}, nil
	}
	end := skip + limit
	if end > len(db.users) {
		end = len(db.users)
	}
	out := make([]domain.User, end-skip)
	copy(out, db.users[skip:end])
	return out, nil
}

// --- IntakeRepository ---

// AddIntakeEvent appends an intake event and returns its id.
func (db *DB) AddIntakeEvent(ctx context.Context, userID int64, amountML int64, logDate string, loggedAt time.Time) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.eventIDCounter++
	db.events = append(db.events, domain.IntakeEvent{
		ID:       db.eventIDCounter,
		UserID:   userID,
		AmountML: amountML,
		LogDate:  logDate,
		LoggedAt: loggedAt.UTC(),
	})
	return db.eventIDCounter, nil
}

// TotalForDay sums the events for one user and day.
func (db *DB) TotalForDay(ctx context.Context, userID int64, day string) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var total int64
	for i := range db.events {
		if db.events[i].UserID == userID && db.events[i].LogDate == day {
			total += db.events[i].AmountML
		}
	}
	return total, nil
}

// DailyTotals groups a user's events by day, newest day first.
func (db *DB) DailyTotals(ctx context.Context, userID int64) ([]domain.DayTotal, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	byDay := make(map[string]int64)
	for i := range db.events {
		if db.events[i].UserID == userID {
			byDay[db.events[i].LogDate] += db.events[i].AmountML
		}
	}

	out := make([]domain.DayTotal, 0, len(byDay))
	for day, total := range byDay {
		out = append(out, domain.DayTotal{Day: day, TotalML: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day > out[j].Day })
	return out, nil
}
