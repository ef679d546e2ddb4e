// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"hydration/internal/domain"
)

var (
	// ErrDuplicateName indicates that a user with that name already exists.
	ErrDuplicateName = errors.New("user name already registered")
	// ErrUserNotFound indicates that the user does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// ValidationError indicates request input the caller can correct.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func invalidInput(msg string) error { return &ValidationError{msg: msg} }

const defaultListLimit = 100

// UserService encapsulates user directory use cases.
type UserService struct {
	repo domain.UserRepository
}

// NewUserService creates a UserService backed by the given repository.
func NewUserService(repo domain.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Create validates and registers a new user. Names are unique and matched
// case-sensitively.
func (s *UserService) Create(ctx context.Context, name string, weightKG float64) (*domain.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalidInput("name must not be empty")
	}
	if weightKG <= 0 {
		return nil, invalidInput("weight_kg must be positive")
	}

	existing, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	return s.repo.Create(ctx, name, weightKG, time.Now())
}

// GetByID returns the user with the given id.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetByName returns the user with the given name (exact, case-sensitive).
func (s *UserService) GetByName(ctx context.Context, name string) (*domain.User, error) {
	user, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List returns users in insertion order. Negative skip falls back to 0 and a
// negative limit falls back to the default; there is no upper bound.
func (s *UserService) List(ctx context.Context, skip, limit int) ([]domain.User, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = defaultListLimit
	}
	return s.repo.List(ctx, skip, limit)
}
