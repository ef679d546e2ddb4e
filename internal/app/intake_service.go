package app

import (
	"context"
	"time"

	"hydration/internal/domain"
)

// IntakeService encapsulates intake ledger use cases.
type IntakeService struct {
	users  domain.UserRepository
	intake domain.IntakeRepository
}

// NewIntakeService creates an IntakeService backed by the given repositories.
func NewIntakeService(users domain.UserRepository, intake domain.IntakeRepository) *IntakeService {
	return &IntakeService{users: users, intake: intake}
}

// Record validates and stores one intake event for the user. The log date is
// always the server's current local day; callers cannot backfill past dates.
func (s *IntakeService) Record(ctx context.Context, userID, amountML int64) (*domain.IntakeEvent, error) {
	if amountML <= 0 {
		return nil, invalidInput("amount_ml must be positive")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	now := time.Now()
	day := domain.LocalDay(now)
	id, err := s.intake.AddIntakeEvent(ctx, userID, amountML, day, now)
	if err != nil {
		return nil, err
	}

	return &domain.IntakeEvent{
		ID:       id,
		UserID:   userID,
		AmountML: amountML,
		LogDate:  day,
		LoggedAt: now,
	}, nil
}

// TotalForDay returns the summed intake for the given local day. No events
// means a total of 0, not an error.
func (s *IntakeService) TotalForDay(ctx context.Context, userID int64, day string) (int64, error) {
	return s.intake.TotalForDay(ctx, userID, day)
}

// History returns per-day intake totals for the user. Days without events are
// absent from the result.
func (s *IntakeService) History(ctx context.Context, userID int64) ([]domain.DayTotal, error) {
	return s.intake.DailyTotals(ctx, userID)
}
