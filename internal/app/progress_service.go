package app

import (
	"context"
	"sort"

	"hydration/internal/domain"
)

// DailyProgress compares one user's consumption against their goal for a
// single day. It is derived on every read and never persisted.
type DailyProgress struct {
	UserName     string  `json:"user_name"`
	UserID       int64   `json:"user_id"`
	Date         string  `json:"date"`
	DailyGoalML  float64 `json:"daily_goal_ml"`
	ConsumedML   int64   `json:"consumed_ml"`
	RemainingML  float64 `json:"remaining_ml"`
	GoalAchieved bool    `json:"goal_achieved"`
}

// ProgressService combines the user directory and intake ledger into
// progress records.
type ProgressService struct {
	users  domain.UserRepository
	intake domain.IntakeRepository
}

// NewProgressService creates a ProgressService backed by the given
// repositories.
func NewProgressService(users domain.UserRepository, intake domain.IntakeRepository) *ProgressService {
	return &ProgressService{users: users, intake: intake}
}

// Daily returns the progress record for one local day. Days with no recorded
// intake yield a zero consumed total.
func (s *ProgressService) Daily(ctx context.Context, userID int64, day string) (*DailyProgress, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	consumed, err := s.intake.TotalForDay(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	p := buildProgress(user, day, consumed)
	return &p, nil
}

// History returns one progress record per day that has at least one intake
// event, ordered by date descending.
func (s *ProgressService) History(ctx context.Context, userID int64) ([]DailyProgress, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	totals, err := s.intake.DailyTotals(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]DailyProgress, 0, len(totals))
	for _, t := range totals {
		out = append(out, buildProgress(user, t.Day, t.TotalML))
	}
	// ISO day strings sort like dates.
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func buildProgress(u *domain.User, day string, consumedML int64) DailyProgress {
	goal := domain.DailyGoalML(u.WeightKG)
	remaining := goal - float64(consumedML)
	if remaining < 0 {
		remaining = 0
	}
	return DailyProgress{
		UserName:     u.Name,
		UserID:       u.ID,
		Date:         day,
		DailyGoalML:  goal,
		ConsumedML:   consumedML,
		RemainingML:  remaining,
		GoalAchieved: float64(consumedML) >= goal,
	}
}
