package domain

import (
	"context"
	"time"
)

// IntakeEvent represents a single recorded water consumption. Events are
// append-only: once stored they are never updated or deleted.
type IntakeEvent struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"user_id"`
	AmountML int64     `json:"amount_ml"`
	LogDate  string    `json:"log_date"`
	LoggedAt time.Time `json:"logged_at"`
}

// DayTotal is the summed intake for one local calendar day. Days with no
// events have no DayTotal.
type DayTotal struct {
	Day     string `json:"day"`
	TotalML int64  `json:"total_ml"`
}

// IntakeRepository is the port for intake persistence. Days are local
// calendar dates formatted "2006-01-02".
type IntakeRepository interface {
	AddIntakeEvent(ctx context.Context, userID int64, amountML int64, logDate string, loggedAt time.Time) (int64, error)
	TotalForDay(ctx context.Context, userID int64, day string) (int64, error)
	DailyTotals(ctx context.Context, userID int64) ([]DayTotal, error)
}

// LocalDay formats t as the local calendar day string used for log dates.
func LocalDay(t time.Time) string {
	return t.In(time.Local).Format("2006-01-02")
}
