package postgres

import (
	"context"
	"time"

	"hydration/internal/domain"
)

// AddIntakeEvent inserts a new intake event and returns its id.
func (d *DB) AddIntakeEvent(ctx context.Context, userID int64, amountML int64, logDate string, loggedAt time.Time) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO water_intake_logs(user_id, amount_ml, log_date, logged_at) VALUES($1, $2, $3, $4) RETURNING id;",
		userID, amountML, logDate, loggedAt.UTC(),
	).Scan(&id)
	return id, err
}

// TotalForDay returns the summed intake for one local day for a user.
func (d *DB) TotalForDay(ctx context.Context, userID int64, day string) (int64, error) {
	var total int64
	err := d.sql.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(amount_ml), 0) FROM water_intake_logs WHERE user_id=$1 AND log_date=$2;",
		userID, day,
	).Scan(&total)
	return total, err
}

// DailyTotals returns per-day intake totals for a user, newest day first.
// Days with no events produce no row.
func (d *DB) DailyTotals(ctx context.Context, userID int64) ([]domain.DayTotal, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT log_date, SUM(amount_ml) FROM water_intake_logs WHERE user_id=$1 GROUP BY log_date ORDER BY log_date DESC;",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.DayTotal
	for rows.Next() {
		var t domain.DayTotal
		if err := rows.Scan(&t.Day, &t.TotalML); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
