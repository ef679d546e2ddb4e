package domain

// MLPerKG is the daily fluid goal in milliliters per kilogram of body weight.
const MLPerKG = 35

// DailyGoalML returns the daily fluid goal in milliliters for the given body
// weight. Pure computation with no failure modes.
func DailyGoalML(weightKG float64) float64 {
	return weightKG * MLPerKG
}
