package domain_test

import (
	"math"
	"testing"

	"hydration/internal/domain"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestDailyGoalML(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		want   float64
	}{
		{"70.5 kg", 70.5, 2467.5},
		{"100 kg", 100.0, 3500.0},
		{"60 kg", 60.0, 2100.0},
		{"fractional weight", 82.3, 2880.5},
		{"small weight", 0.5, 17.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.DailyGoalML(tc.weight)
			if !almostEqual(got, tc.want, 0.001) {
				t.Errorf("DailyGoalML(%v) = %v; want %v", tc.weight, got, tc.want)
			}
		})
	}
}
