// Package patterns holds the static reference tables the generator
// composes into daily sales levels: weekday and month-of-year demand
// multipliers, the holiday calendar, climate normals, and the intraday
// demand curve. Pure data with lookup accessors; no randomness lives
// here. Every table is swappable per deployment without touching the
// composition algorithm.
package patterns

import (
	"time"
)

// WeekdayPattern provides demand multipliers by day of week.
// 1.0 = average day, >1.0 = above average.
type WeekdayPattern struct {
	// Indexed by time.Weekday (0=Sunday, 6=Saturday)
	multipliers [7]float64
}

// NewWeekdayPattern creates the default restaurant weekday curve:
// slow start to the week, building toward the weekend.
func NewWeekdayPattern() *WeekdayPattern {
	wp := &WeekdayPattern{}

	wp.multipliers = [7]float64{
		1.10, // Sunday - brunch and family dinners
		0.75, // Monday - slowest day
		0.80, // Tuesday
		0.85, // Wednesday
		0.95, // Thursday - building to weekend
		1.25, // Friday - weekend starts
		1.40, // Saturday - busiest day
	}

	return wp
}

// NewCustomWeekdayPattern creates a pattern from explicit multipliers
// indexed by time.Weekday.
func NewCustomWeekdayPattern(multipliers [7]float64) *WeekdayPattern {
	return &WeekdayPattern{multipliers: multipliers}
}

// Multiplier returns the demand multiplier for a weekday.
func (wp *WeekdayPattern) Multiplier(day time.Weekday) float64 {
	if day < time.Sunday || day > time.Saturday {
		return 1.0
	}
	return wp.multipliers[day]
}

// IsWeekend returns true for Saturday and Sunday. Used by the labor
// series to pick the scheduled-hours floor.
func (wp *WeekdayPattern) IsWeekend(day time.Weekday) bool {
	return day == time.Saturday || day == time.Sunday
}
