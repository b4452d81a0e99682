package patterns

import (
	"fmt"
	"time"
)

// SeasonalPattern provides demand multipliers by month of year, plus
// the holiday calendar and payday schedule.
type SeasonalPattern struct {
	// Indexed by month 0-11 (January = 0)
	monthMultipliers [12]float64

	// Holiday dates as "MM-DD" keys. Holidays reduce demand: the
	// simulated locations are neighborhood lunch-and-dinner spots that
	// lose traffic when people stay home.
	holidays map[string]bool
}

// NewSeasonalPattern creates the default seasonal curve: a summer
// trough when regulars travel, and a December peak from holiday
// parties and gift-card traffic.
func NewSeasonalPattern() *SeasonalPattern {
	sp := &SeasonalPattern{
		holidays: defaultHolidays(),
	}

	sp.monthMultipliers = [12]float64{
		0.90, // January - post-holiday slump
		0.88, // February
		0.95, // March
		1.00, // April
		1.05, // May - patio season opens
		0.92, // June - summer trough begins
		0.85, // July
		0.82, // August - deepest trough
		0.95, // September - back to routine
		1.00, // October
		1.08, // November - holiday season ramps
		1.30, // December - peak (parties, gift cards)
	}

	return sp
}

// NewCustomSeasonalPattern creates a pattern from explicit month
// multipliers (January first) and a holiday set of "MM-DD" keys.
func NewCustomSeasonalPattern(multipliers [12]float64, holidays []string) *SeasonalPattern {
	set := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		set[h] = true
	}
	return &SeasonalPattern{monthMultipliers: multipliers, holidays: set}
}

// defaultHolidays is a hand-curated fixed-date set. Movable holidays
// are approximated by their most common date; the generator trades
// calendar precision for reproducibility.
func defaultHolidays() map[string]bool {
	return map[string]bool{
		"01-01": true, // New Year's Day
		"07-04": true, // Independence Day
		"11-28": true, // Thanksgiving (approx)
		"12-24": true, // Christmas Eve
		"12-25": true, // Christmas Day
		"12-31": true, // New Year's Eve
	}
}

// MonthMultiplier returns the seasonal multiplier for a zero-based
// month index. Out-of-range indexes get the neutral 1.0 so a bad
// lookup can never poison a day's level.
func (sp *SeasonalPattern) MonthMultiplier(month int) float64 {
	if month < 0 || month > 11 {
		return 1.0
	}
	return sp.monthMultipliers[month]
}

// MultiplierForDate returns the seasonal multiplier for a date.
func (sp *SeasonalPattern) MultiplierForDate(t time.Time) float64 {
	return sp.MonthMultiplier(int(t.Month()) - 1)
}

// IsHoliday reports whether the date falls in the holiday set.
func (sp *SeasonalPattern) IsHoliday(t time.Time) bool {
	key := fmt.Sprintf("%02d-%02d", int(t.Month()), t.Day())
	return sp.holidays[key]
}

// IsPayday reports whether the date is a typical payday: the 1st, the
// 15th, or the end-of-month run from the 25th onward.
func (sp *SeasonalPattern) IsPayday(t time.Time) bool {
	day := t.Day()
	return day == 1 || day == 15 || day >= 25
}
