package generator

import (
	"time"

	"github.com/bistroboard/demogen/internal/utils"
)

// DayRecord carries everything downstream stages need about one
// simulated day. It is derived, never stored: re-running the composer
// for the same identity and date reproduces it exactly.
type DayRecord struct {
	Date     time.Time
	DayIndex int

	Holiday bool
	Payday  bool
	Weekend bool

	TempC float64
	Rain  bool

	// SalesLevel is the day's composed gross sales target after the
	// trend, calendar, and weather multipliers, the AR(1) residual,
	// and the minimum-day floor have all been applied.
	SalesLevel utils.Money
}

// ar1Phi is the carry-over coefficient for the autoregressive
// residual. Yesterday's surprise bleeds about a third into today.
const ar1Phi = 0.35

// noiseStdFraction is the white-noise std in fractional units. The
// residual is carried as a fraction of the day's deterministic level
// rather than in dollars, so the run-scoped residual chain stays
// completely independent of the day-scoped weather draws: re-deriving
// one day's weather can never perturb another day's residual.
const noiseStdFraction = 0.08

// minDaySales floors the composed level so a bad multiplier stack can
// never produce a zero or negative day for downstream ratios to choke
// on.
var minDaySales = utils.Dollars(500)

// dayMixer returns the day-scoped stream for a date. It hashes the
// date together with the run identity, so one day's weather and ticket
// draws can be re-derived without touching any other day or the
// run-scoped residual stream.
func dayMixer(id utils.Identity, date time.Time) *utils.Mixer {
	return id.Child(date.Format("2006-01-02")).Mixer()
}

// weatherMultiplier folds a day's temperature and rain flag into a
// single demand multiplier. Effects compose multiplicatively.
func weatherMultiplier(tempC float64, rain bool) float64 {
	m := 1.0
	if rain {
		m *= 0.82
	}
	if tempC < 10 || tempC > 30 {
		m *= 0.90
	} else if tempC >= 18 && tempC <= 25 {
		m *= 1.05
	}
	return m
}

// composeDay builds one day's record from the calendar, the climate
// tables, and the two random streams. It is a pure step function: the
// run-scoped residual comes in as prevResidual and the updated value
// is returned alongside the record, never stored anywhere else. The
// run mixer is consumed exactly once (one Normal draw) per call, so
// days must be composed in strictly increasing order.
func composeDay(p *Params, id utils.Identity, date time.Time, dayIndex int, run *utils.Mixer, prevResidual float64) (DayRecord, float64) {
	day := dayMixer(id, date)
	climate := p.Climate.Month(int(date.Month()) - 1)

	tempC := day.Normal(climate.AvgTempC, climate.TempStdC)
	rain := day.Chance(climate.RainProb)

	rec := DayRecord{
		Date:     date,
		DayIndex: dayIndex,
		Holiday:  p.Seasonal.IsHoliday(date),
		Payday:   p.Seasonal.IsPayday(date),
		Weekend:  p.Weekday.IsWeekend(date.Weekday()),
		TempC:    tempC,
		Rain:     rain,
	}

	holidayMult := 1.0
	if rec.Holiday {
		holidayMult = 0.80
	}
	paydayMult := 1.0
	if rec.Payday {
		paydayMult = 1.05
	}

	level := p.BaseDailySales.ToDollars() *
		p.Trend.Multiplier(dayIndex, p.HorizonDays) *
		p.Weekday.Multiplier(date.Weekday()) *
		p.Seasonal.MultiplierForDate(date) *
		weatherMultiplier(tempC, rain) *
		holidayMult *
		paydayMult

	noise := run.Normal(0, noiseStdFraction)
	residual := ar1Phi*prevResidual + noise

	rec.SalesLevel = utils.FromFloat(level * (1 + residual)).Max(minDaySales)
	return rec, residual
}
