package utils

import (
	"fmt"
)

// Money represents a monetary value in cents. Using int64 keeps bucket
// allocation exact: a day's sales can be split across intraday slots
// and summed back with no floating drift.
type Money int64

// FromFloat creates a Money value from a dollar amount, rounding to the
// nearest cent.
func FromFloat(amount float64) Money {
	if amount >= 0 {
		return Money(amount*100 + 0.5)
	}
	return Money(amount*100 - 0.5)
}

// Dollars creates a Money value from whole dollars.
func Dollars(d int64) Money {
	return Money(d * 100)
}

// ToDollars returns the value as a float64, for computation feeding the
// statistical model (not for accumulation).
func (m Money) ToDollars() float64 {
	return float64(m) / 100
}

// ToCents returns the underlying cent count.
func (m Money) ToCents() int64 {
	return int64(m)
}

// MulFloat multiplies by a float and rounds to the nearest cent.
func (m Money) MulFloat(f float64) Money {
	result := float64(m) * f
	if result >= 0 {
		return Money(result + 0.5)
	}
	return Money(result - 0.5)
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return m - other
}

// Max returns the larger of two values.
func (m Money) Max(other Money) Money {
	if m > other {
		return m
	}
	return other
}

// IsZero returns true if the value is zero.
func (m Money) IsZero() bool {
	return m == 0
}

// String formats the value as a plain decimal with two places, the form
// written to CSV and loaded into DECIMAL(12,2) columns.
func (m Money) String() string {
	negative := m < 0
	if negative {
		m = -m
	}
	s := fmt.Sprintf("%d.%02d", int64(m)/100, int64(m)%100)
	if negative {
		s = "-" + s
	}
	return s
}

// AllocateByWeight splits a total across weights so the parts sum back
// to the total exactly. Each part is the cumulative rounded amount
// minus what was already handed out, so rounding error never exceeds
// one cent per part and cancels overall.
func AllocateByWeight(total Money, weights []float64) []Money {
	if len(weights) == 0 {
		return nil
	}

	var weightSum float64
	for _, w := range weights {
		weightSum += w
	}
	if weightSum <= 0 {
		// Degenerate weights get an even split.
		even := make([]float64, len(weights))
		for i := range even {
			even[i] = 1
		}
		return AllocateByWeight(total, even)
	}

	parts := make([]Money, len(weights))
	var cumWeight float64
	var handedOut Money
	for i, w := range weights {
		cumWeight += w
		target := Money(float64(total)*(cumWeight/weightSum) + 0.5)
		parts[i] = target - handedOut
		handedOut = target
	}
	// Assign any residual from the final rounding to the last part.
	parts[len(parts)-1] += total - handedOut
	return parts
}
