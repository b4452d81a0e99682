package generator

import (
	"math"
	"testing"
)

func TestTrendMultiplier(t *testing.T) {
	tc := DefaultTrend()
	horizon := 1000

	t.Run("starts at neutral", func(t *testing.T) {
		if got := tc.Multiplier(0, horizon); got != 1.0 {
			t.Errorf("day 0 multiplier = %v, want 1.0", got)
		}
	})

	t.Run("ends at full growth", func(t *testing.T) {
		want := 1 + tc.RampRate + tc.SteadyRate + tc.MatureRate
		if got := tc.Multiplier(horizon, horizon); math.Abs(got-want) > 1e-12 {
			t.Errorf("final multiplier = %v, want %v", got, want)
		}
	})

	t.Run("monotonically non-decreasing", func(t *testing.T) {
		prev := tc.Multiplier(0, horizon)
		for d := 1; d <= horizon; d++ {
			cur := tc.Multiplier(d, horizon)
			if cur < prev {
				t.Fatalf("multiplier decreased at day %d: %v -> %v", d, prev, cur)
			}
			prev = cur
		}
	})

	t.Run("continuous at phase boundaries", func(t *testing.T) {
		for _, boundary := range []float64{tc.RampEnd, tc.SteadyEnd} {
			day := int(boundary * float64(horizon))
			before := tc.Multiplier(day-1, horizon)
			after := tc.Multiplier(day+1, horizon)
			step := math.Abs(after - before)
			// Two days apart on a piecewise-linear curve should move
			// no more than twice the steepest per-day slope.
			maxSlope := 2 * tc.RampRate / (tc.RampEnd * float64(horizon))
			if step > maxSlope {
				t.Errorf("jump of %v across boundary %v, max expected %v", step, boundary, maxSlope)
			}
		}
	})

	t.Run("degenerate horizon is neutral", func(t *testing.T) {
		if got := tc.Multiplier(5, 0); got != 1.0 {
			t.Errorf("zero horizon multiplier = %v, want 1.0", got)
		}
	})
}
