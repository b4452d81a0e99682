package generator

// TrendConfig describes the three business-maturity phases a location
// moves through over the generation horizon. Boundaries and rates are
// fractions: with the defaults a location grows 30% over the first 30%
// of the horizon, another 12% through the steady phase, and a final 5%
// once mature. Each phase continues linearly from the previous phase's
// endpoint, so the multiplier has no jumps at the changepoints.
type TrendConfig struct {
	RampEnd   float64 // fractional position where ramp-up ends
	SteadyEnd float64 // fractional position where the steady phase ends

	RampRate   float64 // growth added during ramp-up
	SteadyRate float64 // growth added during the steady phase
	MatureRate float64 // growth added during maturity
}

// DefaultTrend returns the reference trend configuration.
func DefaultTrend() TrendConfig {
	return TrendConfig{
		RampEnd:    0.30,
		SteadyEnd:  0.70,
		RampRate:   0.30,
		SteadyRate: 0.12,
		MatureRate: 0.05,
	}
}

// Multiplier returns the growth multiplier (>= 1) for a day's position
// in the horizon. A degenerate horizon yields the neutral 1.0.
func (tc TrendConfig) Multiplier(dayIndex, horizon int) float64 {
	if horizon <= 0 {
		return 1.0
	}

	p := float64(dayIndex) / float64(horizon)
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	switch {
	case p < tc.RampEnd:
		return 1 + tc.RampRate*(p/tc.RampEnd)
	case p < tc.SteadyEnd:
		frac := (p - tc.RampEnd) / (tc.SteadyEnd - tc.RampEnd)
		return 1 + tc.RampRate + tc.SteadyRate*frac
	default:
		frac := (p - tc.SteadyEnd) / (1 - tc.SteadyEnd)
		return 1 + tc.RampRate + tc.SteadyRate + tc.MatureRate*frac
	}
}
