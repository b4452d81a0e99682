package patterns

import (
	"time"
)

// ServiceWindow describes the open-to-close range a day's sales are
// spread across, subdivided into fixed-width slots. Hours are
// inclusive: the default 11-23 window covers 13 hours, so with
// 15-minute slots a day has 52 buckets.
type ServiceWindow struct {
	OpenHour    int // first hour of service (0-23)
	CloseHour   int // last hour of service, inclusive (0-23)
	SlotMinutes int // slot width; must divide 60
}

// DefaultServiceWindow is hourly 11:00-23:00 in 15-minute slots.
func DefaultServiceWindow() ServiceWindow {
	return ServiceWindow{OpenHour: 11, CloseHour: 23, SlotMinutes: 15}
}

// Hours returns the number of service hours in the window.
func (w ServiceWindow) Hours() int {
	h := w.CloseHour - w.OpenHour + 1
	if h < 0 {
		return 0
	}
	return h
}

// SlotsPerHour returns how many slots fit in one hour.
func (w ServiceWindow) SlotsPerHour() int {
	if w.SlotMinutes <= 0 {
		return 0
	}
	return 60 / w.SlotMinutes
}

// Slots returns the total slot count for one day.
func (w ServiceWindow) Slots() int {
	return w.Hours() * w.SlotsPerHour()
}

// SlotStart returns the timestamp at which slot i begins on the given
// date (midnight-normalized).
func (w ServiceWindow) SlotStart(date time.Time, i int) time.Time {
	minutes := w.OpenHour*60 + i*w.SlotMinutes
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return day.Add(time.Duration(minutes) * time.Minute)
}

// IntradayCurve is the hand-specified demand-curve shape that spreads
// a day's covers across the service window: a lunch spike, a deeper
// dinner spike, and thin off-peak hours. Shares are per service hour
// and need not sum to 1 for an arbitrary window; the allocator
// normalizes over whatever window is configured.
type IntradayCurve struct {
	hourShares map[int]float64
}

// NewIntradayCurve creates the default lunch-and-dinner curve.
func NewIntradayCurve() *IntradayCurve {
	return &IntradayCurve{
		hourShares: map[int]float64{
			11: 0.04, // pre-lunch trickle
			12: 0.15, // lunch peak
			13: 0.15, // lunch peak
			14: 0.04, // lunch tail
			15: 0.02, // afternoon lull
			16: 0.01, // slowest hour
			17: 0.03, // early birds
			18: 0.17, // dinner peak
			19: 0.17, // dinner peak
			20: 0.17, // dinner peak
			21: 0.03, // dinner tail
			22: 0.01, // late seating
			23: 0.01, // last call
		},
	}
}

// NewCustomIntradayCurve creates a curve from explicit per-hour
// shares.
func NewCustomIntradayCurve(hourShares map[int]float64) *IntradayCurve {
	shares := make(map[int]float64, len(hourShares))
	for h, s := range hourShares {
		shares[h] = s
	}
	return &IntradayCurve{hourShares: shares}
}

// neutralHourShare is the documented fallback for an hour the curve
// does not name, so extending the service window never divides by
// zero.
const neutralHourShare = 0.02

// HourShare returns the demand share for an hour of the day.
func (c *IntradayCurve) HourShare(hour int) float64 {
	if s, ok := c.hourShares[hour]; ok {
		return s
	}
	return neutralHourShare
}

// SlotWeights returns one weight per slot of the window, the hour's
// share split evenly across its slots. Relative weights only; callers
// normalize when allocating.
func (c *IntradayCurve) SlotWeights(w ServiceWindow) []float64 {
	perHour := w.SlotsPerHour()
	weights := make([]float64, 0, w.Slots())
	for h := w.OpenHour; h <= w.CloseHour; h++ {
		share := c.HourShare(h) / float64(perHour)
		for s := 0; s < perHour; s++ {
			weights = append(weights, share)
		}
	}
	return weights
}
