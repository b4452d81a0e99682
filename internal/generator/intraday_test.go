package generator

import (
	"testing"
	"time"

	"github.com/bistroboard/demogen/internal/utils"
)

func TestApportionInts(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		weights []float64
	}{
		{"even weights", 100, []float64{1, 1, 1, 1}},
		{"skewed weights", 317, []float64{0.5, 0.3, 0.15, 0.05}},
		{"single part", 42, []float64{1}},
		{"more parts than units", 3, []float64{1, 1, 1, 1, 1, 1, 1}},
		{"zero weights fall back", 60, []float64{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := apportionInts(tt.total, tt.weights)
			sum := 0
			for _, p := range parts {
				if p < 0 {
					t.Fatalf("negative part %d in %v", p, parts)
				}
				sum += p
			}
			if sum != tt.total {
				t.Errorf("parts sum to %d, want %d", sum, tt.total)
			}
		})
	}
}

func TestAllocateIntradayShape(t *testing.T) {
	p := DefaultParams("store-001", 7, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC))
	id := utils.NewIdentity(p.Identity)

	rec := DayRecord{
		Date:       time.Date(2026, 6, 24, 0, 0, 0, 0, time.UTC),
		SalesLevel: utils.Dollars(9200),
	}
	buckets := allocateIntraday(&p, id, rec)

	if want := p.Window.Slots(); len(buckets) != want {
		t.Fatalf("bucket count = %d, want %d", len(buckets), want)
	}

	var sum utils.Money
	for _, b := range buckets {
		sum += b.SalesGross
	}
	if sum != rec.SalesLevel {
		t.Errorf("bucket gross sum %v != day level %v", sum, rec.SalesLevel)
	}

	first, last := buckets[0], buckets[len(buckets)-1]
	if h := first.Timestamp.Hour(); h != p.Window.OpenHour {
		t.Errorf("first bucket at hour %d, want %d", h, p.Window.OpenHour)
	}
	if h, m := last.Timestamp.Hour(), last.Timestamp.Minute(); h != p.Window.CloseHour || m != 45 {
		t.Errorf("last bucket at %02d:%02d, want %02d:45", h, m, p.Window.CloseHour)
	}
}

func TestAllocateIntradayPeaks(t *testing.T) {
	p := DefaultParams("store-001", 7, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC))
	id := utils.NewIdentity(p.Identity)

	rec := DayRecord{
		Date:       time.Date(2026, 6, 24, 0, 0, 0, 0, time.UTC),
		SalesLevel: utils.Dollars(9200),
	}
	buckets := allocateIntraday(&p, id, rec)

	hourly := make(map[int]utils.Money)
	for _, b := range buckets {
		hourly[b.Timestamp.Hour()] += b.SalesGross
	}

	// Lunch and dinner must dominate the mid-afternoon trough.
	if hourly[12] <= hourly[15] {
		t.Errorf("lunch hour %v not above trough %v", hourly[12], hourly[15])
	}
	if hourly[19] <= hourly[15] {
		t.Errorf("dinner hour %v not above trough %v", hourly[19], hourly[15])
	}
}
