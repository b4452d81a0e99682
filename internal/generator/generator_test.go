package generator

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/bistroboard/demogen/internal/utils"
)

var testAsOf = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

func TestGenerateDeterminism(t *testing.T) {
	a, err := Generate(DefaultParams("downtown-bistro", 14, testAsOf))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(DefaultParams("downtown-bistro", 14, testAsOf))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("identical params produced different datasets")
	}
}

func TestGenerateIdentityIndependence(t *testing.T) {
	a, err := Generate(DefaultParams("downtown-bistro", 14, testAsOf))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(DefaultParams("uptown-bistro", 14, testAsOf))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	differs := false
	for i := range a.SalesBuckets {
		if a.SalesBuckets[i].SalesGross != b.SalesBuckets[i].SalesGross {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("different identities produced identical sales series")
	}
}

func TestGenerateZeroHorizon(t *testing.T) {
	ds, err := Generate(DefaultParams("downtown-bistro", 0, testAsOf))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(ds.SalesBuckets) != 0 || len(ds.LaborDaily) != 0 ||
		len(ds.ItemMixDaily) != 0 || len(ds.InventoryDay) != 0 {
		t.Errorf("zero horizon produced rows: %d/%d/%d/%d",
			len(ds.SalesBuckets), len(ds.LaborDaily), len(ds.ItemMixDaily), len(ds.InventoryDay))
	}
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"empty identity", func(p *Params) { p.Identity = "" }},
		{"negative horizon", func(p *Params) { p.HorizonDays = -1 }},
		{"zero as-of", func(p *Params) { p.AsOf = time.Time{} }},
		{"zero base sales", func(p *Params) { p.BaseDailySales = 0 }},
		{"labor ratio out of range", func(p *Params) { p.LaborRatio = 1.2 }},
		{"negative trend rate", func(p *Params) { p.Trend.RampRate = -0.1 }},
		{"inverted service window", func(p *Params) { p.Window.CloseHour = p.Window.OpenHour - 1 }},
		{"uneven slot width", func(p *Params) { p.Window.SlotMinutes = 25 }},
		{"missing pattern tables", func(p *Params) { p.Climate = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams("downtown-bistro", 7, testAsOf)
			tt.mutate(&p)
			if _, err := Generate(p); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestGenerateWeekScenario(t *testing.T) {
	p := DefaultParams("downtown-bistro", 7, testAsOf)
	ds, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	t.Run("row counts", func(t *testing.T) {
		// 13 service hours at 4 slots each, 7 days.
		if want := 7 * 13 * 4; len(ds.SalesBuckets) != want {
			t.Errorf("sales buckets = %d, want %d", len(ds.SalesBuckets), want)
		}
		if len(ds.LaborDaily) != 7 {
			t.Errorf("labor rows = %d, want 7", len(ds.LaborDaily))
		}
		if want := 7 * len(p.Menu); len(ds.ItemMixDaily) != want {
			t.Errorf("item mix rows = %d, want %d", len(ds.ItemMixDaily), want)
		}
		if want := 7 * len(p.Ingredients); len(ds.InventoryDay) != want {
			t.Errorf("inventory rows = %d, want %d", len(ds.InventoryDay), want)
		}
	})

	t.Run("dates end at as-of", func(t *testing.T) {
		last := ds.LaborDaily[len(ds.LaborDaily)-1].Date
		if !last.Equal(testAsOf) {
			t.Errorf("final day = %v, want %v", last, testAsOf)
		}
		first := ds.LaborDaily[0].Date
		if want := testAsOf.AddDate(0, 0, -6); !first.Equal(want) {
			t.Errorf("first day = %v, want %v", first, want)
		}
	})

	t.Run("labor tracks target ratio", func(t *testing.T) {
		var sales, labor utils.Money
		for _, b := range ds.SalesBuckets {
			sales += b.SalesGross
		}
		for _, l := range ds.LaborDaily {
			labor += l.LaborCostEst
		}
		ratio := labor.ToDollars() / sales.ToDollars()
		if math.Abs(ratio-p.LaborRatio) > 0.05 {
			t.Errorf("labor ratio = %v, want %v +- 0.05", ratio, p.LaborRatio)
		}
	})
}

// Summing a day's buckets must reconstruct the day's composed sales
// level to the cent.
func TestBucketSumInvariant(t *testing.T) {
	p := DefaultParams("downtown-bistro", 30, testAsOf)
	ds, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Replay the composer to recover each day's level.
	id := utils.NewIdentity(p.Identity)
	run := id.Mixer()
	start := testAsOf.AddDate(0, 0, -(p.HorizonDays - 1))
	levels := make(map[string]utils.Money)
	residual := 0.0
	for d := 0; d < p.HorizonDays; d++ {
		var rec DayRecord
		rec, residual = composeDay(&p, id, start.AddDate(0, 0, d), d, run, residual)
		levels[rec.Date.Format("2006-01-02")] = rec.SalesLevel
	}

	sums := make(map[string]utils.Money)
	for _, b := range ds.SalesBuckets {
		sums[b.Timestamp.Format("2006-01-02")] += b.SalesGross
	}

	if len(sums) != p.HorizonDays {
		t.Fatalf("buckets span %d days, want %d", len(sums), p.HorizonDays)
	}
	for day, sum := range sums {
		if sum != levels[day] {
			t.Errorf("day %s: bucket sum %v != composed level %v", day, sum, levels[day])
		}
	}
}

func TestBucketInternalConsistency(t *testing.T) {
	ds, err := Generate(DefaultParams("downtown-bistro", 14, testAsOf))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, b := range ds.SalesBuckets {
		if b.SalesNet > b.SalesGross {
			t.Fatalf("%v: net %v exceeds gross %v", b.Timestamp, b.SalesNet, b.SalesGross)
		}
		channels := b.ChannelDineIn + b.ChannelPickup + b.ChannelDelivery
		if channels != b.SalesNet {
			t.Fatalf("%v: channel sum %v != net %v", b.Timestamp, channels, b.SalesNet)
		}
		if b.Covers > 0 && b.Tickets < 1 {
			t.Fatalf("%v: %d covers but no tickets", b.Timestamp, b.Covers)
		}
	}
}

func TestInventoryRestockCadence(t *testing.T) {
	p := DefaultParams("downtown-bistro", 9, testAsOf)
	ds, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	perDay := len(p.Ingredients)
	for d := 0; d < 9; d++ {
		row := ds.InventoryDay[d*perDay]
		restocked := row.StockIn > 0
		if want := (d+1)%restockCadenceDays == 0; restocked != want {
			t.Errorf("day %d: restocked=%v, want %v", d, restocked, want)
		}
	}
}

func TestItemMixShares(t *testing.T) {
	p := DefaultParams("downtown-bistro", 1, testAsOf)
	ds, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var daySales utils.Money
	for _, b := range ds.SalesBuckets {
		daySales += b.SalesGross
	}

	// The top item carries roughly 15% of the day, with 5% noise.
	top := ds.ItemMixDaily[0]
	share := top.RevenueNet.ToDollars() / daySales.ToDollars()
	if share < 0.10 || share > 0.20 {
		t.Errorf("top item share = %v, want near 0.15", share)
	}

	// Revenue decays with rank apart from noise; compare first to last.
	last := ds.ItemMixDaily[len(p.Menu)-1]
	if last.RevenueNet >= top.RevenueNet {
		t.Errorf("rank-last revenue %v >= rank-first %v", last.RevenueNet, top.RevenueNet)
	}
}
