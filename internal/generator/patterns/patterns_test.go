package patterns

import (
	"math"
	"testing"
	"time"
)

func TestWeekdayPattern_Shape(t *testing.T) {
	wp := NewWeekdayPattern()

	if wp.Multiplier(time.Monday) >= wp.Multiplier(time.Saturday) {
		t.Error("Monday should be the trough and Saturday the peak")
	}
	if wp.Multiplier(time.Monday) != 0.75 {
		t.Errorf("Monday multiplier = %v, want 0.75", wp.Multiplier(time.Monday))
	}
	if wp.Multiplier(time.Saturday) != 1.40 {
		t.Errorf("Saturday multiplier = %v, want 1.40", wp.Multiplier(time.Saturday))
	}
}

func TestWeekdayPattern_Weekend(t *testing.T) {
	wp := NewWeekdayPattern()

	if !wp.IsWeekend(time.Saturday) || !wp.IsWeekend(time.Sunday) {
		t.Error("Saturday and Sunday should be weekend")
	}
	if wp.IsWeekend(time.Wednesday) {
		t.Error("Wednesday should not be weekend")
	}
}

func TestSeasonalPattern_Shape(t *testing.T) {
	sp := NewSeasonalPattern()

	if sp.MonthMultiplier(11) != 1.30 {
		t.Errorf("December multiplier = %v, want 1.30", sp.MonthMultiplier(11))
	}

	// Summer trough: August below spring and December.
	aug := sp.MonthMultiplier(7)
	if aug >= sp.MonthMultiplier(4) || aug >= sp.MonthMultiplier(11) {
		t.Errorf("August (%v) should be the seasonal trough", aug)
	}
}

func TestSeasonalPattern_NeutralFallback(t *testing.T) {
	sp := NewSeasonalPattern()

	for _, month := range []int{-1, 12, 99} {
		if got := sp.MonthMultiplier(month); got != 1.0 {
			t.Errorf("MonthMultiplier(%d) = %v, want neutral 1.0", month, got)
		}
	}
}

func TestSeasonalPattern_Holidays(t *testing.T) {
	sp := NewSeasonalPattern()

	christmas := time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC)
	if !sp.IsHoliday(christmas) {
		t.Error("December 25 should be a holiday")
	}

	ordinary := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)
	if sp.IsHoliday(ordinary) {
		t.Error("March 12 should not be a holiday")
	}
}

func TestSeasonalPattern_Paydays(t *testing.T) {
	cases := []struct {
		day  int
		want bool
	}{
		{1, true},
		{2, false},
		{14, false},
		{15, true},
		{24, false},
		{25, true},
		{28, true},
		{31, true},
	}

	sp := NewSeasonalPattern()
	for _, c := range cases {
		d := time.Date(2024, time.January, c.day, 0, 0, 0, 0, time.UTC)
		if got := sp.IsPayday(d); got != c.want {
			t.Errorf("IsPayday(day %d) = %v, want %v", c.day, got, c.want)
		}
	}
}

func TestClimateTable_NeutralFallback(t *testing.T) {
	ct := NewClimateTable()

	got := ct.Month(42)
	if got != neutralClimate {
		t.Errorf("out-of-range month returned %+v, want neutral default", got)
	}
}

func TestClimateTable_SeasonalShape(t *testing.T) {
	ct := NewClimateTable()

	if ct.Month(6).AvgTempC <= ct.Month(0).AvgTempC {
		t.Error("July should be warmer than January")
	}
	for m := 0; m < 12; m++ {
		c := ct.Month(m)
		if c.RainProb < 0 || c.RainProb > 1 {
			t.Errorf("month %d rain probability %v out of [0,1]", m, c.RainProb)
		}
		if c.TempStdC <= 0 {
			t.Errorf("month %d temperature std %v must be positive", m, c.TempStdC)
		}
	}
}

func TestServiceWindow_DefaultSlotCount(t *testing.T) {
	w := DefaultServiceWindow()

	if w.Hours() != 13 {
		t.Errorf("default window hours = %d, want 13", w.Hours())
	}
	if w.Slots() != 52 {
		t.Errorf("default window slots = %d, want 52 (13 hours x 4)", w.Slots())
	}
}

func TestServiceWindow_SlotStart(t *testing.T) {
	w := DefaultServiceWindow()
	date := time.Date(2024, time.June, 1, 17, 30, 0, 0, time.UTC) // time-of-day ignored

	first := w.SlotStart(date, 0)
	if first.Hour() != 11 || first.Minute() != 0 {
		t.Errorf("slot 0 starts at %02d:%02d, want 11:00", first.Hour(), first.Minute())
	}

	last := w.SlotStart(date, w.Slots()-1)
	if last.Hour() != 23 || last.Minute() != 45 {
		t.Errorf("last slot starts at %02d:%02d, want 23:45", last.Hour(), last.Minute())
	}
}

func TestIntradayCurve_PeakStructure(t *testing.T) {
	c := NewIntradayCurve()

	if c.HourShare(19) <= c.HourShare(15) {
		t.Error("dinner hour should outdraw the afternoon lull")
	}
	if c.HourShare(12) != 0.15 {
		t.Errorf("lunch share = %v, want 0.15", c.HourShare(12))
	}
	if c.HourShare(19) != 0.17 {
		t.Errorf("dinner share = %v, want 0.17", c.HourShare(19))
	}

	// Unlisted hour gets the neutral share rather than zero.
	if c.HourShare(3) != neutralHourShare {
		t.Errorf("unlisted hour share = %v, want %v", c.HourShare(3), neutralHourShare)
	}
}

func TestIntradayCurve_SlotWeights(t *testing.T) {
	c := NewIntradayCurve()
	w := DefaultServiceWindow()

	weights := c.SlotWeights(w)
	if len(weights) != w.Slots() {
		t.Fatalf("got %d weights, want %d", len(weights), w.Slots())
	}

	// Slots within one hour share that hour's demand evenly.
	if math.Abs(weights[4]-c.HourShare(12)/4) > 1e-12 {
		t.Errorf("12:00 slot weight = %v, want %v", weights[4], c.HourShare(12)/4)
	}
}
