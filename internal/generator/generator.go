// Package generator fabricates internally consistent restaurant
// operational history: 15-minute sales buckets plus daily labor,
// item-mix, and inventory series, all derived deterministically from a
// seed identity so repeated runs reproduce identical datasets.
package generator

import (
	"fmt"
	"time"

	"github.com/bistroboard/demogen/internal/generator/patterns"
	"github.com/bistroboard/demogen/internal/models"
	"github.com/bistroboard/demogen/internal/utils"
)

// Params configures one generation run for one location identity.
// Zero values are not usable; start from DefaultParams and override.
type Params struct {
	Identity    string    // seed identity, any non-empty string
	HorizonDays int       // number of most-recent days to generate
	AsOf        time.Time // the last generated day ("today")

	BaseDailySales utils.Money // pre-multiplier daily gross level

	LaborRatio      float64 // target labor cost as a fraction of sales
	HourlyRate      float64 // blended average wage, dollars per hour
	WeekdayMinHours float64 // scheduled-hours floor, Monday to Friday
	WeekendMinHours float64 // scheduled-hours floor, Saturday and Sunday
	ShiftHours      float64 // nominal shift length for headcount

	Trend    TrendConfig
	Weekday  *patterns.WeekdayPattern
	Seasonal *patterns.SeasonalPattern
	Climate  *patterns.ClimateTable
	Window   patterns.ServiceWindow
	Intraday *patterns.IntradayCurve

	Menu        []models.MenuItem
	Ingredients []models.Ingredient
}

// DefaultParams returns a ready-to-run configuration for an identity
// and horizon, anchored so the final generated day is asOf.
func DefaultParams(identity string, horizonDays int, asOf time.Time) Params {
	return Params{
		Identity:    identity,
		HorizonDays: horizonDays,
		AsOf:        asOf,

		BaseDailySales: utils.Dollars(8000),

		LaborRatio:      0.28,
		HourlyRate:      16.50,
		WeekdayMinHours: 20,
		WeekendMinHours: 28,
		ShiftHours:      8,

		Trend:    DefaultTrend(),
		Weekday:  patterns.NewWeekdayPattern(),
		Seasonal: patterns.NewSeasonalPattern(),
		Climate:  patterns.NewClimateTable(),
		Window:   patterns.DefaultServiceWindow(),
		Intraday: patterns.NewIntradayCurve(),

		Menu:        DefaultMenu(),
		Ingredients: DefaultIngredients(),
	}
}

// Validate checks the run parameters, collecting every problem into
// one error so a caller can fix a bad config in a single pass.
func (p *Params) Validate() error {
	var errs []string

	if p.Identity == "" {
		errs = append(errs, "identity must be a non-empty string")
	}
	if p.HorizonDays < 0 {
		errs = append(errs, "horizon_days must be non-negative")
	}
	if p.AsOf.IsZero() {
		errs = append(errs, "as_of reference date must be set")
	}
	if p.BaseDailySales <= 0 {
		errs = append(errs, "base_daily_sales must be positive")
	}
	if p.LaborRatio <= 0 || p.LaborRatio >= 1 {
		errs = append(errs, "labor_ratio must be between 0 and 1 (exclusive)")
	}
	if p.HourlyRate <= 0 {
		errs = append(errs, "hourly_rate must be positive")
	}
	if p.WeekdayMinHours < 0 || p.WeekendMinHours < 0 {
		errs = append(errs, "minimum scheduled hours must be non-negative")
	}
	if p.ShiftHours <= 0 {
		errs = append(errs, "shift_hours must be positive")
	}
	if p.Trend.RampEnd <= 0 || p.Trend.SteadyEnd <= p.Trend.RampEnd || p.Trend.SteadyEnd >= 1 {
		errs = append(errs, "trend phase boundaries must satisfy 0 < ramp_end < steady_end < 1")
	}
	if p.Trend.RampRate < 0 || p.Trend.SteadyRate < 0 || p.Trend.MatureRate < 0 {
		errs = append(errs, "trend growth rates must be non-negative")
	}
	if p.Window.CloseHour <= p.Window.OpenHour {
		errs = append(errs, "service window close hour must be after open hour")
	}
	if p.Window.SlotMinutes <= 0 || 60%p.Window.SlotMinutes != 0 {
		errs = append(errs, "slot_minutes must evenly divide an hour")
	}
	if p.Weekday == nil || p.Seasonal == nil || p.Climate == nil || p.Intraday == nil {
		errs = append(errs, "pattern tables must all be set (use DefaultParams)")
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation errors:\n  - %s", joinErrors(errs))
	}

	return nil
}

// joinErrors joins error messages with newline and bullet points
func joinErrors(errs []string) string {
	result := errs[0]
	for _, e := range errs[1:] {
		result += "\n  - " + e
	}
	return result
}

// Dataset is the complete output of one generation run.
type Dataset struct {
	SalesBuckets []models.SalesBucket
	LaborDaily   []models.LaborDay
	ItemMixDaily []models.ItemMixDay
	InventoryDay []models.InventoryDay
}

// Generate runs the full pipeline for one identity: compose each day
// in order, spread it across intraday buckets, and derive the labor,
// item-mix, and inventory series. A zero horizon returns an empty
// dataset and no error. The same Params always produce the same
// Dataset, byte for byte.
func Generate(p Params) (*Dataset, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	id := utils.NewIdentity(p.Identity)
	run := id.Mixer()

	ds := &Dataset{
		SalesBuckets: make([]models.SalesBucket, 0, p.HorizonDays*p.Window.Slots()),
		LaborDaily:   make([]models.LaborDay, 0, p.HorizonDays),
		ItemMixDaily: make([]models.ItemMixDay, 0, p.HorizonDays*len(p.Menu)),
		InventoryDay: make([]models.InventoryDay, 0, p.HorizonDays*len(p.Ingredients)),
	}

	start := p.AsOf.AddDate(0, 0, -(p.HorizonDays - 1))
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	// Run-scoped carried state: the AR residual and per-ingredient
	// stock levels. Both are threaded explicitly through the loop and
	// discarded at the end of the run.
	residual := 0.0
	levels := openingLevels(p.Ingredients)

	for dayIndex := 0; dayIndex < p.HorizonDays; dayIndex++ {
		date := start.AddDate(0, 0, dayIndex)

		var rec DayRecord
		rec, residual = composeDay(&p, id, date, dayIndex, run, residual)

		ds.SalesBuckets = append(ds.SalesBuckets, allocateIntraday(&p, id, rec)...)
		ds.LaborDaily = append(ds.LaborDaily, deriveLabor(&p, id, rec))
		ds.ItemMixDaily = append(ds.ItemMixDaily, deriveItemMix(&p, id, rec)...)

		var inv []models.InventoryDay
		inv, levels = deriveInventory(&p, id, rec, levels)
		ds.InventoryDay = append(ds.InventoryDay, inv...)
	}

	return ds, nil
}
