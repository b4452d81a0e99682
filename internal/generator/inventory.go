package generator

import (
	"github.com/bistroboard/demogen/internal/models"
	"github.com/bistroboard/demogen/internal/utils"
)

// restockCadenceDays is how often the supplier truck arrives.
const restockCadenceDays = 3

// DefaultIngredients returns the tracked-ingredient list used when no
// custom list is configured. Use ranges are units per day; opening
// levels sit just above one restock quantity so the first cycle does
// not start in a stockout.
func DefaultIngredients() []models.Ingredient {
	return []models.Ingredient{
		{ID: "ING-001", Name: "Ground Beef", MinDailyUse: 8, MaxDailyUse: 14, RestockQty: 40, OpeningLevel: 45},
		{ID: "ING-002", Name: "Chicken Breast", MinDailyUse: 6, MaxDailyUse: 12, RestockQty: 35, OpeningLevel: 40},
		{ID: "ING-003", Name: "Fresh Produce", MinDailyUse: 4, MaxDailyUse: 7, RestockQty: 18, OpeningLevel: 20},
		{ID: "ING-004", Name: "Cooking Oil", MinDailyUse: 3, MaxDailyUse: 6, RestockQty: 15, OpeningLevel: 18},
		{ID: "ING-005", Name: "Flour", MinDailyUse: 5, MaxDailyUse: 9, RestockQty: 25, OpeningLevel: 28},
	}
}

// openingLevels returns the starting stock for each configured
// ingredient, in configuration order.
func openingLevels(ingredients []models.Ingredient) []float64 {
	levels := make([]float64, len(ingredients))
	for i, ing := range ingredients {
		levels[i] = ing.OpeningLevel
	}
	return levels
}

// deriveInventory advances each ingredient's stock by one day:
// previous level minus a day-scoped uniform draw of usage, plus a
// restock when the cadence lands. Levels carry across days, so like
// the AR residual they are threaded through the call explicitly; the
// updated slice is returned rather than mutated in place.
func deriveInventory(p *Params, id utils.Identity, rec DayRecord, levels []float64) ([]models.InventoryDay, []float64) {
	mix := id.Child(rec.Date.Format("2006-01-02"), "stock").Mixer()
	restockDay := (rec.DayIndex+1)%restockCadenceDays == 0

	rows := make([]models.InventoryDay, len(p.Ingredients))
	next := make([]float64, len(levels))
	for i, ing := range p.Ingredients {
		use := mix.Range(ing.MinDailyUse, ing.MaxDailyUse)
		waste := use * mix.Range(0.02, 0.06)

		level := levels[i] - use
		stockIn := 0.0
		if restockDay {
			stockIn = ing.RestockQty
			level += stockIn
		}

		stockout := level <= 0
		if level < 0 {
			level = 0
		}
		next[i] = level

		rows[i] = models.InventoryDay{
			LocationID:   id.String(),
			Date:         rec.Date,
			ItemID:       ing.ID,
			ItemName:     ing.Name,
			StockOnHand:  round2(level),
			StockIn:      round2(stockIn),
			StockOut:     round2(use),
			WasteEst:     round2(waste),
			StockoutFlag: stockout,
		}
	}
	return rows, next
}
