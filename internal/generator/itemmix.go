package generator

import (
	"math"

	"github.com/bistroboard/demogen/internal/models"
	"github.com/bistroboard/demogen/internal/utils"
)

// mixShareTop is the revenue share of the best-selling item; each
// subsequent rank gives up mixShareStep. A ten-item menu therefore
// covers 82.5% of revenue, leaving the tail as long-tail items the
// report does not break out.
const (
	mixShareTop  = 0.15
	mixShareStep = 0.015
)

// DefaultMenu returns the top-selling menu used when no custom menu
// is configured. Prices and margins are hand-picked to look like a
// mid-market casual restaurant.
func DefaultMenu() []models.MenuItem {
	return []models.MenuItem{
		{ID: "ITM-001", Name: "Classic Burger", Price: utils.FromFloat(14.50), Margin: 0.68},
		{ID: "ITM-002", Name: "Margherita Pizza", Price: utils.FromFloat(16.00), Margin: 0.72},
		{ID: "ITM-003", Name: "Caesar Salad", Price: utils.FromFloat(11.50), Margin: 0.75},
		{ID: "ITM-004", Name: "Grilled Chicken Sandwich", Price: utils.FromFloat(13.75), Margin: 0.70},
		{ID: "ITM-005", Name: "Fish and Chips", Price: utils.FromFloat(17.25), Margin: 0.62},
		{ID: "ITM-006", Name: "Pasta Carbonara", Price: utils.FromFloat(15.50), Margin: 0.74},
		{ID: "ITM-007", Name: "Steak Frites", Price: utils.FromFloat(24.00), Margin: 0.58},
		{ID: "ITM-008", Name: "Veggie Bowl", Price: utils.FromFloat(12.25), Margin: 0.78},
		{ID: "ITM-009", Name: "Chicken Wings", Price: utils.FromFloat(10.50), Margin: 0.66},
		{ID: "ITM-010", Name: "House Fries", Price: utils.FromFloat(5.50), Margin: 0.82},
	}
}

// deriveItemMix allocates a decaying share of the day's sales to each
// menu item, by rank, and backs out implied unit counts from list
// prices. Per-item noise is day-scoped from a dedicated child stream.
func deriveItemMix(p *Params, id utils.Identity, rec DayRecord) []models.ItemMixDay {
	mix := id.Child(rec.Date.Format("2006-01-02"), "menu").Mixer()

	dayCovers := rec.SalesLevel.ToDollars() / 25
	if dayCovers < 1 {
		dayCovers = 1
	}

	rows := make([]models.ItemMixDay, len(p.Menu))
	for i, item := range p.Menu {
		share := mixShareTop - mixShareStep*float64(i)
		if share < 0 {
			share = 0
		}

		revenue := rec.SalesLevel.MulFloat(share * mix.Normal(1.0, 0.05))
		if revenue < 0 {
			revenue = 0
		}

		qty := 0
		if item.Price > 0 {
			qty = int(math.Round(revenue.ToDollars() / item.Price.ToDollars()))
		}

		rows[i] = models.ItemMixDay{
			LocationID: id.String(),
			Date:       rec.Date,
			ItemID:     item.ID,
			ItemName:   item.Name,
			Qty:        qty,
			RevenueNet: revenue,
			MarginEst:  round2(item.Margin * mix.Normal(1.0, 0.02)),
			AttachRate: round2(float64(qty) / dayCovers),
		}
	}
	return rows
}
