package generator

import (
	"testing"
	"time"

	"github.com/bistroboard/demogen/internal/utils"
)

func TestDeriveItemMix(t *testing.T) {
	p := DefaultParams("store-001", 7, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC))
	id := utils.NewIdentity(p.Identity)
	rec := DayRecord{
		Date:       time.Date(2026, 6, 24, 0, 0, 0, 0, time.UTC),
		SalesLevel: utils.Dollars(8000),
	}

	rows := deriveItemMix(&p, id, rec)

	t.Run("one row per menu item in rank order", func(t *testing.T) {
		if len(rows) != len(p.Menu) {
			t.Fatalf("rows = %d, want %d", len(rows), len(p.Menu))
		}
		for i, row := range rows {
			if row.ItemID != p.Menu[i].ID {
				t.Errorf("row %d item = %s, want %s", i, row.ItemID, p.Menu[i].ID)
			}
		}
	})

	t.Run("revenue decays down the ranking", func(t *testing.T) {
		// Noise is 5%, the rank step is 10% of the top share, so even
		// two ranks apart ordering must hold.
		if rows[0].RevenueNet <= rows[2].RevenueNet {
			t.Errorf("rank 1 revenue %v not above rank 3 revenue %v",
				rows[0].RevenueNet, rows[2].RevenueNet)
		}
		if rows[len(rows)-3].RevenueNet <= rows[len(rows)-1].RevenueNet {
			t.Errorf("tail ranks out of order: %v <= %v",
				rows[len(rows)-3].RevenueNet, rows[len(rows)-1].RevenueNet)
		}
	})

	t.Run("quantities imply revenue at list price", func(t *testing.T) {
		for i, row := range rows {
			if row.Qty < 0 {
				t.Errorf("row %d qty = %d, want non-negative", i, row.Qty)
			}
			implied := p.Menu[i].Price.MulFloat(float64(row.Qty))
			diff := implied.Sub(row.RevenueNet).ToDollars()
			if diff < 0 {
				diff = -diff
			}
			if diff > p.Menu[i].Price.ToDollars() {
				t.Errorf("row %d: qty %d at %v implies %v, revenue is %v",
					i, row.Qty, p.Menu[i].Price, implied, row.RevenueNet)
			}
		}
	})

	t.Run("margins stay near the menu margin", func(t *testing.T) {
		for i, row := range rows {
			want := p.Menu[i].Margin
			if row.MarginEst < want*0.9 || row.MarginEst > want*1.1 {
				t.Errorf("row %d margin = %v, want near %v", i, row.MarginEst, want)
			}
		}
	})

	t.Run("same day reproduces exactly", func(t *testing.T) {
		again := deriveItemMix(&p, id, rec)
		for i := range rows {
			if rows[i] != again[i] {
				t.Fatalf("row %d differs on replay: %+v vs %+v", i, rows[i], again[i])
			}
		}
	})
}
