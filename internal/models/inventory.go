package models

import (
	"time"
)

// Ingredient is one tracked inventory item. Use and restock quantities
// are in the ingredient's stock unit (kilograms, liters, cases).
type Ingredient struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Daily use is drawn uniformly from [MinDailyUse, MaxDailyUse)
	MinDailyUse float64 `json:"min_daily_use"`
	MaxDailyUse float64 `json:"max_daily_use"`

	// RestockQty arrives every restock cadence
	RestockQty float64 `json:"restock_qty"`

	// OpeningLevel is the stock on hand before the first simulated day
	OpeningLevel float64 `json:"opening_level"`
}

// InventoryDay is one location-day-ingredient row of inventory
// movement.
type InventoryDay struct {
	LocationID string    `db:"location_id" json:"location_id"`
	Date       time.Time `db:"date" json:"date"`

	ItemID       string  `db:"item_id" json:"item_id"`
	ItemName     string  `db:"item_name" json:"item_name"`
	StockOnHand  float64 `db:"stock_on_hand" json:"stock_on_hand"`
	StockIn      float64 `db:"stock_in" json:"stock_in"`
	StockOut     float64 `db:"stock_out" json:"stock_out"`
	WasteEst     float64 `db:"waste_est" json:"waste_est"`
	StockoutFlag bool    `db:"stockout_flag" json:"stockout_flag"`
}
