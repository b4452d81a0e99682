package models

import (
	"time"

	"github.com/bistroboard/demogen/internal/utils"
)

// MenuItem is one entry of the top-N menu list the item-mix series is
// generated against.
type MenuItem struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Price  utils.Money `json:"price"`
	Margin float64     `json:"margin"` // gross margin estimate, 0-1
}

// ItemMixDay is one location-day-item row of the daily item mix.
type ItemMixDay struct {
	LocationID string    `db:"location_id" json:"location_id"`
	Date       time.Time `db:"date" json:"date"`

	ItemID     string      `db:"item_id" json:"item_id"`
	ItemName   string      `db:"item_name" json:"item_name"`
	Qty        int         `db:"qty" json:"qty"`
	RevenueNet utils.Money `db:"revenue_net" json:"revenue_net"`
	MarginEst  float64     `db:"margin_est" json:"margin_est"`   // 0-1
	AttachRate float64     `db:"attach_rate" json:"attach_rate"` // 0-1, qty per cover
}
