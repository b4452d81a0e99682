package models

import (
	"time"

	"github.com/bistroboard/demogen/internal/utils"
)

// SalesBucket is one 15-minute slice of a location's sales day. Buckets
// are append-only and self-consistent: summing a day's buckets
// reconstructs the day's composed sales level exactly.
type SalesBucket struct {
	LocationID string    `db:"location_id" json:"location_id"`
	Timestamp  time.Time `db:"ts" json:"ts"`

	SalesGross utils.Money `db:"sales_gross" json:"sales_gross"`
	SalesNet   utils.Money `db:"sales_net" json:"sales_net"`

	Tickets int `db:"tickets" json:"tickets"`
	Covers  int `db:"covers" json:"covers"`

	// Rare-event adjustments, zero in most buckets
	Discounts utils.Money `db:"discounts" json:"discounts"`
	Voids     utils.Money `db:"voids" json:"voids"`
	Comps     utils.Money `db:"comps" json:"comps"`
	Refunds   utils.Money `db:"refunds" json:"refunds"`

	// Net sales split by service channel, summing to SalesNet
	ChannelDineIn   utils.Money `db:"channel_dine_in" json:"channel_dine_in"`
	ChannelPickup   utils.Money `db:"channel_pickup" json:"channel_pickup"`
	ChannelDelivery utils.Money `db:"channel_delivery" json:"channel_delivery"`
}
