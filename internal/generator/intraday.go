package generator

import (
	"math"

	"github.com/bistroboard/demogen/internal/models"
	"github.com/bistroboard/demogen/internal/utils"
)

// Event injection probabilities and amount ranges per bucket. Rare by
// construction so a day's totals stay dominated by real demand.
const (
	discountChance = 0.03
	voidChance     = 0.02
	compChance     = 0.03
	refundChance   = 0.01
)

// apportionInts splits a total count across parts proportionally to
// weights, using cumulative rounding so the parts always sum back to
// the total. Zero or negative weights fall back to an even split.
func apportionInts(total int, weights []float64) []int {
	parts := make([]int, len(weights))
	if len(weights) == 0 || total <= 0 {
		return parts
	}

	var sum float64
	for _, w := range weights {
		if w > 0 {
			sum += w
		}
	}
	if sum <= 0 {
		each := total / len(weights)
		for i := range parts {
			parts[i] = each
		}
		parts[len(parts)-1] += total - each*len(parts)
		return parts
	}

	allocated := 0
	var cum float64
	for i, w := range weights {
		if w > 0 {
			cum += w
		}
		target := int(math.Round(float64(total) * cum / sum))
		parts[i] = target - allocated
		allocated = target
	}
	parts[len(parts)-1] += total - allocated
	return parts
}

// allocateIntraday spreads one composed day across the service
// window's buckets. Sales amounts are split with cent-exact
// allocation, so summing sales_gross over a day's buckets always
// reproduces rec.SalesLevel. All randomness here is day-scoped: the
// average ticket, the per-bucket channel splits, and the rare event
// draws come from the same per-day stream the weather used, never
// from the run-scoped residual stream.
func allocateIntraday(p *Params, id utils.Identity, rec DayRecord) []models.SalesBucket {
	day := dayMixer(id, rec.Date)

	// The composer consumed three draws from this stream (two for the
	// temperature Normal, one for the rain check). Skip past them so
	// bucket draws land on the same values whether or not the record
	// was just composed.
	day.Next()
	day.Next()
	day.Next()

	avgTicket := day.Normal(25, 3)
	if avgTicket < 5 {
		avgTicket = 5
	}
	partySize := day.Range(1.6, 2.4)

	dayCovers := int(rec.SalesLevel.ToDollars() / avgTicket)
	if dayCovers < 1 {
		dayCovers = 1
	}

	weights := p.Intraday.SlotWeights(p.Window)
	gross := utils.AllocateByWeight(rec.SalesLevel, weights)
	covers := apportionInts(dayCovers, weights)

	buckets := make([]models.SalesBucket, len(weights))
	for i := range weights {
		b := models.SalesBucket{
			LocationID: id.String(),
			Timestamp:  p.Window.SlotStart(rec.Date, i),
			SalesGross: gross[i],
			Covers:     covers[i],
		}

		if b.Covers > 0 {
			b.Tickets = int(math.Round(float64(b.Covers) / partySize))
			if b.Tickets < 1 {
				b.Tickets = 1
			}
		}

		if day.Chance(discountChance) {
			b.Discounts = utils.FromFloat(day.Range(2, 12))
		}
		if day.Chance(voidChance) {
			b.Voids = utils.FromFloat(day.Range(5, 25))
		}
		if day.Chance(compChance) {
			b.Comps = utils.FromFloat(day.Range(3, 15))
		}
		if day.Chance(refundChance) {
			b.Refunds = utils.FromFloat(day.Range(5, 30))
		}

		deductions := b.Discounts + b.Voids + b.Comps + b.Refunds
		b.SalesNet = b.SalesGross.Sub(deductions).Max(0)

		// Channel mix wobbles independently per bucket around a
		// dine-in-heavy base; cent-exact allocation keeps the three
		// channel amounts summing back to net.
		dine := 0.55 * (0.5 + day.Next())
		pickup := 0.25 * (0.5 + day.Next())
		delivery := 0.20 * (0.5 + day.Next())
		channels := utils.AllocateByWeight(b.SalesNet, []float64{dine, pickup, delivery})
		b.ChannelDineIn = channels[0]
		b.ChannelPickup = channels[1]
		b.ChannelDelivery = channels[2]

		buckets[i] = b
	}
	return buckets
}
