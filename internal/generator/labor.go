package generator

import (
	"math"

	"github.com/bistroboard/demogen/internal/models"
	"github.com/bistroboard/demogen/internal/utils"
)

// deriveLabor turns one day's sales level into a staffing row. Target
// labor cost tracks net sales at the configured ratio; hours come from
// the average wage, with a floor so a quiet Tuesday still has a skeleton
// crew on the clock. Noise is day-scoped, drawn from a dedicated child
// stream so labor draws never shift the sales-side draws for the day.
func deriveLabor(p *Params, id utils.Identity, rec DayRecord) models.LaborDay {
	mix := id.Child(rec.Date.Format("2006-01-02"), "labor").Mixer()

	targetCost := rec.SalesLevel.MulFloat(p.LaborRatio)
	scheduled := targetCost.ToDollars() / p.HourlyRate

	floor := p.WeekdayMinHours
	if rec.Weekend {
		floor = p.WeekendMinHours
	}
	if scheduled < floor {
		scheduled = floor
	}

	actual := scheduled * mix.Normal(1.0, 0.03)
	if actual < 0 {
		actual = 0
	}

	overtime := actual - scheduled
	if overtime < 0 {
		overtime = 0
	}

	return models.LaborDay{
		LocationID:     id.String(),
		Date:           rec.Date,
		ScheduledHours: round2(scheduled),
		ActualHours:    round2(actual),
		LaborCostEst:   utils.FromFloat(actual * p.HourlyRate),
		OvertimeHours:  round2(overtime),
		Headcount:      int(math.Ceil(scheduled / p.ShiftHours)),
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
