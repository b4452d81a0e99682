package models

import (
	"time"

	"github.com/bistroboard/demogen/internal/utils"
)

// LaborDay is one location-day of labor: what was scheduled, what was
// actually worked, and the estimated cost. Hours are decimal hours.
type LaborDay struct {
	LocationID string    `db:"location_id" json:"location_id"`
	Date       time.Time `db:"date" json:"date"`

	ScheduledHours float64     `db:"scheduled_hours" json:"scheduled_hours"`
	ActualHours    float64     `db:"actual_hours" json:"actual_hours"`
	LaborCostEst   utils.Money `db:"labor_cost_est" json:"labor_cost_est"`
	OvertimeHours  float64     `db:"overtime_hours" json:"overtime_hours"`
	Headcount      int         `db:"headcount" json:"headcount"`
}
