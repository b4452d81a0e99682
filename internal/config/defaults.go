// Package config contains compile-time defaults for the demo data
// generator. Edit these values and recompile to tune behavior.
package config

import "time"

// =============================================================================
// GENERATION DEFAULTS
// =============================================================================

// Fleet shape
const (
	// NumLocations is how many restaurant locations to generate
	NumLocations = 5

	// LocationPrefix is the identity prefix ("store" -> "store-001")
	LocationPrefix = "store"

	// HorizonDays is how many days of history to generate per location
	HorizonDays = 365
)

// Sales level
const (
	// BaseDailySales is the pre-multiplier daily gross level in dollars
	BaseDailySales = 8000.0
)

// Labor
const (
	// LaborRatio is target labor cost as a fraction of sales
	LaborRatio = 0.28

	// HourlyRate is the blended average wage in dollars per hour
	HourlyRate = 16.50

	// WeekdayMinHours is the scheduled-hours floor Monday to Friday
	WeekdayMinHours = 20.0

	// WeekendMinHours is the scheduled-hours floor Saturday and Sunday
	WeekendMinHours = 28.0
)

// Growth trend phases, as fractions of the horizon and of growth
const (
	// TrendRampEnd is where the new-opening ramp finishes
	TrendRampEnd = 0.30

	// TrendSteadyEnd is where the steady phase finishes
	TrendSteadyEnd = 0.70

	// TrendRampRate is growth added during the ramp (0.30 = +30%)
	TrendRampRate = 0.30

	// TrendSteadyRate is growth added during the steady phase
	TrendSteadyRate = 0.12

	// TrendMatureRate is growth added once mature
	TrendMatureRate = 0.05
)

// Service window
const (
	// OpenHour is the first service hour (24-hour format, inclusive)
	OpenHour = 11

	// CloseHour is the last service hour (24-hour format, inclusive)
	CloseHour = 23

	// SlotMinutes is the sales bucket width in minutes
	SlotMinutes = 15
)

// =============================================================================
// DATABASE DEFAULTS
// =============================================================================

const (
	// DBDriver is the database driver to use
	DBDriver = "mysql"

	// DBMaxOpenConns is maximum open connections in the pool
	DBMaxOpenConns = 100

	// DBMaxIdleConns is maximum idle connections in the pool
	DBMaxIdleConns = 10

	// DBConnMaxLifetime is how long a connection can be reused
	DBConnMaxLifetime = 5 * time.Minute

	// DBConnMaxIdleTime is how long an idle connection is kept
	DBConnMaxIdleTime = 1 * time.Minute
)
