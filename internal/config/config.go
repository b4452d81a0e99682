package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the demo data generator
type Config struct {
	// Database configuration
	Database DatabaseConfig `mapstructure:"database"`

	// Data generation configuration
	Generate GenerateConfig `mapstructure:"generate"`

	// Logging
	Verbose bool `mapstructure:"verbose"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	// Connection string (DSN)
	// Format: user:password@tcp(host:port)/database
	DSN string `mapstructure:"dsn"`

	// Driver (mysql, postgres, etc.)
	Driver string `mapstructure:"driver"`

	// Connection pool settings
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// GenerateConfig holds data generation settings
type GenerateConfig struct {
	// Output directory for generated files
	OutputDir string `mapstructure:"output_dir"`

	// Volume settings
	NumLocations   int    `mapstructure:"num_locations"`
	LocationPrefix string `mapstructure:"location_prefix"`
	HorizonDays    int    `mapstructure:"horizon_days"`

	// AsOf is the final generated day in YYYY-MM-DD form.
	// Empty means "today" in UTC.
	AsOf string `mapstructure:"as_of"`

	// Sales level settings
	BaseDailySales float64 `mapstructure:"base_daily_sales"`

	// Labor settings
	LaborRatio      float64 `mapstructure:"labor_ratio"`
	HourlyRate      float64 `mapstructure:"hourly_rate"`
	WeekdayMinHours float64 `mapstructure:"weekday_min_hours"`
	WeekendMinHours float64 `mapstructure:"weekend_min_hours"`

	// Growth trend phase settings (fractions of the horizon / growth)
	TrendRampEnd    float64 `mapstructure:"trend_ramp_end"`
	TrendSteadyEnd  float64 `mapstructure:"trend_steady_end"`
	TrendRampRate   float64 `mapstructure:"trend_ramp_rate"`
	TrendSteadyRate float64 `mapstructure:"trend_steady_rate"`
	TrendMatureRate float64 `mapstructure:"trend_mature_rate"`

	// Service window settings (hours in 24h form, inclusive)
	OpenHour    int `mapstructure:"open_hour"`
	CloseHour   int `mapstructure:"close_hour"`
	SlotMinutes int `mapstructure:"slot_minutes"`

	// Parallelism for generation
	NumWorkers int `mapstructure:"num_workers"`

	// Compress output with xz
	Compress bool `mapstructure:"compress"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:          DBDriver,
			MaxOpenConns:    DBMaxOpenConns,
			MaxIdleConns:    DBMaxIdleConns,
			ConnMaxLifetime: DBConnMaxLifetime,
			ConnMaxIdleTime: DBConnMaxIdleTime,
		},
		Generate: GenerateConfig{
			OutputDir:       "./output",
			NumLocations:    NumLocations,
			LocationPrefix:  LocationPrefix,
			HorizonDays:     HorizonDays,
			BaseDailySales:  BaseDailySales,
			LaborRatio:      LaborRatio,
			HourlyRate:      HourlyRate,
			WeekdayMinHours: WeekdayMinHours,
			WeekendMinHours: WeekendMinHours,
			TrendRampEnd:    TrendRampEnd,
			TrendSteadyEnd:  TrendSteadyEnd,
			TrendRampRate:   TrendRampRate,
			TrendSteadyRate: TrendSteadyRate,
			TrendMatureRate: TrendMatureRate,
			OpenHour:        OpenHour,
			CloseHour:       CloseHour,
			SlotMinutes:     SlotMinutes,
			NumWorkers:      0, // auto-detect
		},
		Verbose: false,
	}
}

// Load reads configuration from viper into a Config struct
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Unmarshal viper config into struct
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []string

	// Validate generation config
	if c.Generate.NumLocations <= 0 {
		errs = append(errs, "generate.num_locations must be positive")
	}
	if c.Generate.HorizonDays < 0 {
		errs = append(errs, "generate.horizon_days must be non-negative")
	}
	if c.Generate.AsOf != "" {
		if _, err := time.Parse("2006-01-02", c.Generate.AsOf); err != nil {
			errs = append(errs, "generate.as_of must be a YYYY-MM-DD date")
		}
	}
	if c.Generate.BaseDailySales <= 0 {
		errs = append(errs, "generate.base_daily_sales must be positive")
	}
	if c.Generate.LaborRatio <= 0 || c.Generate.LaborRatio >= 1 {
		errs = append(errs, "generate.labor_ratio must be between 0 and 1 (exclusive)")
	}
	if c.Generate.HourlyRate <= 0 {
		errs = append(errs, "generate.hourly_rate must be positive")
	}
	if c.Generate.WeekdayMinHours < 0 {
		errs = append(errs, "generate.weekday_min_hours must be non-negative")
	}
	if c.Generate.WeekendMinHours < 0 {
		errs = append(errs, "generate.weekend_min_hours must be non-negative")
	}
	if c.Generate.TrendRampEnd <= 0 || c.Generate.TrendSteadyEnd <= c.Generate.TrendRampEnd || c.Generate.TrendSteadyEnd >= 1 {
		errs = append(errs, "trend boundaries must satisfy 0 < trend_ramp_end < trend_steady_end < 1")
	}
	if c.Generate.TrendRampRate < 0 || c.Generate.TrendSteadyRate < 0 || c.Generate.TrendMatureRate < 0 {
		errs = append(errs, "trend growth rates must be non-negative")
	}
	if c.Generate.OpenHour < 0 || c.Generate.OpenHour > 23 {
		errs = append(errs, "generate.open_hour must be 0-23")
	}
	if c.Generate.CloseHour < 0 || c.Generate.CloseHour > 23 {
		errs = append(errs, "generate.close_hour must be 0-23")
	}
	if c.Generate.CloseHour <= c.Generate.OpenHour {
		errs = append(errs, "generate.close_hour must be after open_hour")
	}
	if c.Generate.SlotMinutes <= 0 || 60%c.Generate.SlotMinutes != 0 {
		errs = append(errs, "generate.slot_minutes must evenly divide an hour")
	}
	if c.Generate.NumWorkers < 0 {
		errs = append(errs, "generate.num_workers must be non-negative")
	}

	// Validate database pool settings
	if c.Database.MaxOpenConns < 1 {
		errs = append(errs, "database.max_open_conns must be >= 1")
	}
	if c.Database.MaxIdleConns < 0 {
		errs = append(errs, "database.max_idle_conns must be >= 0")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		errs = append(errs, "database.max_idle_conns should not exceed max_open_conns")
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation errors:\n  - %s", joinErrors(errs))
	}

	return nil
}

// AsOfDate returns the configured reference date, defaulting to
// today's UTC midnight when unset. Validate must pass first.
func (c *Config) AsOfDate() time.Time {
	if c.Generate.AsOf != "" {
		t, err := time.Parse("2006-01-02", c.Generate.AsOf)
		if err == nil {
			return t
		}
	}
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// LocationIDs expands the location count and prefix into identity
// strings ("store-001" through "store-NNN").
func (c *Config) LocationIDs() []string {
	ids := make([]string, c.Generate.NumLocations)
	for i := range ids {
		ids[i] = fmt.Sprintf("%s-%03d", c.Generate.LocationPrefix, i+1)
	}
	return ids
}

// joinErrors joins error messages with newline and bullet points
func joinErrors(errs []string) string {
	result := errs[0]
	for i := 1; i < len(errs); i++ {
		result += "\n  - " + errs[i]
	}
	return result
}
