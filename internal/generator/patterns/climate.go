package patterns

// MonthClimate holds climate normals for one month: the mean and
// standard deviation of daily temperature (Celsius) and the
// probability that any given day is rainy.
type MonthClimate struct {
	AvgTempC float64
	TempStdC float64
	RainProb float64
}

// ClimateTable maps month (0-11, January = 0) to climate normals.
// A temperate northern-hemisphere profile by default; deployments in
// other markets supply their own table through configuration.
type ClimateTable struct {
	months [12]MonthClimate
}

// NewClimateTable creates the default temperate climate profile.
func NewClimateTable() *ClimateTable {
	return &ClimateTable{
		months: [12]MonthClimate{
			{AvgTempC: 4, TempStdC: 3, RainProb: 0.35},  // January
			{AvgTempC: 5, TempStdC: 3, RainProb: 0.33},  // February
			{AvgTempC: 9, TempStdC: 4, RainProb: 0.30},  // March
			{AvgTempC: 13, TempStdC: 4, RainProb: 0.28}, // April
			{AvgTempC: 18, TempStdC: 4, RainProb: 0.25}, // May
			{AvgTempC: 23, TempStdC: 4, RainProb: 0.18}, // June
			{AvgTempC: 27, TempStdC: 4, RainProb: 0.12}, // July
			{AvgTempC: 26, TempStdC: 4, RainProb: 0.14}, // August
			{AvgTempC: 21, TempStdC: 4, RainProb: 0.20}, // September
			{AvgTempC: 15, TempStdC: 4, RainProb: 0.26}, // October
			{AvgTempC: 9, TempStdC: 3, RainProb: 0.32},  // November
			{AvgTempC: 5, TempStdC: 3, RainProb: 0.36},  // December
		},
	}
}

// NewCustomClimateTable creates a table from explicit normals
// (January first).
func NewCustomClimateTable(months [12]MonthClimate) *ClimateTable {
	return &ClimateTable{months: months}
}

// neutralClimate is the documented fallback for an out-of-range month
// key: mild, moderately variable, rain on one day in four. Should be
// unreachable with months 0-11 but keeps the generator "always
// producible" rather than strict.
var neutralClimate = MonthClimate{AvgTempC: 15, TempStdC: 4, RainProb: 0.25}

// Month returns the climate normals for a zero-based month index.
func (ct *ClimateTable) Month(month int) MonthClimate {
	if month < 0 || month > 11 {
		return neutralClimate
	}
	return ct.months[month]
}
