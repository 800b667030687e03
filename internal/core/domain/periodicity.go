package domain

// Global invoice periodicity codes.
const (
	PeriodicityDaily       = "01"
	PeriodicityWeekly      = "02"
	PeriodicityFortnightly = "03"
	PeriodicityMonthly     = "04"
	PeriodicityBimonthly   = "05"
)

// DefaultPeriodicity is used by the global invoice wizard when none is given.
const DefaultPeriodicity = PeriodicityMonthly

// IsValidPeriodicity reports whether code is a known periodicity.
func IsValidPeriodicity(code string) bool {
	switch code {
	case PeriodicityDaily, PeriodicityWeekly, PeriodicityFortnightly, PeriodicityMonthly, PeriodicityBimonthly:
		return true
	}
	return false
}
