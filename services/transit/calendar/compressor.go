package calendar

import (
	"time"

	"github.com/rmrobinson/transitcal/services/transit/gtfs"
)

// ValidityPeriod is the inclusive range a weekly pattern applies to.
type ValidityPeriod struct {
	Start time.Time
	End   time.Time
}

// Exception is a single day that differs from the weekly pattern.
type Exception struct {
	Date time.Time
	Type gtfs.ExceptionType
}

// Translation is a compressed form of a set of days.
// ValidityPeriod is only meaningful when OperatingDays is not empty.
type Translation struct {
	OperatingDays  gtfs.WeekdaySet
	ValidityPeriod *ValidityPeriod
	Exceptions     []Exception
}

// Compressor reduces an ascending list of days to a weekly pattern and the exceptions
// needed to reproduce the list exactly. Implementations must be deterministic.
type Compressor interface {
	Compress(dates []time.Time) Translation
}
