package calendar

import (
	"github.com/rmrobinson/transitcal/services/transit/gtfs"
)

// Materialize expands a weekly pattern into the days it covers: every day of the
// inclusive range whose weekday is flagged. A range ending before it starts covers nothing.
func Materialize(c *gtfs.Calendar) DateSet {
	var ds DateSet

	weekdays := c.Weekdays()
	if weekdays.Empty() {
		return ds
	}

	end := Day(c.EndDate.Time)
	for d := Day(c.StartDate.Time); !d.After(end); d = d.AddDate(0, 0, 1) {
		if weekdays.Has(d.Weekday()) {
			ds.Add(d)
		}
	}
	return ds
}
