package gtfs

import (
	"fmt"
	"time"
)

// Calendar is a set of days that the specified service is available.
type Calendar struct {
	ServiceID string  `csv:"service_id"`
	Monday    CSVBool `csv:"monday"`
	Tuesday   CSVBool `csv:"tuesday"`
	Wednesday CSVBool `csv:"wednesday"`
	Thursday  CSVBool `csv:"thursday"`
	Friday    CSVBool `csv:"friday"`
	Saturday  CSVBool `csv:"saturday"`
	Sunday    CSVBool `csv:"sunday"`
	StartDate CSVDate `csv:"start_date"`
	EndDate   CSVDate `csv:"end_date"`
}

// NewCalendar creates a calendar row for the supplied days and inclusive date range.
func NewCalendar(serviceID string, days WeekdaySet, start, end time.Time) *Calendar {
	c := &Calendar{
		ServiceID: serviceID,
		StartDate: NewCSVDate(start),
		EndDate:   NewCSVDate(end),
	}
	c.SetWeekdays(days)
	return c
}

// Weekdays returns the days of the week this service runs on.
func (c *Calendar) Weekdays() WeekdaySet {
	var ws WeekdaySet
	for _, day := range calendarOrder {
		if *c.weekday(day) {
			ws = ws.With(day)
		}
	}
	return ws
}

// SetWeekdays replaces the seven weekday flags with the contents of days.
func (c *Calendar) SetWeekdays(days WeekdaySet) {
	for _, day := range calendarOrder {
		*c.weekday(day) = CSVBool(days.Has(day))
	}
}

func (c *Calendar) weekday(day time.Weekday) *CSVBool {
	switch day {
	case time.Monday:
		return &c.Monday
	case time.Tuesday:
		return &c.Tuesday
	case time.Wednesday:
		return &c.Wednesday
	case time.Thursday:
		return &c.Thursday
	case time.Friday:
		return &c.Friday
	case time.Saturday:
		return &c.Saturday
	default:
		return &c.Sunday
	}
}

// Validate checks that the fields the CSV decoder cannot enforce are present.
func (c *Calendar) Validate() error {
	if len(c.ServiceID) < 1 {
		return fmt.Errorf("service_id: %w", ErrMissingField)
	} else if c.StartDate.IsZero() {
		return fmt.Errorf("start_date of service %s: %w", c.ServiceID, ErrMissingField)
	} else if c.EndDate.IsZero() {
		return fmt.Errorf("end_date of service %s: %w", c.ServiceID, ErrMissingField)
	}
	return nil
}
