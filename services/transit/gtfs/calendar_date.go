package gtfs

import (
	"fmt"
	"time"
)

// CalendarDate represents a service override on the specified date.
type CalendarDate struct {
	ServiceID     string        `csv:"service_id"`
	Date          CSVDate       `csv:"date"`
	ExceptionType ExceptionType `csv:"exception_type"`
}

// NewCalendarDate creates an override row for the supplied service and day.
func NewCalendarDate(serviceID string, date time.Time, et ExceptionType) *CalendarDate {
	return &CalendarDate{
		ServiceID:     serviceID,
		Date:          NewCSVDate(date),
		ExceptionType: et,
	}
}

// Validate checks that the fields the CSV decoder cannot enforce are present.
func (cd *CalendarDate) Validate() error {
	if len(cd.ServiceID) < 1 {
		return fmt.Errorf("service_id: %w", ErrMissingField)
	} else if cd.Date.IsZero() {
		return fmt.Errorf("date of service %s: %w", cd.ServiceID, ErrMissingField)
	} else if cd.ExceptionType != ExceptionTypeAdd && cd.ExceptionType != ExceptionTypeRemove {
		return fmt.Errorf("exception_type of service %s: %w", cd.ServiceID, ErrInvalidExceptionType)
	}
	return nil
}
