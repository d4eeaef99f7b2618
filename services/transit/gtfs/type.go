package gtfs

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	// DateFormat is the layout of every date column in a GTFS feed.
	DateFormat = "20060102"
)

var (
	// ErrInvalidBoolField is returned if a boolean field has invalid data
	ErrInvalidBoolField = errors.New("invalid boolean field supplied")
	// ErrInvalidExceptionType is returned if an exception_type field is neither 1 nor 2
	ErrInvalidExceptionType = errors.New("invalid exception type supplied")
	// ErrMissingField is returned if a required field is empty or absent
	ErrMissingField = errors.New("required field missing")
)

// CSVBool is a CSV marshalable boolean value
type CSVBool bool

// MarshalCSV marshals the value into a string format
func (b CSVBool) MarshalCSV() (string, error) {
	if b {
		return "1", nil
	}
	return "0", nil
}

// UnmarshalCSV takes the string representation from a CSV file and attempts to convert it to a bool.
// An empty value is treated as false.
func (b *CSVBool) UnmarshalCSV(csv string) error {
	csv = strings.TrimSpace(csv)
	if len(csv) < 1 {
		*b = false
		return nil
	}

	val, err := strconv.ParseInt(csv, 10, 32)
	if err != nil {
		return ErrInvalidBoolField
	}

	if val == 1 {
		*b = true
		return nil
	} else if val == 0 {
		*b = false
		return nil
	}
	return ErrInvalidBoolField
}

// CSVDate is a GTFS date parsed from CSV
// The zero value means the date is missing, so 00010101 cannot be represented.
type CSVDate struct {
	time.Time
}

// NewCSVDate wraps the calendar day of t, dropping any time of day.
func NewCSVDate(t time.Time) CSVDate {
	y, m, d := t.Date()
	return CSVDate{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// MarshalCSV marshals the value into a string format
func (d CSVDate) MarshalCSV() (string, error) {
	if d.IsZero() {
		return "", ErrMissingField
	}
	return d.Format(DateFormat), nil
}

// UnmarshalCSV takes the string representation from a CSV file and attempts to convert it to a date.
func (d *CSVDate) UnmarshalCSV(csv string) (err error) {
	csv = strings.TrimSpace(csv)
	if len(csv) < 1 {
		return ErrMissingField
	}

	d.Time, err = time.Parse(DateFormat, csv)
	return err
}

// ExceptionType identifies whether a calendar date adds or removes service.
type ExceptionType int

const (
	// ExceptionTypeAdd means service has been added for the date.
	ExceptionTypeAdd ExceptionType = 1
	// ExceptionTypeRemove means service has been removed for the date.
	ExceptionTypeRemove ExceptionType = 2
)

// String presents the caller with a human readable version of this enum.
func (et ExceptionType) String() string {
	switch et {
	case ExceptionTypeAdd:
		return "add"
	case ExceptionTypeRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// MarshalCSV converts this enum into a string for CSV writing.
func (et ExceptionType) MarshalCSV() (string, error) {
	switch et {
	case ExceptionTypeAdd, ExceptionTypeRemove:
		return strconv.Itoa(int(et)), nil
	default:
		return "", ErrInvalidExceptionType
	}
}

// UnmarshalCSV attempts to convert a string value from a CSV file into the enum value.
func (et *ExceptionType) UnmarshalCSV(csv string) error {
	val, err := strconv.ParseInt(strings.TrimSpace(csv), 10, 32)
	if err != nil {
		return ErrInvalidExceptionType
	}

	switch ExceptionType(val) {
	case ExceptionTypeAdd, ExceptionTypeRemove:
		*et = ExceptionType(val)
		return nil
	default:
		return ErrInvalidExceptionType
	}
}
