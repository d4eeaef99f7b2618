package gtfs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type csvBoolTest struct {
	name   string
	in     string
	result CSVBool
	err    error
}

var csvBoolTests = []csvBoolTest{
	{"one is true", "1", true, nil},
	{"zero is false", "0", false, nil},
	{"padded value", " 1 ", true, nil},
	{"empty is false", "", false, nil},
	{"two is invalid", "2", false, ErrInvalidBoolField},
	{"text is invalid", "yes", false, ErrInvalidBoolField},
}

func TestCSVBoolUnmarshal(t *testing.T) {
	for _, tt := range csvBoolTests {
		t.Run(tt.name, func(t *testing.T) {
			var b CSVBool
			err := b.UnmarshalCSV(tt.in)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.result, b)
		})
	}
}

func TestCSVBoolRoundTrip(t *testing.T) {
	for _, b := range []CSVBool{true, false} {
		text, err := b.MarshalCSV()
		require.NoError(t, err)

		var decoded CSVBool
		require.NoError(t, decoded.UnmarshalCSV(text))
		assert.Equal(t, b, decoded)
	}
}

func TestCSVDate(t *testing.T) {
	var d CSVDate
	require.NoError(t, d.UnmarshalCSV("20200229"))
	assert.Equal(t, time.Date(2020, time.February, 29, 0, 0, 0, 0, time.UTC), d.Time)

	text, err := d.MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "20200229", text)

	assert.Error(t, d.UnmarshalCSV("20200230"))
	assert.Error(t, d.UnmarshalCSV("2020-02-01"))
	assert.ErrorIs(t, d.UnmarshalCSV(" "), ErrMissingField)

	_, err = CSVDate{}.MarshalCSV()
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestNewCSVDateDropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("EST", -5*60*60)
	d := NewCSVDate(time.Date(2021, time.March, 14, 23, 30, 0, 0, loc))
	assert.Equal(t, time.Date(2021, time.March, 14, 0, 0, 0, 0, time.UTC), d.Time)
}

type exceptionTypeTest struct {
	name   string
	in     string
	result ExceptionType
	err    bool
}

var exceptionTypeTests = []exceptionTypeTest{
	{"add", "1", ExceptionTypeAdd, false},
	{"remove", "2", ExceptionTypeRemove, false},
	{"padded", " 2", ExceptionTypeRemove, false},
	{"zero", "0", 0, true},
	{"three", "3", 0, true},
	{"empty", "", 0, true},
	{"text", "add", 0, true},
}

func TestExceptionTypeUnmarshal(t *testing.T) {
	for _, tt := range exceptionTypeTests {
		t.Run(tt.name, func(t *testing.T) {
			var et ExceptionType
			err := et.UnmarshalCSV(tt.in)
			if tt.err {
				assert.ErrorIs(t, err, ErrInvalidExceptionType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.result, et)
		})
	}
}

func TestExceptionTypeMarshal(t *testing.T) {
	text, err := ExceptionTypeAdd.MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "1", text)

	text, err = ExceptionTypeRemove.MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "2", text)

	_, err = ExceptionType(7).MarshalCSV()
	assert.ErrorIs(t, err, ErrInvalidExceptionType)
	assert.Equal(t, "unknown", ExceptionType(7).String())
}
