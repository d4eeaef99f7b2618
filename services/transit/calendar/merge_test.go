package calendar

import (
	"testing"
	"time"

	"github.com/rmrobinson/transitcal/services/transit/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleCatalog(t *testing.T) *Catalog {
	t.Helper()

	c := NewCatalog()
	s1 := gtfs.NewCalendar("S1", gtfs.NewWeekdaySet(time.Monday, time.Wednesday, time.Friday), day(2020, 1, 1), day(2020, 1, 10))
	require.NoError(t, c.Insert(NewServiceCalendar("S1", Materialize(s1))))
	return c
}

func dates(t *testing.T, c *Catalog, id string) []time.Time {
	t.Helper()

	sc, ok := c.Get(id)
	require.True(t, ok, "service %s missing", id)
	return sc.Dates.Dates()
}

type mergeExceptionTest struct {
	name    string
	in      *gtfs.CalendarDate
	outcome MergeOutcome
	ids     []string
	s1      []time.Time
}

var mergeExceptionTests = []mergeExceptionTest{
	{
		"remove existing date",
		gtfs.NewCalendarDate("S1", day(2020, 1, 8), gtfs.ExceptionTypeRemove),
		MergeRemoved,
		[]string{"S1"},
		[]time.Time{day(2020, 1, 1), day(2020, 1, 3), day(2020, 1, 6), day(2020, 1, 10)},
	},
	{
		"remove absent date",
		gtfs.NewCalendarDate("S1", day(2020, 1, 7), gtfs.ExceptionTypeRemove),
		MergeRemoved,
		[]string{"S1"},
		[]time.Time{day(2020, 1, 1), day(2020, 1, 3), day(2020, 1, 6), day(2020, 1, 8), day(2020, 1, 10)},
	},
	{
		"add date outside validity range",
		gtfs.NewCalendarDate("S1", day(2021, 6, 1), gtfs.ExceptionTypeAdd),
		MergeAdded,
		[]string{"S1"},
		[]time.Time{day(2020, 1, 1), day(2020, 1, 3), day(2020, 1, 6), day(2020, 1, 8), day(2020, 1, 10), day(2021, 6, 1)},
	},
	{
		"add present date",
		gtfs.NewCalendarDate("S1", day(2020, 1, 3), gtfs.ExceptionTypeAdd),
		MergeAdded,
		[]string{"S1"},
		[]time.Time{day(2020, 1, 1), day(2020, 1, 3), day(2020, 1, 6), day(2020, 1, 8), day(2020, 1, 10)},
	},
	{
		"add for unknown service creates it",
		gtfs.NewCalendarDate("S2", day(2020, 2, 1), gtfs.ExceptionTypeAdd),
		MergeCreated,
		[]string{"S1", "S2"},
		[]time.Time{day(2020, 1, 1), day(2020, 1, 3), day(2020, 1, 6), day(2020, 1, 8), day(2020, 1, 10)},
	},
	{
		"remove for unknown service is ignored",
		gtfs.NewCalendarDate("S3", day(2020, 1, 1), gtfs.ExceptionTypeRemove),
		MergeIgnored,
		[]string{"S1"},
		[]time.Time{day(2020, 1, 1), day(2020, 1, 3), day(2020, 1, 6), day(2020, 1, 8), day(2020, 1, 10)},
	},
}

func TestMergeException(t *testing.T) {
	for _, tt := range mergeExceptionTests {
		t.Run(tt.name, func(t *testing.T) {
			c := exampleCatalog(t)
			assert.Equal(t, tt.outcome, MergeException(c, tt.in))
			assert.Equal(t, tt.ids, serviceIDs(c))
			assert.Equal(t, tt.s1, dates(t, c, "S1"))
		})
	}
}

func TestMergeExceptionCreatesSingleDayService(t *testing.T) {
	c := exampleCatalog(t)
	MergeException(c, gtfs.NewCalendarDate("S2", day(2020, 2, 1), gtfs.ExceptionTypeAdd))
	assert.Equal(t, []time.Time{day(2020, 2, 1)}, dates(t, c, "S2"))
}

func TestMergeExceptionsOrder(t *testing.T) {
	c := NewCatalog()
	MergeExceptions(c, []*gtfs.CalendarDate{
		gtfs.NewCalendarDate("N", day(2020, 5, 2), gtfs.ExceptionTypeRemove),
		gtfs.NewCalendarDate("N", day(2020, 5, 1), gtfs.ExceptionTypeAdd),
		gtfs.NewCalendarDate("M", day(2020, 5, 1), gtfs.ExceptionTypeAdd),
		gtfs.NewCalendarDate("N", day(2020, 5, 2), gtfs.ExceptionTypeAdd),
		gtfs.NewCalendarDate("N", day(2020, 5, 1), gtfs.ExceptionTypeRemove),
	})

	assert.Equal(t, []string{"N", "M"}, serviceIDs(c))
	assert.Equal(t, []time.Time{day(2020, 5, 2)}, dates(t, c, "N"))
	assert.Equal(t, []time.Time{day(2020, 5, 1)}, dates(t, c, "M"))
}

func TestMergeExceptionsKeepsEmptiedService(t *testing.T) {
	c := NewCatalog()
	MergeExceptions(c, []*gtfs.CalendarDate{
		gtfs.NewCalendarDate("X", day(2020, 5, 1), gtfs.ExceptionTypeAdd),
		gtfs.NewCalendarDate("X", day(2020, 5, 1), gtfs.ExceptionTypeRemove),
	})

	sc, ok := c.Get("X")
	require.True(t, ok)
	assert.True(t, sc.Dates.Empty())
}
