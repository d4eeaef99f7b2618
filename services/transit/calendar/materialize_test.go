package calendar

import (
	"testing"
	"time"

	"github.com/rmrobinson/transitcal/services/transit/gtfs"
	"github.com/stretchr/testify/assert"
)

// countWeekday counts the occurrences of w in [start, end] arithmetically.
func countWeekday(start, end time.Time, w time.Weekday) int {
	if end.Before(start) {
		return 0
	}
	days := int(end.Sub(start).Hours()/24) + 1
	count := days / 7
	offset := (int(w) - int(start.Weekday()) + 7) % 7
	if offset < days%7 {
		count++
	}
	return count
}

type materializeTest struct {
	name     string
	calendar *gtfs.Calendar
	result   []time.Time
}

var materializeTests = []materializeTest{
	{
		"monday wednesday friday",
		gtfs.NewCalendar("S1", gtfs.NewWeekdaySet(time.Monday, time.Wednesday, time.Friday), day(2020, 1, 1), day(2020, 1, 10)),
		[]time.Time{day(2020, 1, 1), day(2020, 1, 3), day(2020, 1, 6), day(2020, 1, 8), day(2020, 1, 10)},
	},
	{
		"single day range",
		gtfs.NewCalendar("S1", gtfs.AllWeekdays, day(2020, 2, 29), day(2020, 2, 29)),
		[]time.Time{day(2020, 2, 29)},
	},
	{
		"flagged day outside short range",
		gtfs.NewCalendar("S1", gtfs.NewWeekdaySet(time.Sunday), day(2020, 1, 1), day(2020, 1, 3)),
		nil,
	},
	{
		"no weekday flagged",
		gtfs.NewCalendar("S1", 0, day(2020, 1, 1), day(2020, 12, 31)),
		nil,
	},
	{
		"start after end",
		gtfs.NewCalendar("S1", gtfs.AllWeekdays, day(2020, 1, 10), day(2020, 1, 1)),
		nil,
	},
}

func TestMaterialize(t *testing.T) {
	for _, tt := range materializeTests {
		t.Run(tt.name, func(t *testing.T) {
			ds := Materialize(tt.calendar)
			assert.Equal(t, len(tt.result), ds.Len())
			if len(tt.result) > 0 {
				assert.Equal(t, tt.result, ds.Dates())
			}
		})
	}
}

func TestMaterializeMatchesWeekdayCount(t *testing.T) {
	ranges := [][2]time.Time{
		{day(2020, 1, 1), day(2020, 1, 1)},
		{day(2020, 1, 1), day(2020, 1, 6)},
		{day(2019, 12, 30), day(2020, 3, 1)},
		{day(2020, 2, 25), day(2021, 2, 25)},
		{day(2021, 10, 30), day(2021, 11, 2)},
	}
	patterns := []gtfs.WeekdaySet{
		gtfs.AllWeekdays,
		gtfs.NewWeekdaySet(time.Monday),
		gtfs.NewWeekdaySet(time.Saturday, time.Sunday),
		gtfs.NewWeekdaySet(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday),
		gtfs.NewWeekdaySet(time.Tuesday, time.Sunday),
	}

	for _, r := range ranges {
		for _, p := range patterns {
			ds := Materialize(gtfs.NewCalendar("S", p, r[0], r[1]))

			expected := 0
			for _, w := range p.Weekdays() {
				expected += countWeekday(r[0], r[1], w)
			}
			assert.Equal(t, expected, ds.Len(), "pattern %s from %s to %s", p, r[0], r[1])

			for _, d := range ds.Dates() {
				assert.True(t, p.Has(d.Weekday()))
				assert.False(t, d.Before(r[0]))
				assert.False(t, d.After(r[1]))
			}
		}
	}
}
