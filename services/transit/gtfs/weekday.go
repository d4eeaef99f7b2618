package gtfs

import (
	"strings"
	"time"
)

// WeekdaySet is a set of days of the week, one bit per time.Weekday.
type WeekdaySet uint8

// AllWeekdays contains every day of the week.
const AllWeekdays WeekdaySet = 1<<7 - 1

// calendarOrder is the column order of calendar.txt.
var calendarOrder = [7]time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// NewWeekdaySet builds a set containing the supplied days.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var ws WeekdaySet
	for _, day := range days {
		ws = ws.With(day)
	}
	return ws
}

// With returns a copy of the set that also contains day.
func (ws WeekdaySet) With(day time.Weekday) WeekdaySet {
	return ws | 1<<uint(day)
}

// Has reports whether day is part of the set.
func (ws WeekdaySet) Has(day time.Weekday) bool {
	return ws&(1<<uint(day)) != 0
}

// Empty reports whether no day is part of the set.
func (ws WeekdaySet) Empty() bool {
	return ws&AllWeekdays == 0
}

// Weekdays lists the members of the set, Monday first.
func (ws WeekdaySet) Weekdays() []time.Weekday {
	var ret []time.Weekday
	for _, day := range calendarOrder {
		if ws.Has(day) {
			ret = append(ret, day)
		}
	}
	return ret
}

func (ws WeekdaySet) String() string {
	var names []string
	for _, day := range ws.Weekdays() {
		names = append(names, day.String()[:3])
	}
	return "{" + strings.Join(names, ",") + "}"
}
