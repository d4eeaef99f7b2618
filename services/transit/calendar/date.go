package calendar

import (
	"sort"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// Day truncates t to the calendar day it falls on, as midnight UTC.
// All dates stored in a DateSet or exchanged with a Compressor are in this form.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayNumber(t time.Time) int64 {
	return Day(t).Unix() / secondsPerDay
}

func dayFromNumber(n int64) time.Time {
	return time.Unix(n*secondsPerDay, 0).UTC()
}

// DateSet is a set of distinct calendar days. The zero value is an empty set.
type DateSet struct {
	days map[int64]struct{}
}

// NewDateSet creates a set holding the supplied days.
func NewDateSet(dates ...time.Time) DateSet {
	var ds DateSet
	for _, d := range dates {
		ds.Add(d)
	}
	return ds
}

// Add inserts the day of d, reporting whether it was absent.
func (ds *DateSet) Add(d time.Time) bool {
	if ds.days == nil {
		ds.days = map[int64]struct{}{}
	}

	n := dayNumber(d)
	if _, ok := ds.days[n]; ok {
		return false
	}
	ds.days[n] = struct{}{}
	return true
}

// Remove deletes the day of d, reporting whether it was present.
func (ds *DateSet) Remove(d time.Time) bool {
	n := dayNumber(d)
	if _, ok := ds.days[n]; !ok {
		return false
	}
	delete(ds.days, n)
	return true
}

// Contains reports whether the day of d is in the set.
func (ds *DateSet) Contains(d time.Time) bool {
	_, ok := ds.days[dayNumber(d)]
	return ok
}

// Len is the number of days in the set.
func (ds *DateSet) Len() int {
	return len(ds.days)
}

// Empty reports whether the set holds no day.
func (ds *DateSet) Empty() bool {
	return len(ds.days) == 0
}

// Dates returns the days of the set in ascending order.
func (ds *DateSet) Dates() []time.Time {
	numbers := make([]int64, 0, len(ds.days))
	for n := range ds.days {
		numbers = append(numbers, n)
	}
	sort.Slice(numbers, func(i, j int) bool {
		return numbers[i] < numbers[j]
	})

	ret := make([]time.Time, len(numbers))
	for i, n := range numbers {
		ret[i] = dayFromNumber(n)
	}
	return ret
}
