package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDay(t *testing.T) {
	loc := time.FixedZone("CET", 60*60)
	assert.Equal(t, day(2020, 3, 1), Day(time.Date(2020, time.March, 1, 23, 59, 0, 0, loc)))
	assert.Equal(t, day(1969, 12, 31), Day(time.Date(1969, time.December, 31, 12, 0, 0, 0, time.UTC)))
}

func TestDateSet(t *testing.T) {
	var ds DateSet
	assert.True(t, ds.Empty())
	assert.False(t, ds.Contains(day(2020, 1, 1)))
	assert.False(t, ds.Remove(day(2020, 1, 1)), "removing from the zero value is a no-op")

	assert.True(t, ds.Add(day(2020, 1, 3)))
	assert.True(t, ds.Add(day(2019, 12, 31)))
	assert.True(t, ds.Add(time.Date(2020, time.January, 1, 8, 30, 0, 0, time.UTC)))
	assert.False(t, ds.Add(day(2020, 1, 3)), "days are distinct")

	assert.Equal(t, 3, ds.Len())
	assert.True(t, ds.Contains(day(2020, 1, 1)))
	assert.Equal(t, []time.Time{day(2019, 12, 31), day(2020, 1, 1), day(2020, 1, 3)}, ds.Dates())

	assert.True(t, ds.Remove(day(2020, 1, 1)))
	assert.False(t, ds.Remove(day(2020, 1, 1)))
	assert.Equal(t, []time.Time{day(2019, 12, 31), day(2020, 1, 3)}, ds.Dates())
}

func TestNewDateSet(t *testing.T) {
	ds := NewDateSet(day(2020, 2, 1), day(2020, 2, 1), day(1960, 5, 4))
	assert.Equal(t, []time.Time{day(1960, 5, 4), day(2020, 2, 1)}, ds.Dates())
}
