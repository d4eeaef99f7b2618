// Package translate compresses a set of service days into a weekly pattern plus exceptions.
package translate

import (
	"sort"
	"time"

	"github.com/rmrobinson/transitcal/services/transit/calendar"
	"github.com/rmrobinson/transitcal/services/transit/gtfs"
)

// Translator picks, for each weekday, whether the service mostly runs on it over the
// range bounding the input, and describes the remaining differences as exceptions.
type Translator struct{}

// New creates a translator.
func New() *Translator {
	return &Translator{}
}

// Compress satisfies calendar.Compressor.
func (t *Translator) Compress(dates []time.Time) calendar.Translation {
	if len(dates) < 1 {
		return calendar.Translation{}
	}

	active := calendar.NewDateSet(dates...)
	ordered := active.Dates()
	first, last := ordered[0], ordered[len(ordered)-1]

	var running, total [7]int
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		total[d.Weekday()]++
		if active.Contains(d) {
			running[d.Weekday()]++
		}
	}

	var days gtfs.WeekdaySet
	for w := time.Sunday; w <= time.Saturday; w++ {
		if running[w] > total[w]-running[w] {
			days = days.With(w)
		}
	}

	if days.Empty() {
		return calendar.Translation{
			Exceptions: additions(ordered),
		}
	}

	// Both bounds exist: every weekday in days has at least one active occurrence in [first, last].
	start := first
	for !days.Has(start.Weekday()) {
		start = start.AddDate(0, 0, 1)
	}
	end := last
	for !days.Has(end.Weekday()) {
		end = end.AddDate(0, 0, -1)
	}

	var exceptions []calendar.Exception
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if days.Has(d.Weekday()) && !active.Contains(d) {
			exceptions = append(exceptions, calendar.Exception{Date: d, Type: gtfs.ExceptionTypeRemove})
		}
	}
	for _, d := range ordered {
		if d.Before(start) || d.After(end) || !days.Has(d.Weekday()) {
			exceptions = append(exceptions, calendar.Exception{Date: d, Type: gtfs.ExceptionTypeAdd})
		}
	}
	sort.SliceStable(exceptions, func(i, j int) bool {
		return exceptions[i].Date.Before(exceptions[j].Date)
	})

	return calendar.Translation{
		OperatingDays: days,
		ValidityPeriod: &calendar.ValidityPeriod{
			Start: start,
			End:   end,
		},
		Exceptions: exceptions,
	}
}

func additions(dates []time.Time) []calendar.Exception {
	ret := make([]calendar.Exception, len(dates))
	for i, d := range dates {
		ret[i] = calendar.Exception{Date: d, Type: gtfs.ExceptionTypeAdd}
	}
	return ret
}
