package calendar

import (
	"github.com/rmrobinson/transitcal/services/transit/gtfs"
)

// MergeOutcome describes what applying one calendar date did to a catalog.
type MergeOutcome int

const (
	// MergeIgnored means a removal referenced an unknown service and nothing changed.
	MergeIgnored MergeOutcome = iota
	// MergeAdded means a date was added to an existing service (or was already there).
	MergeAdded
	// MergeRemoved means a date was removed from an existing service (or was already absent).
	MergeRemoved
	// MergeCreated means an addition referenced an unknown service, which was created.
	MergeCreated
)

func (mo MergeOutcome) String() string {
	switch mo {
	case MergeAdded:
		return "added"
	case MergeRemoved:
		return "removed"
	case MergeCreated:
		return "created"
	default:
		return "ignored"
	}
}

// MergeException applies one calendar date override to the catalog.
// Services are never deleted, even when left with no days.
func MergeException(c *Catalog, cd *gtfs.CalendarDate) MergeOutcome {
	date := Day(cd.Date.Time)

	if sc, ok := c.Get(cd.ServiceID); ok {
		if cd.ExceptionType == gtfs.ExceptionTypeAdd {
			sc.Dates.Add(date)
			return MergeAdded
		}
		sc.Dates.Remove(date)
		return MergeRemoved
	}

	if cd.ExceptionType != gtfs.ExceptionTypeAdd {
		return MergeIgnored
	}

	// The lookup above missed and nothing else touches the catalog, so the id is absent.
	c.add(NewServiceCalendar(cd.ServiceID, NewDateSet(date)))
	return MergeCreated
}

// MergeExceptions applies the overrides in order.
// Order matters: the first addition for an unknown service is the one that creates it.
func MergeExceptions(c *Catalog, cds []*gtfs.CalendarDate) {
	for _, cd := range cds {
		MergeException(c, cd)
	}
}
