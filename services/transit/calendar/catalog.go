package calendar

import (
	"errors"
)

var (
	// ErrDuplicateService is returned when a service id is inserted twice into a catalog.
	ErrDuplicateService = errors.New("duplicate service id")
)

// ServiceCalendar is the canonical set of days a service operates on.
type ServiceCalendar struct {
	ID    string
	Dates DateSet
}

// NewServiceCalendar creates a service operating on the supplied days.
// The calendar takes ownership of dates.
func NewServiceCalendar(id string, dates DateSet) *ServiceCalendar {
	return &ServiceCalendar{
		ID:    id,
		Dates: dates,
	}
}

// Catalog maps service ids to their calendars.
// Ids are unique and iteration follows insertion order.
type Catalog struct {
	services []*ServiceCalendar
	index    map[string]int
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		index: map[string]int{},
	}
}

// Get looks up the calendar of a service.
func (c *Catalog) Get(id string) (*ServiceCalendar, bool) {
	i, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return c.services[i], true
}

// Insert appends a calendar, failing if its id is already present.
func (c *Catalog) Insert(sc *ServiceCalendar) error {
	if _, ok := c.index[sc.ID]; ok {
		return ErrDuplicateService
	}
	c.add(sc)
	return nil
}

// add appends sc without checking for an existing id.
// Callers must have observed a lookup miss for sc.ID on this catalog.
func (c *Catalog) add(sc *ServiceCalendar) {
	c.index[sc.ID] = len(c.services)
	c.services = append(c.services, sc)
}

// Services lists every calendar in insertion order.
func (c *Catalog) Services() []*ServiceCalendar {
	ret := make([]*ServiceCalendar, len(c.services))
	copy(ret, c.services)
	return ret
}

// Len is the number of services in the catalog.
func (c *Catalog) Len() int {
	return len(c.services)
}

// CatalogSink receives a finished catalog from the loader.
type CatalogSink interface {
	SetCalendars(c *Catalog)
}
