package transit

import (
	"time"

	"github.com/rmrobinson/transitcal/services/transit/calendar"
	"go.uber.org/zap"
)

// Feed represents the static schedule of a single feed.
// It receives the service calendars once they have been loaded.
type Feed struct {
	logger *zap.Logger

	calendars *calendar.Catalog
}

// NewFeed creates a new, empty feed.
func NewFeed(logger *zap.Logger) *Feed {
	return &Feed{
		logger:    logger,
		calendars: calendar.NewCatalog(),
	}
}

// SetCalendars replaces the service calendars of this feed.
func (f *Feed) SetCalendars(c *calendar.Catalog) {
	f.logger.Debug("installing service calendars",
		zap.Int("service_count", c.Len()),
	)
	f.calendars = c
}

// Calendars returns the service calendars loaded into this feed.
func (f *Feed) Calendars() *calendar.Catalog {
	return f.calendars
}

// IsServiceActive reports whether the service runs on the day of date.
// Unknown services never run.
func (f *Feed) IsServiceActive(serviceID string, date time.Time) bool {
	sc, ok := f.calendars.Get(serviceID)
	if !ok {
		return false
	}
	return sc.Dates.Contains(date)
}

// ServicesActiveOn lists, in catalog order, the services running on the day of date.
func (f *Feed) ServicesActiveOn(date time.Time) []string {
	var ret []string
	for _, sc := range f.calendars.Services() {
		if sc.Dates.Contains(date) {
			ret = append(ret, sc.ID)
		}
	}
	return ret
}
