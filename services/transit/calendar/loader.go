package calendar

import (
	"errors"
	"fmt"

	"github.com/rmrobinson/transitcal/services/transit/gtfs"
	"go.uber.org/zap"
)

var (
	// ErrNoCalendarSource is returned when a dataset has neither calendar file.
	ErrNoCalendarSource = errors.New("neither calendar.txt nor calendar_dates.txt found")
)

// Loader builds the service calendar catalog of a dataset.
type Loader struct {
	logger  *zap.Logger
	metrics *Metrics
}

// NewLoader creates a loader. A nil metrics value disables metric registration.
func NewLoader(logger *zap.Logger, metrics *Metrics) *Loader {
	if metrics == nil {
		metrics = NewMetrics("", nil)
	}
	return &Loader{
		logger:  logger,
		metrics: metrics,
	}
}

// Load expands calendar.txt and applies calendar_dates.txt on top of it, in file order.
// Either file may be missing, but not both. Any unreadable or malformed row fails the whole load.
func (l *Loader) Load(src gtfs.Source) (*Catalog, error) {
	hasCalendar := src.Has(gtfs.CalendarFile)
	hasCalendarDates := src.Has(gtfs.CalendarDatesFile)
	if !hasCalendar && !hasCalendarDates {
		return nil, ErrNoCalendarSource
	}

	catalog := NewCatalog()

	if hasCalendar {
		rows, err := l.readCalendars(src)
		if err != nil {
			return nil, err
		}

		err = l.expand(catalog, rows)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", src.Location(gtfs.CalendarFile), err)
		}
	} else {
		l.logger.Info("skipping file",
			zap.String("file_name", src.Location(gtfs.CalendarFile)),
		)
	}

	if hasCalendarDates {
		rows, err := l.readCalendarDates(src)
		if err != nil {
			return nil, err
		}

		l.merge(catalog, rows)
	} else {
		l.logger.Info("skipping file",
			zap.String("file_name", src.Location(gtfs.CalendarDatesFile)),
		)
	}

	return catalog, nil
}

// LoadInto loads the catalog and hands it to sink once complete.
// The sink is left untouched if loading fails.
func (l *Loader) LoadInto(src gtfs.Source, sink CatalogSink) error {
	catalog, err := l.Load(src)
	if err != nil {
		return err
	}

	sink.SetCalendars(catalog)
	return nil
}

func (l *Loader) readCalendars(src gtfs.Source) ([]*gtfs.Calendar, error) {
	location := src.Location(gtfs.CalendarFile)

	f, err := src.Open(gtfs.CalendarFile)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", location, err)
	}
	defer f.Close()

	l.logger.Info("reading file",
		zap.String("file_name", location),
	)

	rows, err := gtfs.ReadCalendars(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", location, err)
	}
	return rows, nil
}

func (l *Loader) readCalendarDates(src gtfs.Source) ([]*gtfs.CalendarDate, error) {
	location := src.Location(gtfs.CalendarDatesFile)

	f, err := src.Open(gtfs.CalendarDatesFile)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", location, err)
	}
	defer f.Close()

	l.logger.Info("reading file",
		zap.String("file_name", location),
	)

	rows, err := gtfs.ReadCalendarDates(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", location, err)
	}
	return rows, nil
}

func (l *Loader) expand(catalog *Catalog, rows []*gtfs.Calendar) error {
	for _, row := range rows {
		dates := Materialize(row)
		if dates.Empty() {
			l.logger.Debug("weekly pattern covers no day, discarding",
				zap.String("service_id", row.ServiceID),
				zap.Stringer("weekdays", row.Weekdays()),
				zap.Time("start_date", row.StartDate.Time),
				zap.Time("end_date", row.EndDate.Time),
			)
			l.metrics.EmptyPatternsDiscarded.Inc()
			continue
		}

		err := catalog.Insert(NewServiceCalendar(row.ServiceID, dates))
		if err != nil {
			return fmt.Errorf("service %s: %w", row.ServiceID, err)
		}
		l.metrics.PatternsExpanded.Inc()
	}
	return nil
}

func (l *Loader) merge(catalog *Catalog, rows []*gtfs.CalendarDate) {
	for _, row := range rows {
		outcome := MergeException(catalog, row)
		if outcome == MergeIgnored {
			l.logger.Debug("removal for unknown service ignored",
				zap.String("service_id", row.ServiceID),
				zap.Time("date", row.Date.Time),
			)
		}
		l.metrics.ExceptionsMerged.WithLabelValues(outcome.String()).Inc()
	}
}
