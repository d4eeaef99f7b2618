package calendar

import (
	"fmt"
	"path/filepath"

	"github.com/rmrobinson/transitcal/services/transit/gtfs"
	"go.uber.org/zap"
)

// Writer converts a catalog back into calendar.txt and calendar_dates.txt.
type Writer struct {
	logger     *zap.Logger
	compressor Compressor
	metrics    *Metrics
}

// NewWriter creates a writer using the supplied compressor. A nil metrics value disables metric registration.
func NewWriter(logger *zap.Logger, compressor Compressor, metrics *Metrics) *Writer {
	if metrics == nil {
		metrics = NewMetrics("", nil)
	}
	return &Writer{
		logger:     logger,
		compressor: compressor,
		metrics:    metrics,
	}
}

// Translate compresses every service of the catalog, in catalog order, into rows.
// A service whose pattern comes back without a validity period loses its weekly row but keeps its exceptions.
func (w *Writer) Translate(catalog *Catalog) ([]*gtfs.Calendar, []*gtfs.CalendarDate) {
	var calendars []*gtfs.Calendar
	var calendarDates []*gtfs.CalendarDate

	for _, sc := range catalog.Services() {
		translation := w.compressor.Compress(sc.Dates.Dates())

		if !translation.OperatingDays.Empty() {
			if translation.ValidityPeriod == nil {
				w.logger.Warn("validity period not found, skipping weekly pattern",
					zap.String("service_id", sc.ID),
					zap.Stringer("weekdays", translation.OperatingDays),
				)
				w.metrics.MissingValidityPeriods.Inc()
			} else {
				calendars = append(calendars, gtfs.NewCalendar(
					sc.ID,
					translation.OperatingDays,
					translation.ValidityPeriod.Start,
					translation.ValidityPeriod.End,
				))
			}
		}

		for _, e := range translation.Exceptions {
			calendarDates = append(calendarDates, gtfs.NewCalendarDate(sc.ID, e.Date, e.Type))
		}
	}

	return calendars, calendarDates
}

// Write translates the catalog and writes the resulting files into dir.
// A file is only written when it has at least one row, and each file is written completely or not at all.
func (w *Writer) Write(dir string, catalog *Catalog) error {
	calendars, calendarDates := w.Translate(catalog)

	if len(calendarDates) > 0 {
		err := w.writeFile(filepath.Join(dir, gtfs.CalendarDatesFile), calendarDates, len(calendarDates))
		if err != nil {
			return err
		}
	}

	if len(calendars) > 0 {
		err := w.writeFile(filepath.Join(dir, gtfs.CalendarFile), calendars, len(calendars))
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeFile(path string, rows interface{}, count int) error {
	w.logger.Info("writing file",
		zap.String("file_name", path),
		zap.Int("rows", count),
	)

	if err := gtfs.WriteTable(path, rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	w.metrics.RowsWritten.WithLabelValues(filepath.Base(path)).Add(float64(count))
	return nil
}
