package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rmrobinson/transitcal/services/transit/calendar"
	"github.com/rmrobinson/transitcal/services/transit/gtfs"
	"go.uber.org/zap"

	// Registers the sqlite3 driver used by Open.
	_ "github.com/mattn/go-sqlite3"
)

var (
	// ErrImportNotFound is returned when loading an import id that was never saved.
	ErrImportNotFound = errors.New("calendar import not found")
	// ErrNoImports is returned when asking for the latest import of an empty store.
	ErrNoImports = errors.New("no calendar import saved")
)

const (
	schema = `
CREATE TABLE IF NOT EXISTS calendar_import (
	id TEXT PRIMARY KEY,
	created_at INTEGER NOT NULL,
	service_count INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS service_calendar (
	import_id TEXT NOT NULL REFERENCES calendar_import(id),
	position INTEGER NOT NULL,
	service_id TEXT NOT NULL,
	PRIMARY KEY (import_id, service_id)
);
CREATE TABLE IF NOT EXISTS service_date (
	import_id TEXT NOT NULL,
	service_id TEXT NOT NULL,
	date TEXT NOT NULL,
	PRIMARY KEY (import_id, service_id, date)
);`

	insertImportQuery   = `INSERT INTO calendar_import(id, created_at, service_count) VALUES (?, ?, ?)`
	insertServiceQuery  = `INSERT INTO service_calendar(import_id, position, service_id) VALUES (?, ?, ?)`
	insertDateQuery     = `INSERT INTO service_date(import_id, service_id, date) VALUES (?, ?, ?)`
	selectImportQuery   = `SELECT id, created_at, service_count FROM calendar_import WHERE id=?;`
	selectLatestQuery   = `SELECT id, created_at, service_count FROM calendar_import ORDER BY created_at DESC, rowid DESC LIMIT 1;`
	selectServicesQuery = `SELECT position, service_id FROM service_calendar WHERE import_id=? ORDER BY position;`
	selectDatesQuery    = `SELECT service_id, date FROM service_date WHERE import_id=? ORDER BY service_id, date;`
)

// Import describes one saved catalog.
type Import struct {
	ID           string `db:"id"`
	CreatedAt    int64  `db:"created_at"`
	ServiceCount int    `db:"service_count"`
}

type serviceRow struct {
	Position  int    `db:"position"`
	ServiceID string `db:"service_id"`
}

type dateRow struct {
	ServiceID string `db:"service_id"`
	Date      string `db:"date"`
}

// SQLStore keeps service calendar catalogs in a SQL DB, one import per saved catalog.
type SQLStore struct {
	logger *zap.Logger
	db     *sqlx.DB
}

// Open connects to the sqlite database at path and creates the schema if required.
func Open(logger *zap.Logger, path string) (*SQLStore, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps in-memory databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	s, err := NewSQLStore(logger, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLStore creates a store on top of an existing connection, creating the schema if required.
func NewSQLStore(logger *zap.Logger, db *sqlx.DB) (*SQLStore, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &SQLStore{
		logger: logger,
		db:     db,
	}, nil
}

// Close releases the underlying DB.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// SaveCatalog stores the catalog as a new import and returns its id.
func (s *SQLStore) SaveCatalog(ctx context.Context, c *calendar.Catalog) (string, error) {
	id := uuid.New().String()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, insertImportQuery, id, time.Now().Unix(), c.Len())
	if err != nil {
		s.logger.Info("unable to save import",
			zap.String("import_id", id),
			zap.Error(err),
		)
		return "", err
	}

	serviceStmt, err := tx.PreparexContext(ctx, insertServiceQuery)
	if err != nil {
		return "", err
	}
	defer serviceStmt.Close()

	dateStmt, err := tx.PreparexContext(ctx, insertDateQuery)
	if err != nil {
		return "", err
	}
	defer dateStmt.Close()

	for position, sc := range c.Services() {
		_, err = serviceStmt.ExecContext(ctx, id, position, sc.ID)
		if err != nil {
			s.logger.Info("unable to save service",
				zap.String("import_id", id),
				zap.String("service_id", sc.ID),
				zap.Error(err),
			)
			return "", err
		}

		for _, d := range sc.Dates.Dates() {
			_, err = dateStmt.ExecContext(ctx, id, sc.ID, d.Format(gtfs.DateFormat))
			if err != nil {
				return "", fmt.Errorf("saving date of service %s: %w", sc.ID, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return "", err
	}

	s.logger.Debug("saved calendar import",
		zap.String("import_id", id),
		zap.Int("service_count", c.Len()),
	)
	return id, nil
}

// GetImport returns the description of a saved import.
func (s *SQLStore) GetImport(ctx context.Context, importID string) (*Import, error) {
	imp := &Import{}
	err := s.db.GetContext(ctx, imp, selectImportQuery, importID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrImportNotFound
	} else if err != nil {
		return nil, err
	}
	return imp, nil
}

// LatestImport returns the most recently saved import.
func (s *SQLStore) LatestImport(ctx context.Context) (*Import, error) {
	imp := &Import{}
	err := s.db.GetContext(ctx, imp, selectLatestQuery)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoImports
	} else if err != nil {
		return nil, err
	}
	return imp, nil
}

// LoadCatalog rebuilds a saved catalog, services in their original order.
func (s *SQLStore) LoadCatalog(ctx context.Context, importID string) (*calendar.Catalog, error) {
	if _, err := s.GetImport(ctx, importID); err != nil {
		return nil, err
	}

	var services []serviceRow
	if err := s.db.SelectContext(ctx, &services, selectServicesQuery, importID); err != nil {
		return nil, err
	}

	var dates []dateRow
	if err := s.db.SelectContext(ctx, &dates, selectDatesQuery, importID); err != nil {
		return nil, err
	}

	c := calendar.NewCatalog()
	for _, row := range services {
		if err := c.Insert(calendar.NewServiceCalendar(row.ServiceID, calendar.DateSet{})); err != nil {
			return nil, fmt.Errorf("service %s: %w", row.ServiceID, err)
		}
	}

	for _, row := range dates {
		sc, ok := c.Get(row.ServiceID)
		if !ok {
			s.logger.Info("date saved for unknown service, skipping",
				zap.String("import_id", importID),
				zap.String("service_id", row.ServiceID),
			)
			continue
		}

		d, err := time.Parse(gtfs.DateFormat, row.Date)
		if err != nil {
			return nil, fmt.Errorf("date of service %s: %w", row.ServiceID, err)
		}
		sc.Dates.Add(d)
	}

	return c, nil
}
