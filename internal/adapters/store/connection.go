// Package store persists department rosters in a relational database through
// gorm. SQLite and PostgreSQL are supported; the memory driver needs no
// connection at all.
package store

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen11/workforce/internal/domain"
	"github.com/jsamuelsen11/workforce/internal/ports"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var _ ports.HealthChecker = (*Connection)(nil)

// Connection is an open database handle with the roster schema migrated.
type Connection struct {
	db     *gorm.DB
	driver string
}

// Open connects with the named driver and migrates the roster schema.
func Open(ctx context.Context, driver, dsn string) (*Connection, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", driver, err)
	}

	if err := db.WithContext(ctx).AutoMigrate(&rosterEntry{}); err != nil {
		return nil, fmt.Errorf("migrating roster schema: %w", err)
	}

	return &Connection{db: db, driver: driver}, nil
}

// DB returns the underlying gorm handle.
func (c *Connection) DB() *gorm.DB { return c.db }

// Driver returns the driver name the connection was opened with.
func (c *Connection) Driver() string { return c.driver }

// Name implements ports.HealthChecker.
func (c *Connection) Name() string { return "store" }

// HealthCheck pings the database.
func (c *Connection) HealthCheck(ctx context.Context) error {
	if c == nil || c.db == nil {
		return fmt.Errorf("store: %w", domain.ErrUnavailable)
	}
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging %s: %w", c.driver, err)
	}
	return nil
}

// Scopes lists every scope with at least one stored entry, sorted.
func (c *Connection) Scopes(ctx context.Context) ([]string, error) {
	var scopes []string
	err := c.db.WithContext(ctx).
		Model(&rosterEntry{}).
		Distinct("scope").
		Order("scope").
		Pluck("scope", &scopes).Error
	if err != nil {
		return nil, fmt.Errorf("listing scopes: %w", err)
	}
	return scopes, nil
}

// Close releases the connection pool.
func (c *Connection) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
