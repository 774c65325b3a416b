package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/task-hub/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Driver names reported by Driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open creates the database handle described by cfg.URL.
// The caller owns the handle and must release it with Close.
func Open(cfg config.Database) (*gorm.DB, error) {
	dialector, inMemory, err := dialectorFor(cfg.URL)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if inMemory {
		// Every new connection to :memory: is a separate empty database.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Ping checks that the database is reachable.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// Driver returns the driver name used by db.
func Driver(db *gorm.DB) string {
	return db.Dialector.Name()
}

func dialectorFor(url string) (gorm.Dialector, bool, error) {
	switch {
	case strings.HasPrefix(url, "sqlite://"):
		// sqlite:///tasks.db is relative, sqlite:////var/tasks.db is absolute.
		path := strings.TrimPrefix(url, "sqlite://")
		path = strings.TrimPrefix(path, "/")
		if path == "" {
			return nil, false, fmt.Errorf("sqlite url %q has no path", url)
		}
		inMemory := path == ":memory:" || strings.Contains(path, "mode=memory")
		return sqlite.Open(path), inMemory, nil

	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		connConfig, err := pgx.ParseConfig(url)
		if err != nil {
			return nil, false, fmt.Errorf("invalid postgres url: %w", err)
		}
		return postgres.New(postgres.Config{
			Conn: stdlib.OpenDB(*connConfig),
		}), false, nil

	default:
		return nil, false, fmt.Errorf("unsupported database url %q", url)
	}
}
