// Package sqlstore implements the relational repositories on top of GORM.
// Postgres is the default driver; MySQL and SQLite are supported for
// alternative deployments and tests.
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/newsportal/news-api/internal/core/domain"
	"github.com/newsportal/news-api/internal/core/ports"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"

	defaultRetries    = 5
	defaultRetryDelay = 2 * time.Second
	slowQuery         = 200 * time.Millisecond
)

var (
	_ ports.UserRepository     = (*UserRepository)(nil)
	_ ports.NewsRepository     = (*NewsRepository)(nil)
	_ ports.CommentRepository  = (*CommentRepository)(nil)
	_ ports.CategoryRepository = (*CategoryRepository)(nil)
)

// Config captures the settings required to open the relational store.
type Config struct {
	Driver       string
	DSN          string
	MaxOpenConns int
	MaxRetries   int
	RetryDelay   time.Duration
}

func dialector(cfg Config) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case DriverPostgres, "":
		return postgres.Open(cfg.DSN), nil
	case DriverMySQL:
		return mysql.New(mysql.Config{
			DSN:               cfg.DSN,
			DefaultStringSize: 256,
		}), nil
	case DriverSQLite:
		return sqlite.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Open connects to the database, retrying while it is not reachable yet.
// Query logging goes through the given zerolog logger at WARN and above.
func Open(ctx context.Context, cfg Config, log zerolog.Logger) (*gorm.DB, error) {
	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = defaultRetries
	}
	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = defaultRetryDelay
	}

	gormCfg := &gorm.Config{
		Logger: gormlogger.New(&log, gormlogger.Config{
			SlowThreshold:             slowQuery,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}

	var db *gorm.DB
	for attempt := 1; ; attempt++ {
		d, err := dialector(cfg)
		if err != nil {
			return nil, err
		}
		db, err = gorm.Open(d, gormCfg)
		if err == nil {
			break
		}
		if attempt >= retries {
			return nil, fmt.Errorf("open database: %w", err)
		}
		log.Warn().Err(err).Int("attempt", attempt).Int("max_attempts", retries).Msg("database not reachable, retrying")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("database handle: %w", err)
		}
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	return db, nil
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&userRecord{}, &categoryRecord{}, &newsRecord{}, &commentRecord{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Ping checks the connection, for readiness probes.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// lookupErr converts a missing row into the entity's NotFound error.
func lookupErr(err error, entity string, id int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFound(entity, id)
	}
	return fmt.Errorf("find %s %d: %w", strings.ToLower(entity), id, err)
}
