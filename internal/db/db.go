package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"atelier/internal/config"
	applog "atelier/internal/log"
	"atelier/models"
)

// ErrNoDatabase is returned by helpers that need a handle when the
// application runs without one.
var ErrNoDatabase = errors.New("database handle is nil")

// Dialector picks the GORM driver for url: postgres:// and postgresql:// URLs
// and key=value DSNs open Postgres; sqlite://, file: and :memory: open SQLite.
func Dialector(url string) (gorm.Dialector, error) {
	trimmed := strings.TrimSpace(url)
	switch {
	case trimmed == "":
		return nil, fmt.Errorf("database URL must not be empty")
	case strings.HasPrefix(trimmed, "postgres://"), strings.HasPrefix(trimmed, "postgresql://"):
		return postgres.Open(trimmed), nil
	case strings.HasPrefix(trimmed, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(trimmed, "sqlite://")), nil
	case strings.HasPrefix(trimmed, "file:"), trimmed == ":memory:":
		return sqlite.Open(trimmed), nil
	case strings.Contains(trimmed, "host="), strings.Contains(trimmed, "dbname="):
		return postgres.Open(trimmed), nil
	}
	return nil, fmt.Errorf("unsupported database URL scheme: %q", scheme(trimmed))
}

func scheme(url string) string {
	if i := strings.Index(url, ":"); i > 0 {
		return url[:i]
	}
	return url
}

func gormConfig() *gorm.Config {
	level := logger.Warn
	if applog.Enabled(zerolog.DebugLevel) {
		level = logger.Info
	}
	return &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 newGormLogger().LogMode(level),
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		DisableForeignKeyConstraintWhenMigrating: true,
	}
}

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.URL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, gormConfig())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if cfg.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	return db, nil
}

// Models lists every table managed by AutoMigrate, parents first.
func Models() []any {
	return []any{
		&models.User{},
		&models.Session{},
		&models.SessionParticipant{},
		&models.Message{},
		&models.Evaluation{},
		&models.Attachment{},
		&models.Embedding{},
		&models.RncpTitle{},
		&models.ReacCache{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	if db == nil {
		return ErrNoDatabase
	}

	return db.AutoMigrate(Models()...)
}

// Configure opens and migrates the database described by cfg. The caller
// owns the returned handle.
func Configure(cfg config.DatabaseConfig) (*gorm.DB, error) {
	database, err := Initialize(cfg)
	if err != nil {
		return nil, err
	}

	if err := AutoMigrate(database); err != nil {
		return nil, err
	}

	return database, nil
}

func MustConfigure(cfg config.DatabaseConfig) *gorm.DB {
	database, err := Configure(cfg)
	if err != nil {
		panic(err)
	}

	return database
}

// Ping checks that the database answers within two seconds.
func Ping(ctx context.Context, database *gorm.DB) error {
	if database == nil {
		return ErrNoDatabase
	}

	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// Close releases the pool behind database. A nil handle is ignored.
func Close(database *gorm.DB) error {
	if database == nil {
		return nil
	}
	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.Close()
}
