package database

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/pkg/config"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
}

// Transactor runs fn inside a single database transaction.
type Transactor interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

var _ Transactor = (*DB)(nil)

// Options controls how the SQLite connection is opened
type Options struct {
	Path                  string
	MaxConnections        int
	MaxIdleConnections    int
	ConnectionMaxLifetime time.Duration
	BusyTimeout           time.Duration
	EnableWAL             bool
	EnableForeignKeys     bool
	LogQueries            bool

	// Logger receives gorm's output; nil means the standard logrus logger.
	Logger *logrus.Logger
}

// OptionsFromConfig maps the database section of the configuration.
func OptionsFromConfig(cfg config.DatabaseConfig) Options {
	return Options{
		Path:                  cfg.Path,
		MaxConnections:        cfg.MaxConnections,
		MaxIdleConnections:    cfg.MaxIdleConnections,
		ConnectionMaxLifetime: cfg.ConnectionMaxLifetime,
		BusyTimeout:           cfg.BusyTimeout,
		EnableWAL:             cfg.EnableWAL,
		EnableForeignKeys:     cfg.EnableForeignKeys,
		LogQueries:            cfg.LogQueries,
	}
}

// DSN builds the go-sqlite3 connection string.
func (o Options) DSN() string {
	params := url.Values{}
	if o.BusyTimeout > 0 {
		params.Set("_busy_timeout", fmt.Sprint(o.BusyTimeout.Milliseconds()))
	}
	if o.EnableWAL && !isMemory(o.Path) {
		params.Set("_journal_mode", "WAL")
	}
	if o.EnableForeignKeys {
		params.Set("_foreign_keys", "on")
	}
	if len(params) == 0 {
		return o.Path
	}
	sep := "?"
	if strings.Contains(o.Path, "?") {
		sep = "&"
	}
	return o.Path + sep + params.Encode()
}

func isMemory(path string) bool {
	return path == "" || strings.Contains(path, ":memory:") || strings.Contains(path, "mode=memory")
}

// newGormLogger sends gorm's messages through logrus. Missing records are
// reported to callers as NotFound and are not logged.
func newGormLogger(base *logrus.Logger, logQueries bool) logger.Interface {
	if base == nil {
		base = logrus.StandardLogger()
	}
	level := logger.Error
	if logQueries {
		level = logger.Info
	}
	return logger.New(base.WithField("component", "gorm"), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// Initialize creates a new database connection with the provided configuration
func Initialize(opts Options) (*DB, error) {
	if !isMemory(opts.Path) {
		dir := filepath.Dir(opts.Path)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	gormConfig := &gorm.Config{
		Logger:         newGormLogger(opts.Logger, opts.LogQueries),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(opts.DSN()), gormConfig)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseConnection, "failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	maxOpen := opts.MaxConnections
	if maxOpen <= 0 {
		maxOpen = 10
	}
	// every connection to :memory: is its own database
	if isMemory(opts.Path) {
		maxOpen = 1
	}
	maxIdle := opts.MaxIdleConnections
	if maxIdle <= 0 || maxIdle > maxOpen {
		maxIdle = maxOpen
	}
	lifetime := opts.ConnectionMaxLifetime
	if lifetime <= 0 {
		lifetime = time.Hour
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(lifetime)

	return &DB{DB: db}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}
	return sqlDB.Close()
}

// HealthCheck verifies the database connection is working
func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// AutoMigrate runs GORM auto migration for the provided models
func (db *DB) AutoMigrate(models ...any) error {
	if err := db.DB.AutoMigrate(models...); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeDatabaseQuery, "auto migration failed")
	}
	logrus.WithField("models", len(models)).Debug("migrated models")
	return nil
}

// Migrate creates or updates every table the application uses.
func (db *DB) Migrate() error {
	return db.AutoMigrate(models.All()...)
}

// Transaction runs fn in a transaction. Errors returned by fn roll the
// transaction back and are returned unchanged; a failed begin or commit is
// reported as a TransactionError.
func (db *DB) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) (err error) {
	tx := db.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return apperrors.TransactionError("begin", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil && !errors.Is(rbErr, gorm.ErrInvalidTransaction) {
			logrus.WithError(rbErr).Error("transaction rollback failed")
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.TransactionError("commit", err)
	}
	return nil
}
