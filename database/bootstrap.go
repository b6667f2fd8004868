// database/bootstrap.go
package database

import (
	"fmt"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"farmapi/entities"
)

// Open connects to the configured store. Writes are single statements, so the
// implicit per-statement transaction gorm adds is skipped.
func Open(driver, dsn string, log zerolog.Logger) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch driver {
	case "sqlite":
		dial = sqlite.Open(sqliteDSN(dsn))
	case "postgres":
		dial = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("open db: unsupported driver %q", driver)
	}
	db, err := gorm.Open(dial, Config(log))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == "sqlite" {
		// one writer at a time; busy_timeout covers the rest
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		sqlDB.SetMaxOpenConns(4)
	}
	return db, nil
}

// Config is the gorm configuration shared by every driver.
func Config(log zerolog.Logger) *gorm.Config {
	return &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger: gormlogger.New(&log, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

// Migrate creates or updates the farmer and crop tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Farmer{}, &entities.Crop{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// sqliteDSN turns on foreign keys and a busy timeout for every pooled
// connection unless the caller already set them.
func sqliteDSN(dsn string) string {
	var add []string
	if !strings.Contains(dsn, "foreign_keys") {
		add = append(add, "_pragma=foreign_keys(1)")
	}
	if !strings.Contains(dsn, "busy_timeout") {
		add = append(add, "_pragma=busy_timeout(5000)")
	}
	if len(add) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(add, "&")
}
