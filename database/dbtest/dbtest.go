// Package dbtest opens throwaway databases for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"farmapi/database"
)

// SQLite opens a migrated SQLite database in a temp dir that is removed with the test.
func SQLite(tb testing.TB) *gorm.DB {
	tb.Helper()
	db, err := database.Open("sqlite", filepath.Join(tb.TempDir(), "farmers.db"), zerolog.Nop())
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// Mock returns a postgres-dialect gorm handle backed by sqlmock. Unmet
// expectations fail the test at cleanup.
func Mock(tb testing.TB) (*gorm.DB, sqlmock.Sqlmock) {
	tb.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		tb.Fatalf("sqlmock: %v", err)
	}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), database.Config(zerolog.Nop()))
	if err != nil {
		tb.Fatalf("gorm over sqlmock: %v", err)
	}
	tb.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			tb.Errorf("sqlmock expectations: %v", err)
		}
		sqlDB.Close()
	})
	return db, mock
}
