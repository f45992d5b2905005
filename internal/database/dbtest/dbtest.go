// Package dbtest opens migrated in-memory stores for tests.
package dbtest

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/festy23/sales_dashboard/internal/database/config"
	"github.com/festy23/sales_dashboard/internal/database/migrate"
	"github.com/festy23/sales_dashboard/internal/database/pool"
)

// NewSQLite returns an in-memory SQLite store with all migrations applied,
// including the reference teams (eq1..eq3) and sellers (v1..v5).
// The store is closed when the test finishes.
func NewSQLite(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	if err := pool.SetupConnectionPool(db, pool.SQLitePoolConfig()); err != nil {
		tb.Fatalf("setup pool: %v", err)
	}
	if err := migrate.Migrate(db, config.DriverSQLite); err != nil {
		tb.Fatalf("migrate: %v", err)
	}

	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

// Exec runs raw SQL against db and fails the test on error.
func Exec(tb testing.TB, db *gorm.DB, sql string, values ...interface{}) {
	tb.Helper()
	if err := db.Exec(sql, values...).Error; err != nil {
		tb.Fatalf("exec %q: %v", sql, err)
	}
}
