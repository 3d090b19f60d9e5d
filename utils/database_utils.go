// database_utils should be the canonical place to put shared DB utils.
// It should not include:
// 1. Any util that doesn't manipulate DB
// 2. Any util that contains business logic
package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/Luismorlan/choirmux/model"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	SqliteDriver   = "sqlite"
	PostgresDriver = "postgres"

	TestDBPrefix = "testonlydb_"
)

// GetDBConnection get a connection to the postgres database specified by env
func GetDBConnection() (*gorm.DB, error) {
	return GetCustomizedConnection(os.Getenv("DB_NAME"))
}

// GetCustomizedConnection connect to any postgres db on the configured host
func GetCustomizedConnection(dbName string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable", os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASS"), dbName, os.Getenv("DB_PORT"))
	return getDB(postgres.Open(dsn))
}

// OpenDB opens a database for the given driver. For sqlite the dsn is a file
// path, for postgres it is a libpq connection string.
func OpenDB(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case SqliteDriver:
		return openSqlite(dsn)
	case PostgresDriver:
		return getDB(postgres.Open(dsn))
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// openSqlite opens an on-device sqlite database. sqlite allows a single
// writer, so the pool is capped to one connection and every statement is
// serialized instead of failing with "database is locked".
func openSqlite(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create sqlite directory")
		}
	}
	db, err := getDB(sqlite.Open(path + "?_busy_timeout=5000&_foreign_keys=off"))
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// CreateTempDB creates a fresh sqlite cache database for a single test and
// migrates every table. The file lives in t.TempDir() and is removed together
// with it, user will not need to drop the database explicitly.
func CreateTempDB(t *testing.T) (*gorm.DB, string) {
	t.Helper()
	dbName := TestDBPrefix + "cache.db"
	path := filepath.Join(t.TempDir(), dbName)
	db, err := openSqlite(path)
	if err != nil {
		t.Fatalf("fail to create temp DB %s: %v", path, err)
	}
	if err := DatabaseSetupAndMigration(db); err != nil {
		t.Fatalf("fail to migrate temp DB %s: %v", path, err)
	}
	t.Cleanup(func() {
		// Proactively close the connection instead of deferring to GC,
		// otherwise the temp dir can't be removed on some platforms.
		if conn, err := db.DB(); err == nil {
			conn.Close()
		}
	})

	return db, dbName
}

func getDB(dialector gorm.Dialector) (db *gorm.DB, err error) {
	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// DatabaseSetupAndMigration migrates every cache table.
func DatabaseSetupAndMigration(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Music{},
		&model.MusicCategory{},
		&model.SocialPost{},
		&model.Comment{},
		&model.Reply{},
		&model.News{},
		&model.NewsFile{},
		&model.NewsLink{},
		&model.AppTheme{},
		&model.UIElement{},
	)
}
