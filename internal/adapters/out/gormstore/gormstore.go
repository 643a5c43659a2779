// Package gormstore persists the marketplace state in a relational database
// through GORM. It is the alternative to the JSON-file store for
// installations that outgrow single-directory files: the same ports are
// served by SQL transactions instead of an advisory file lock.
//
// Two drivers are supported: embedded sqlite for single-host setups and
// postgres for shared ones.
package gormstore

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenSQLite opens (and migrates) an embedded sqlite database at the given
// path.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	return db, migrate(db)
}

// OpenPostgres opens (and migrates) a postgres database from a DSN.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, migrate(db)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&OrderDTO{},
		&RestaurantRatingDTO{},
		&DriverRatingDTO{},
		&UserDTO{},
	)
}
