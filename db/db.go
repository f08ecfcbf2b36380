package db

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the GAMEGROOVE database. The schema (tables and stored
// procedures) is owned by the database itself, so there is no migration step
// here - every statement the application runs goes through the named
// procedures in the dal package.
func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost port=5432 user=postgres dbname=gamegroove sslmode=disable"
	}

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
