package utils

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/careernet/careernet-backend/model"
)

func IsProdEnv() bool {
	return os.Getenv("CAREERNET_ENV") == "prod"
}

// GetDBConnection opens the postgres connection described by the DB_* env
// vars.
func GetDBConnection() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASS"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		getenvDefault("DB_SSLMODE", "disable"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	return db, nil
}

// FeedDBSetup migrates every table the feed service reads.
func FeedDBSetup(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Experience{},
		&model.Connection{},
		&model.Post{},
		&model.Comment{},
	)
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
