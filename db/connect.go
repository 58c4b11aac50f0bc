// Package db handle work with db
package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rockrev/entity"
	"rockrev/misc"
)

// Connect - connection to a db
func Connect(dbHost, dbUser, dbPassword, dbName string) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s", dbHost, dbUser, dbPassword, dbName)
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		misc.Fatal("db_connect", "failed to connect database", err)
	}
	if err := Migrate(conn); err != nil {
		misc.Fatal("db_migration", "db migration", err)
	}
	return conn
}

// Migrate creates or updates the schema
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&entity.User{},
		&entity.Profile{},
		&entity.SubGenre{},
		&entity.Band{},
		&entity.Title{},
		&entity.Review{},
		&entity.Comment{},
		&entity.Follow{},
		&entity.NewsSource{},
	)
}
