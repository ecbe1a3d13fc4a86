package db

import (
	"fmt"

	"github.com/davideoddi/usergroups-api/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the shared connection pool. The handle is passed down
// explicitly; nothing in the repository holds it as package state.
func Connect() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return database, nil
}
