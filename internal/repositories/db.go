// Package repositories provides the data access layer: the postgres mirror
// of accepted transactions and the shared store clients.
package repositories

import (
	"time"

	"ledgerwriter/internal/config"
	"ledgerwriter/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB connects to postgres, applies pool settings, and migrates the
// transactions mirror table.
func InitDB() (*gorm.DB, error) {
	dsn := "host=" + config.GetEnv("DB_HOST", "localhost") +
		" user=" + config.GetEnv("DB_USER", "postgres") +
		" password=" + config.GetEnv("DB_PASSWORD", "postgres") +
		" dbname=" + config.GetEnv("DB_NAME", "ledger") +
		" port=" + config.GetEnv("DB_PORT", "5432") +
		" sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(config.GetIntEnv("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetMaxOpenConns(config.GetIntEnv("DB_MAX_OPEN_CONNS", 100))
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	if err := db.AutoMigrate(&models.TransactionRecord{}); err != nil {
		return nil, err
	}
	return db, nil
}
