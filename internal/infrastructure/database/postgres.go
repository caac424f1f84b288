package database

import (
	"fmt"

	"hospital-ipd-engine/config"
	"hospital-ipd-engine/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresConnection(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Kolkata",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	// Only the local audit trail and the admission read-model live here;
	// admissions themselves belong to the remote hospital store.
	if err := db.AutoMigrate(&entity.AuditLog{}, &entity.AdmissionSnapshot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate local tables: %w", err)
	}

	logrus.Info("Successfully connected to PostgreSQL database")

	return db, nil
}
