package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kosdesign/game-center/internal/config"
	"github.com/kosdesign/game-center/internal/models"
)

func Connect(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("empty DSN")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(60 * time.Minute)

	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.GameParent{},
		&models.GameVersion{},
		&models.ChangelogEntry{},
		&models.Admin{},
	)
}

// SeedAdmin creates the default console administrator when none exists.
func SeedAdmin(db *gorm.DB, cfg config.Config) error {
	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	admin := models.Admin{
		AdminID:  uuid.NewString(),
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Role:     models.RoleAdmin,
	}
	if err := admin.SetPassword(cfg.AdminPassword); err != nil {
		return err
	}
	return db.Create(&admin).Error
}
