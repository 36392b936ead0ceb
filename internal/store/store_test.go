package store

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kosdesign/game-center/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.GameParent{},
		&models.GameVersion{},
		&models.ChangelogEntry{},
		&models.Admin{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func intp(v int) *int { return &v }

func sampleVersion(gameID, version string) *models.GameVersion {
	return &models.GameVersion{
		GameID:         gameID,
		GameVersion:    version,
		Description:    "test version",
		PortType:       models.PortTypeFixed,
		Port:           intp(3000),
		APIURL:         "https://api.example.com/game",
		Type:           models.GameTypeProd,
		ServerGameIP:   "10.0.0.1",
		ServerGameType: models.ServerGameTypeUDP,
		IsActive:       true,
	}
}
