package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/kosdesign/game-center/internal/config"
	"github.com/kosdesign/game-center/internal/database"
	"github.com/kosdesign/game-center/internal/logger"
	"github.com/kosdesign/game-center/internal/models"
	"github.com/kosdesign/game-center/internal/registry"
	"github.com/kosdesign/game-center/internal/store"
)

func intp(v int) *int { return &v }

var sampleGames = []registry.CreateGameInput{
	{
		GameID:   "game001",
		GameName: "Battle Royale Arena",
		VersionData: registry.VersionData{
			GameVersion:    "1.0",
			Description:    "Fast-paced battle royale game with 100 players",
			PortType:       models.PortTypeFixed,
			Port:           intp(3000),
			APIURL:         "https://api-prod.example.com/battle-royale",
			Type:           models.GameTypeProd,
			MatchMakingURL: "https://matchmaking.example.com/battle-royale",
			ServerGameIP:   "192.168.1.100",
			ServerGameType: models.ServerGameTypeUDP,
		},
	},
	{
		GameID:   "game002",
		GameName: "Racing Champions",
		VersionData: registry.VersionData{
			GameVersion:    "2.1",
			Description:    "High-speed racing game with multiplayer support",
			PortType:       models.PortTypeRange,
			PortStart:      intp(4000),
			PortEnd:        intp(4010),
			APIURL:         "https://api-test.example.com/racing",
			Type:           models.GameTypeTest,
			MatchMakingURL: "https://matchmaking-test.example.com/racing",
			ServerGameIP:   "192.168.1.101",
			ServerGameType: models.ServerGameTypeTCP,
		},
	},
	{
		GameID:   "game003",
		GameName: "Space Warriors",
		VersionData: registry.VersionData{
			GameVersion:    "1.5",
			Description:    "Epic space combat with strategic gameplay",
			PortType:       models.PortTypeFixed,
			Port:           intp(5000),
			APIURL:         "https://api-uat.example.com/space-warriors",
			Type:           models.GameTypeUAT,
			ServerGameIP:   "192.168.1.102",
			ServerGameType: models.ServerGameTypeUDP,
		},
	},
	{
		GameID:   "game004",
		GameName: "Fantasy Quest Online",
		VersionData: registry.VersionData{
			GameVersion:    "3.0",
			Description:    "MMORPG with rich storyline and character progression",
			PortType:       models.PortTypeRange,
			PortStart:      intp(6000),
			PortEnd:        intp(6050),
			APIURL:         "https://api-prod.example.com/fantasy-quest",
			Type:           models.GameTypeProd,
			MatchMakingURL: "https://matchmaking.example.com/fantasy",
			ServerGameIP:   "192.168.1.103",
			ServerGameType: models.ServerGameTypeTCP,
		},
	},
}

func main() {
	clean := flag.Bool("clean", false, "remove all registry data instead of seeding")
	flag.Parse()

	if err := config.Load(); err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	cfg := config.Current

	zlog := logger.New(cfg.LogLevel, "", cfg.Production())
	defer zlog.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("database connect failed", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}

	if *clean {
		for _, model := range []interface{}{
			&models.ChangelogEntry{},
			&models.GameVersion{},
			&models.GameParent{},
		} {
			if err := db.Where("1 = 1").Delete(model).Error; err != nil {
				zlog.Fatal("clean failed", zap.Error(err))
			}
		}
		zlog.Info("registry data removed")
		return
	}

	if err := database.SeedAdmin(db, cfg); err != nil {
		zlog.Fatal("admin seed failed", zap.Error(err))
	}

	parents := store.NewParentStore(db)
	versions := store.NewVersionStore(db)
	changelog := store.NewChangelogStore(db)
	reg := registry.New(db, parents, versions, changelog, zlog, cfg.ChangelogLogCascade)

	for _, in := range sampleGames {
		exists, err := versions.Exists(in.GameID, in.GameVersion)
		if err != nil {
			zlog.Fatal("seed check failed", zap.Error(err))
		}
		if exists {
			zlog.Info("already seeded", zap.String("game_id", in.GameID))
			continue
		}
		if _, err := reg.CreateGame(in, "seed"); err != nil {
			zlog.Fatal("seed failed", zap.String("game_id", in.GameID), zap.Error(err))
		}
	}
	zlog.Info("seed complete", zap.Int("games", len(sampleGames)))
}
