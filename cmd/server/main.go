package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/kosdesign/game-center/internal/config"
	"github.com/kosdesign/game-center/internal/database"
	"github.com/kosdesign/game-center/internal/logger"
	"github.com/kosdesign/game-center/internal/server"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	cfg := config.Current

	zlog := logger.New(cfg.LogLevel, cfg.LogFile, cfg.Production())
	defer zlog.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("database connect failed", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}
	if err := database.SeedAdmin(db, cfg); err != nil {
		zlog.Fatal("admin seed failed", zap.Error(err))
	}

	app := server.New(db, cfg, zlog)

	zlog.Info("server listening", zap.String("port", cfg.AppPort))
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		zlog.Fatal("server failed", zap.Error(err))
	}
}
