package main

import (
	"github.com/Chopaholic/MotorAdverts/pkg/cache"
	"github.com/Chopaholic/MotorAdverts/pkg/config"
	"github.com/Chopaholic/MotorAdverts/pkg/database"
	"github.com/Chopaholic/MotorAdverts/pkg/logger"
	app "github.com/Chopaholic/MotorAdverts/services/feed/internal/app"
)

// @title        MotorAdverts Feed Service
// @version      1.0
// @description  Home feed: cursor pagination, filters and premium slot tagging.
// @BasePath     /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	app.Run(cfg, log, db, redisClient)
}
