package main

import (
	"github.com/Chopaholic/MotorAdverts/pkg/cache"
	"github.com/Chopaholic/MotorAdverts/pkg/config"
	"github.com/Chopaholic/MotorAdverts/pkg/logger"
	app "github.com/Chopaholic/MotorAdverts/services/notification/internal/app"
)

// @title        MotorAdverts Notification Service
// @version      1.0
// @description  Consumes listing events and serves per-user notification feeds.
// @BasePath     /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	app.Run(cfg, log, redisClient)
}
