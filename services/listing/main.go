package main

import (
	"github.com/Chopaholic/MotorAdverts/pkg/cache"
	"github.com/Chopaholic/MotorAdverts/pkg/config"
	"github.com/Chopaholic/MotorAdverts/pkg/database"
	"github.com/Chopaholic/MotorAdverts/pkg/logger"
	app "github.com/Chopaholic/MotorAdverts/services/listing/internal/app"
)

// @title        MotorAdverts Listing Service
// @version      1.0
// @description  Listing details and the four step create-listing wizard.
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
