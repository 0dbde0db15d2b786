package main

import (
	"errors"
	"flag"

	"github.com/Chopaholic/MotorAdverts/pkg/config"
	"github.com/Chopaholic/MotorAdverts/pkg/database"
	"github.com/Chopaholic/MotorAdverts/pkg/logger"
	"github.com/Chopaholic/MotorAdverts/pkg/models"
	"github.com/Chopaholic/MotorAdverts/pkg/seed"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const seedUserEmail = "seed@motoradverts.local"

func main() {
	carsN := flag.Int("cars", 10, "Number of car listings")
	vansN := flag.Int("vans", 10, "Number of van listings")
	bikesN := flag.Int("bikes", 10, "Number of bike listings")
	caravansN := flag.Int("caravans", 5, "Number of caravan listings")
	trucksN := flag.Int("trucks", 5, "Number of truck listings")
	farmN := flag.Int("farm", 5, "Number of farm and plant listings")
	owner := flag.String("owner", "", "Owner user id (defaults to a dedicated seed user)")
	flag.Parse()

	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load config: %v", err)
		panic(err)
	}

	if !seed.HostAllowed(cfg.DBHost) && !cfg.AllowSeed {
		log.Error("Seeding is disabled on this host. Run against localhost/your LAN, or set ALLOW_SEED=true to override.")
		return
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	ownerUID := *owner
	if ownerUID == "" {
		ownerUID, err = ensureSeedUser(db)
		if err != nil {
			log.Error("Failed to ensure seed user: %v", err)
			panic(err)
		}
	}

	counts := seed.Counts{
		Cars:     *carsN,
		Vans:     *vansN,
		Bikes:    *bikesN,
		Caravans: *caravansN,
		Trucks:   *trucksN,
		Farm:     *farmN,
	}

	created, err := seed.NewSeeder(db, log).Run(ownerUID, counts)
	if err != nil {
		log.Error("Seeding failed after %d listings: %v", created, err)
		panic(err)
	}

	log.Info("Seeded %d listings. Refresh the home feed to see sample data.", created)
}

// ensureSeedUser finds or creates the dedicated dev account that owns the
// generated listings.
func ensureSeedUser(db *gorm.DB) (string, error) {
	var user models.User
	err := db.Where("email = ?", seedUserEmail).First(&user).Error
	if err == nil {
		return user.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("seed-password"), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user = models.User{
		ID:       uuid.New().String(),
		Email:    seedUserEmail,
		Password: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		return "", err
	}
	return user.ID, nil
}
