package seed

import (
	"testing"

	"github.com/Chopaholic/MotorAdverts/pkg/logger"
	"github.com/Chopaholic/MotorAdverts/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeeder(t *testing.T) (*Seeder, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// One pooled connection: the concurrent chunk writers must all see the
	// same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Listing{}, &models.ListingPrivate{}))
	return NewSeeder(db, logger.New()), db
}

func TestRun_CreatesPairsPerCategory(t *testing.T) {
	s, db := setupSeeder(t)

	counts := Counts{Cars: 3, Vans: 2, Bikes: 1, Caravans: 1, Trucks: 1, Farm: 1}
	created, err := s.Run("owner-1", counts)
	require.NoError(t, err)
	assert.Equal(t, 9, created)

	var listings int64
	db.Model(&models.Listing{}).Count(&listings)
	assert.Equal(t, int64(9), listings)

	var privates int64
	db.Model(&models.ListingPrivate{}).Count(&privates)
	assert.Equal(t, int64(9), privates)

	var perCat int64
	db.Model(&models.Listing{}).Where("category = ?", models.CategoryCars).Count(&perCat)
	assert.Equal(t, int64(3), perCat)

	// Every listing carries three images and a live status.
	var rows []models.Listing
	require.NoError(t, db.Find(&rows).Error)
	for _, l := range rows {
		assert.Len(t, []string(l.Images), 3)
		assert.Equal(t, models.StatusLive, l.Status)
		assert.Greater(t, l.Price, 0.0)
		assert.False(t, l.IsPremium)
	}
}

func TestRun_WipesPreviousSeedData(t *testing.T) {
	s, db := setupSeeder(t)

	_, err := s.Run("owner-1", Counts{Cars: 4})
	require.NoError(t, err)
	_, err = s.Run("owner-1", Counts{Cars: 2})
	require.NoError(t, err)

	var listings int64
	db.Model(&models.Listing{}).Count(&listings)
	assert.Equal(t, int64(2), listings)
}

func TestRun_LeavesOtherOwnersAlone(t *testing.T) {
	s, db := setupSeeder(t)

	_, err := s.Run("owner-1", Counts{Cars: 2})
	require.NoError(t, err)
	_, err = s.Run("owner-2", Counts{Vans: 3})
	require.NoError(t, err)

	var mine int64
	db.Model(&models.Listing{}).Where("owner_uid = ?", "owner-1").Count(&mine)
	assert.Equal(t, int64(2), mine)
}

func TestFactory_Datasets(t *testing.T) {
	f := NewFactory()

	car := f.Car(0)
	assert.Equal(t, "Ford", car.Make)
	assert.Equal(t, "Fiesta", car.Model)
	assert.Contains(t, car.Title, "Ford Fiesta Hatchback")
	require.NotNil(t, car.Year)
	assert.GreaterOrEqual(t, *car.Year, 2008)
	assert.LessOrEqual(t, *car.Year, 2023)

	caravan := f.Caravan(0)
	assert.Equal(t, "Swift", caravan.Make)
	assert.Equal(t, 0, *caravan.Mileage)
	assert.Equal(t, "N/A", *caravan.Fuel)

	truck := f.Truck(5)
	assert.Equal(t, "Automatic", *truck.Transmission)
	assert.Equal(t, "Diesel", *truck.Fuel)

	// Index wraps around each dataset.
	assert.Equal(t, f.Car(0).Make, f.Car(8).Make)
}

func TestHostAllowed(t *testing.T) {
	assert.True(t, HostAllowed("localhost"))
	assert.True(t, HostAllowed("127.0.0.1"))
	assert.True(t, HostAllowed("192.168.1.20"))
	assert.True(t, HostAllowed("10.0.0.5"))
	assert.True(t, HostAllowed("172.16.3.1"))
	assert.True(t, HostAllowed("devbox.local"))

	assert.False(t, HostAllowed("db.production.example.com"))
	assert.False(t, HostAllowed("8.8.8.8"))
	assert.False(t, HostAllowed("172.32.0.1"))
}

func TestPostcode_PairsWithTown(t *testing.T) {
	assert.Equal(t, "SW1A1AA", Postcode(0))
	assert.Equal(t, "M11AE", Postcode(1))
	assert.Equal(t, "SW1A1AA", Postcode(6))
}
