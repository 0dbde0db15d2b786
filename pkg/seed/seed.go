package seed

import (
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/Chopaholic/MotorAdverts/pkg/logger"
	"github.com/Chopaholic/MotorAdverts/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// chunkSize bounds how many listings are written concurrently.
const chunkSize = 20

// Counts says how many listings to create per category.
type Counts struct {
	Cars     int
	Vans     int
	Bikes    int
	Caravans int
	Trucks   int
	Farm     int
}

func DefaultCounts() Counts {
	return Counts{Cars: 10, Vans: 10, Bikes: 10, Caravans: 5, Trucks: 5, Farm: 5}
}

type Seeder struct {
	db      *gorm.DB
	factory *Factory
	log     *logger.Logger
}

func NewSeeder(db *gorm.DB, log *logger.Logger) *Seeder {
	return &Seeder{db: db, factory: NewFactory(), log: log}
}

// HostAllowed reports whether the database host looks like a dev machine:
// loopback, .local, or a private LAN range. The ALLOW_SEED env override is
// handled by the caller.
func HostAllowed(host string) bool {
	if host == "localhost" || host == "127.0.0.1" || host == "0.0.0.0" {
		return true
	}
	if strings.HasSuffix(host, ".local") {
		return true
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}
	return ip.IsLoopback() || ip.IsPrivate()
}

// WipeOwner deletes the owner's listings and private records.
func (s *Seeder) WipeOwner(ownerUID string) error {
	s.log.Info("Wiping existing listings for %s", ownerUID)

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_uid = ?", ownerUID).Delete(&models.ListingPrivate{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("owner_uid = ?", ownerUID).Delete(&models.Listing{}).Error
	})
}

type seedTask struct {
	category models.ListingCategory
	index    int
}

// Run wipes the owner's data and writes the requested listings, in chunks
// of twenty concurrent inserts.
func (s *Seeder) Run(ownerUID string, counts Counts) (int, error) {
	if err := s.WipeOwner(ownerUID); err != nil {
		return 0, fmt.Errorf("wipe failed: %w", err)
	}

	var tasks []seedTask
	add := func(cat models.ListingCategory, n int) {
		for i := 0; i < n; i++ {
			tasks = append(tasks, seedTask{category: cat, index: i})
		}
	}
	add(models.CategoryCars, counts.Cars)
	add(models.CategoryVans, counts.Vans)
	add(models.CategoryBikes, counts.Bikes)
	add(models.CategoryCaravans, counts.Caravans)
	add(models.CategoryTrucks, counts.Trucks)
	add(models.CategoryFarmPlant, counts.Farm)

	s.log.Info("Writing %d listings in chunks of %d", len(tasks), chunkSize)

	created := 0
	for start := 0; start < len(tasks); start += chunkSize {
		end := start + chunkSize
		if end > len(tasks) {
			end = len(tasks)
		}
		s.log.Info("Writing %d-%d", start+1, end)

		chunk := tasks[start:end]
		errs := make([]error, len(chunk))
		var wg sync.WaitGroup
		for ci, task := range chunk {
			wg.Add(1)
			go func(ci, seq int, task seedTask) {
				defer wg.Done()
				errs[ci] = s.seedOne(ownerUID, task, seq)
			}(ci, start+ci, task)
		}
		wg.Wait()

		for _, err := range errs {
			if err != nil {
				return created, err
			}
			created++
		}
	}

	s.log.Info("Done. %d listings created for %s", created, ownerUID)
	return created, nil
}

// seedOne writes one listing pair. Creation times are staggered by the
// overall sequence so the feed has a stable newest-first order.
func (s *Seeder) seedOne(ownerUID string, task seedTask, seq int) error {
	listing := s.factory.Build(task.category, task.index)
	if listing == nil {
		return fmt.Errorf("unknown category %q", task.category)
	}

	listing.ID = uuid.New().String()
	listing.OwnerUID = ownerUID
	listing.CreatedAt = time.Now().Add(-time.Duration(seq) * time.Minute)
	listing.UpdatedAt = listing.CreatedAt

	private := &models.ListingPrivate{
		ListingID: listing.ID,
		OwnerUID:  ownerUID,
		Postcode:  Postcode(task.index),
		CreatedAt: listing.CreatedAt,
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(listing).Error; err != nil {
			return err
		}
		return tx.Create(private).Error
	})
}
