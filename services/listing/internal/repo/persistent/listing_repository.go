package persistent

import (
	"errors"

	"github.com/Chopaholic/MotorAdverts/pkg/models"
	"github.com/Chopaholic/MotorAdverts/services/listing/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListingNotFound = errors.New("listing not found")

type ListingRepository interface {
	// CreatePair writes the public listing and its private contact record
	// in a single transaction, so a failure leaves neither behind.
	CreatePair(listing *entity.Listing, private *entity.ListingPrivate) error
	GetByID(id string) (*entity.Listing, error)
	DeleteByOwner(ownerUID string) error
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) CreatePair(listing *entity.Listing, private *entity.ListingPrivate) error {
	listingModel := ToListingModel(listing)
	if listingModel.ID == "" {
		listingModel.ID = uuid.New().String()
	}

	privateModel := ToListingPrivateModel(private)
	if privateModel.ID == "" {
		privateModel.ID = uuid.New().String()
	}
	privateModel.ListingID = listingModel.ID
	privateModel.OwnerUID = listingModel.OwnerUID

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(listingModel).Error; err != nil {
			return err
		}
		return tx.Create(privateModel).Error
	})
	if err != nil {
		return err
	}

	*listing = *ToListingEntity(listingModel)
	*private = *ToListingPrivateEntity(privateModel)
	return nil
}

func (r *listingRepository) GetByID(id string) (*entity.Listing, error) {
	var listingModel models.Listing
	if err := r.db.Where("id = ?", id).First(&listingModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return ToListingEntity(&listingModel), nil
}

func (r *listingRepository) DeleteByOwner(ownerUID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_uid = ?", ownerUID).Delete(&models.ListingPrivate{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("owner_uid = ?", ownerUID).Delete(&models.Listing{}).Error
	})
}
