package usecase

import (
	"context"

	"github.com/Chopaholic/MotorAdverts/services/listing/internal/entity"
	"github.com/Chopaholic/MotorAdverts/services/listing/internal/repo/persistent"
)

var ErrListingNotFound = persistent.ErrListingNotFound

type ListingUseCase interface {
	GetListing(ctx context.Context, id string) (*entity.Listing, error)
	Categories() []string
}

type listingUseCase struct {
	listings persistent.ListingRepository
}

func NewListingUseCase(listings persistent.ListingRepository) ListingUseCase {
	return &listingUseCase{listings: listings}
}

func (uc *listingUseCase) GetListing(ctx context.Context, id string) (*entity.Listing, error) {
	return uc.listings.GetByID(id)
}

func (uc *listingUseCase) Categories() []string {
	return entity.Categories
}
