package persistent

import (
	"github.com/Chopaholic/MotorAdverts/pkg/models"
	"github.com/Chopaholic/MotorAdverts/services/listing/internal/entity"
)

func ToListingEntity(m *models.Listing) *entity.Listing {
	if m == nil {
		return nil
	}

	return &entity.Listing{
		ID:           m.ID,
		OwnerUID:     m.OwnerUID,
		Category:     string(m.Category),
		Title:        m.Title,
		Make:         m.Make,
		Model:        m.Model,
		Year:         m.Year,
		Mileage:      m.Mileage,
		Fuel:         m.Fuel,
		Transmission: m.Transmission,
		Body:         m.Body,
		Colour:       m.Colour,
		Description:  m.Description,
		Price:        m.Price,
		Images:       []string(m.Images),
		Status:       string(m.Status),
		IsPremium:    m.IsPremium,
		PremiumUntil: m.PremiumUntil,
		PostTown:     m.PostTown,
		Seats:        m.Seats,
		HasTowBar:    m.HasTowBar,
		HasWarranty:  m.HasWarranty,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToListingModel(e *entity.Listing) *models.Listing {
	if e == nil {
		return nil
	}

	return &models.Listing{
		ID:           e.ID,
		OwnerUID:     e.OwnerUID,
		Category:     models.ListingCategory(e.Category),
		Title:        e.Title,
		Make:         e.Make,
		Model:        e.Model,
		Year:         e.Year,
		Mileage:      e.Mileage,
		Fuel:         e.Fuel,
		Transmission: e.Transmission,
		Body:         e.Body,
		Colour:       e.Colour,
		Description:  e.Description,
		Price:        e.Price,
		Images:       models.StringList(e.Images),
		Status:       models.ListingStatus(e.Status),
		IsPremium:    e.IsPremium,
		PremiumUntil: e.PremiumUntil,
		PostTown:     e.PostTown,
		Seats:        e.Seats,
		HasTowBar:    e.HasTowBar,
		HasWarranty:  e.HasWarranty,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToListingPrivateEntity(m *models.ListingPrivate) *entity.ListingPrivate {
	if m == nil {
		return nil
	}

	return &entity.ListingPrivate{
		ID:        m.ID,
		ListingID: m.ListingID,
		OwnerUID:  m.OwnerUID,
		Postcode:  m.Postcode,
		CreatedAt: m.CreatedAt,
	}
}

func ToListingPrivateModel(e *entity.ListingPrivate) *models.ListingPrivate {
	if e == nil {
		return nil
	}

	return &models.ListingPrivate{
		ID:        e.ID,
		ListingID: e.ListingID,
		OwnerUID:  e.OwnerUID,
		Postcode:  e.Postcode,
		CreatedAt: e.CreatedAt,
	}
}
