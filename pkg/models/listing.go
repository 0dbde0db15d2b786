package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListingCategory string

const (
	CategoryCars      ListingCategory = "Cars"
	CategoryVans      ListingCategory = "Vans"
	CategoryBikes     ListingCategory = "Bikes"
	CategoryCaravans  ListingCategory = "Caravans"
	CategoryTrucks    ListingCategory = "Trucks"
	CategoryFarmPlant ListingCategory = "Farm & Plant"
)

// Categories is the fixed set offered by the storefront, in display order.
var Categories = []ListingCategory{
	CategoryCars,
	CategoryVans,
	CategoryBikes,
	CategoryCaravans,
	CategoryTrucks,
	CategoryFarmPlant,
}

type ListingStatus string

const (
	StatusLive ListingStatus = "live"
)

// StringList stores an ordered list of URLs as a JSON text column. Index 0
// is the cover image.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

type Listing struct {
	ID           string          `gorm:"type:uuid;primary_key" json:"id"`
	OwnerUID     string          `gorm:"type:uuid;not null;index" json:"owner_uid"`
	Category     ListingCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	Title        string          `gorm:"not null" json:"title"`
	Make         string          `gorm:"not null" json:"make"`
	Model        string          `gorm:"not null" json:"model"`
	Year         *int            `json:"year"`
	Mileage      *int            `json:"mileage"` // miles, km or hours depending on category
	Fuel         *string         `gorm:"type:varchar(20)" json:"fuel"`
	Transmission *string         `gorm:"type:varchar(20)" json:"transmission"`
	Body         *string         `gorm:"type:varchar(20)" json:"body"`
	Colour       *string         `json:"colour"`
	Description  *string         `json:"description"`
	Price        float64         `gorm:"not null" json:"price"`
	Images       StringList      `gorm:"type:text" json:"images"`
	Status       ListingStatus   `gorm:"type:varchar(20);default:'live'" json:"status"`
	IsPremium    bool            `gorm:"default:false" json:"is_premium"`
	PremiumUntil *time.Time      `json:"premium_until"`
	PostTown     *string         `json:"post_town"`
	Seats        *int            `json:"seats"`
	HasTowBar    bool            `gorm:"default:false" json:"has_tow_bar"`
	HasWarranty  bool            `gorm:"default:false" json:"has_warranty"`
	CreatedAt    time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
