package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListingPrivate holds the seller's contact postcode. One row per published
// listing; never returned by any public read path.
type ListingPrivate struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	ListingID string    `gorm:"type:uuid;not null;uniqueIndex" json:"listing_id"`
	OwnerUID  string    `gorm:"type:uuid;not null;index" json:"owner_uid"`
	Postcode  string    `gorm:"type:varchar(8);not null" json:"postcode"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *ListingPrivate) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// TableName keeps the table aligned with the listings_private collection name.
func (ListingPrivate) TableName() string {
	return "listings_private"
}
