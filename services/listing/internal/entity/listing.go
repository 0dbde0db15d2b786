package entity

import "time"

const (
	CategoryCars      = "Cars"
	CategoryVans      = "Vans"
	CategoryBikes     = "Bikes"
	CategoryCaravans  = "Caravans"
	CategoryTrucks    = "Trucks"
	CategoryFarmPlant = "Farm & Plant"
)

var Categories = []string{
	CategoryCars,
	CategoryVans,
	CategoryBikes,
	CategoryCaravans,
	CategoryTrucks,
	CategoryFarmPlant,
}

var (
	FuelTypes     = []string{"Petrol", "Diesel", "Hybrid", "Electric", "Other"}
	Transmissions = []string{"Manual", "Automatic", "Other"}
	BodyTypes     = []string{"Hatchback", "Saloon", "Estate", "SUV", "Coupe", "Convertible", "MPV", "Van", "Other"}
)

const StatusLive = "live"

type Listing struct {
	ID           string     `json:"id"`
	OwnerUID     string     `json:"owner_uid"`
	Category     string     `json:"category"`
	Title        string     `json:"title"`
	Make         string     `json:"make"`
	Model        string     `json:"model"`
	Year         *int       `json:"year"`
	Mileage      *int       `json:"mileage"`
	Fuel         *string    `json:"fuel"`
	Transmission *string    `json:"transmission"`
	Body         *string    `json:"body"`
	Colour       *string    `json:"colour"`
	Description  *string    `json:"description"`
	Price        float64    `json:"price"`
	Images       []string   `json:"images"` // ordered; index 0 is the cover
	Status       string     `json:"status"`
	IsPremium    bool       `json:"is_premium"`
	PremiumUntil *time.Time `json:"premium_until"`
	PostTown     *string    `json:"post_town"`
	Seats        *int       `json:"seats"`
	HasTowBar    bool       `json:"has_tow_bar"`
	HasWarranty  bool       `json:"has_warranty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ListingPrivate carries the contact postcode, stored alongside but never
// exposed with the public listing.
type ListingPrivate struct {
	ID        string    `json:"id"`
	ListingID string    `json:"listing_id"`
	OwnerUID  string    `json:"owner_uid"`
	Postcode  string    `json:"postcode"`
	CreatedAt time.Time `json:"created_at"`
}
