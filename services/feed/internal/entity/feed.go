package entity

import "time"

const (
	// PageSize is a multiple of BlockSize, so every page starts on a block
	// boundary and per-page tagging matches tagging of the whole sequence.
	PageSize  = 60
	BlockSize = 15
	// PremiumSlotInBlock is 1-based within a block.
	PremiumSlotInBlock = 11
)

// Quick filter keys.
const (
	QuickBargains = "bargains"
	QuickSeats7   = "seats7"
	QuickElectric = "electric"
	QuickTow      = "tow"
	QuickWarranty = "warranty"
	QuickWithin30 = "within30"
)

// QuickFilter describes one quick filter chip.
type QuickFilter struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Desc  string `json:"desc"`
}

var QuickFilters = []QuickFilter{
	{Key: QuickBargains, Label: "Bargains", Desc: "Cars priced at £1,500 or less."},
	{Key: QuickSeats7, Label: "7 Seaters", Desc: "Vehicles with 7 or more seats."},
	{Key: QuickElectric, Label: "Electric", Desc: "Battery-electric vehicles (no petrol/diesel)."},
	{Key: QuickTow, Label: "Tow Ready", Desc: "Listings marked with a fitted tow bar."},
	{Key: QuickWarranty, Label: "Warranty", Desc: "Vehicles where the seller includes a warranty."},
	{Key: QuickWithin30, Label: "Within 30 Miles", Desc: "Listings located within 30 miles of your position."},
}

// Filters narrows the feed. Both fields are optional; Quick holds at most
// one quick filter key.
type Filters struct {
	Category string `json:"category"`
	Quick    string `json:"quick"`
}

// Item is one feed card.
type Item struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Year      *int      `json:"year,omitempty"`
	Price     float64   `json:"price"`
	Images    []string  `json:"images"`
	Category  string    `json:"category"`
	PostTown  *string   `json:"post_town,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Node tag values.
const (
	NodeListing = "listing"
	NodePremium = "premium"
)

// Node is a feed item tagged with how it should render. The premium tag is
// positional; it says nothing about the listing itself.
type Node struct {
	Type string `json:"type"`
	Data Item   `json:"data"`
}

// Page is one feed response.
type Page struct {
	Nodes      []Node `json:"nodes"`
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
}
