package entity

import "time"

// Wizard steps, linear. Forward transitions are gated by per-step
// validation; backward transitions are always allowed.
const (
	StepVehicle = 1
	StepPhotos  = 2
	StepContact = 3
	StepReview  = 4
)

// MaxPhotos caps a draft's photo slots; selections beyond the cap are
// silently truncated.
const MaxPhotos = 20

// UploadItem is one ordered photo slot. The slot order determines the
// published images order; slot 0 becomes the cover.
type UploadItem struct {
	ID          string `json:"id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	StagedPath  string `json:"staged_path"`
	Progress    int    `json:"progress"` // 0..100, updated in place during publish
	URL         string `json:"url,omitempty"`
}

type Vehicle struct {
	Category     string  `json:"category"`
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Year         *int    `json:"year"`
	Mileage      *int    `json:"mileage"`
	Fuel         string  `json:"fuel"`
	Transmission string  `json:"transmission"`
	Body         string  `json:"body"`
	Colour       string  `json:"colour"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
}

type Contact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Postcode string `json:"postcode"`
}

// Draft is the per-seller wizard state. It survives step navigation and
// failed publishes, and is reset only after a successful publish.
type Draft struct {
	OwnerUID  string       `json:"owner_uid"`
	Step      int          `json:"step"`
	Vehicle   Vehicle      `json:"vehicle"`
	Photos    []UploadItem `json:"photos"`
	Contact   Contact      `json:"contact"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// NewDraft returns the initial wizard state: step 1 with the default
// category selected.
func NewDraft(ownerUID string) *Draft {
	now := time.Now()
	return &Draft{
		OwnerUID:  ownerUID,
		Step:      StepVehicle,
		Vehicle:   Vehicle{Category: CategoryCars},
		Photos:    []UploadItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
