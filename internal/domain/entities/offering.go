package entities

import "time"

// Offering categories.
const (
	OfferingConsultation = "Consultation"
	OfferingSoilTesting  = "Soil Testing"
	OfferingCropPlanning = "Crop Planning"
	OfferingPestControl  = "Pest Control"
	OfferingTraining     = "Training"
	OfferingOther        = "Other"
)

// OfferingCategories lists every valid offering category.
var OfferingCategories = []string{
	OfferingConsultation,
	OfferingSoilTesting,
	OfferingCropPlanning,
	OfferingPestControl,
	OfferingTraining,
	OfferingOther,
}

const (
	DefaultOfferingIcon     = "🌾"
	DefaultOfferingDuration = "On Request"
)

// Offering is an advisory or field service (soil testing, crop planning...)
// published under /api/services.
type Offering struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Features    []string  `json:"features"`
	Price       *float64  `json:"price,omitempty"` // nil = price on request
	Duration    string    `json:"duration"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
