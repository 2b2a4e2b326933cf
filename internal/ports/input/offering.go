package input

import (
	"context"

	"krushi/internal/domain/entities"
)

// CreateOffering is the payload accepted by POST /api/services.
type CreateOffering struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Duration    string   `json:"duration"`
	Category    string   `json:"category" validate:"omitempty,oneof=Consultation 'Soil Testing' 'Crop Planning' 'Pest Control' Training Other"`
}

type OfferingUseCase interface {
	CreateOffering(ctx context.Context, locale string, cmd CreateOffering) (*entities.Offering, error)
	GetOffering(ctx context.Context, id string) (*entities.Offering, error)
	ListOfferings(ctx context.Context) ([]entities.Offering, error)
}
