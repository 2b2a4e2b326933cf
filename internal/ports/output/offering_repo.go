package output

import (
	"context"

	"krushi/internal/domain/entities"
)

type OfferingRepository interface {
	Create(ctx context.Context, offering *entities.Offering) error
	FindByID(ctx context.Context, id string) (*entities.Offering, error)
	List(ctx context.Context) ([]entities.Offering, error)
	DeleteAll(ctx context.Context) error
}
