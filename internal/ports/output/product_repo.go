package output

import (
	"context"

	"krushi/internal/domain/entities"
)

// ProductFilter narrows a product listing. Zero values match everything.
type ProductFilter struct {
	Category     string
	FeaturedOnly bool
	Search       string
}

type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	FindByID(ctx context.Context, id string) (*entities.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]entities.Product, error)
	DeleteAll(ctx context.Context) error
}
