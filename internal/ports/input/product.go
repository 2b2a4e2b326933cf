package input

import (
	"context"

	"krushi/internal/domain/entities"
	"krushi/internal/ports/output"
)

// CreateProduct is the payload accepted by POST /api/products.
type CreateProduct struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"required,max=2000"`
	Category    string   `json:"category" validate:"required,oneof=Seeds Fertilizers Pesticides Equipment 'Organic Products' Tools Other"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Unit        string   `json:"unit"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
	IsFeatured  bool     `json:"isFeatured"`
	IsOrganic   bool     `json:"isOrganic"`
	Tags        []string `json:"tags"`
}

type ProductUseCase interface {
	CreateProduct(ctx context.Context, locale string, cmd CreateProduct) (*entities.Product, error)
	GetProduct(ctx context.Context, id string) (*entities.Product, error)
	ListProducts(ctx context.Context, filter output.ProductFilter) ([]entities.Product, error)
}
