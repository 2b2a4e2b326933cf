package application

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/xid"

	"krushi/internal/domain"
	"krushi/internal/domain/entities"
	"krushi/internal/ports/input"
	"krushi/internal/ports/output"
)

var _ input.ProductUseCase = (*ProductService)(nil)

type ProductService struct {
	productRepo output.ProductRepository
	translator  output.T
	validate    *validator.Validate
}

func NewProductService(productRepo output.ProductRepository, translator output.T) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		translator:  translator,
		validate:    newValidator(),
	}
}

func (s *ProductService) CreateProduct(ctx context.Context, locale string, cmd input.CreateProduct) (*entities.Product, error) {
	if err := checkStruct(s.validate, s.translator, locale, cmd); err != nil {
		return nil, err
	}
	product := &entities.Product{
		Name:        strings.TrimSpace(cmd.Name),
		Description: cmd.Description,
		Category:    cmd.Category,
		Price:       *cmd.Price,
		Unit:        cmd.Unit,
		Stock:       cmd.Stock,
		Image:       cmd.Image,
		Features:    orEmpty(cmd.Features),
		IsFeatured:  cmd.IsFeatured,
		IsOrganic:   cmd.IsOrganic,
		Tags:        orEmpty(cmd.Tags),
	}
	if product.Unit == "" {
		product.Unit = entities.DefaultProductUnit
	}
	if product.Image == "" {
		product.Image = entities.DefaultProductImage
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*entities.Product, error) {
	if _, err := xid.FromString(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	return s.productRepo.FindByID(ctx, id)
}

func (s *ProductService) ListProducts(ctx context.Context, filter output.ProductFilter) ([]entities.Product, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	return s.productRepo.List(ctx, filter)
}
