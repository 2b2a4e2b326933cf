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

var _ input.OfferingUseCase = (*OfferingService)(nil)

type OfferingService struct {
	offeringRepo output.OfferingRepository
	translator   output.T
	validate     *validator.Validate
}

func NewOfferingService(offeringRepo output.OfferingRepository, translator output.T) *OfferingService {
	return &OfferingService{
		offeringRepo: offeringRepo,
		translator:   translator,
		validate:     newValidator(),
	}
}

func (s *OfferingService) CreateOffering(ctx context.Context, locale string, cmd input.CreateOffering) (*entities.Offering, error) {
	if err := checkStruct(s.validate, s.translator, locale, cmd); err != nil {
		return nil, err
	}
	offering := &entities.Offering{
		Title:       strings.TrimSpace(cmd.Title),
		Description: cmd.Description,
		Icon:        cmd.Icon,
		Features:    orEmpty(cmd.Features),
		Price:       cmd.Price,
		Duration:    cmd.Duration,
		Category:    cmd.Category,
	}
	if offering.Icon == "" {
		offering.Icon = entities.DefaultOfferingIcon
	}
	if offering.Duration == "" {
		offering.Duration = entities.DefaultOfferingDuration
	}
	if offering.Category == "" {
		offering.Category = entities.OfferingOther
	}
	if err := s.offeringRepo.Create(ctx, offering); err != nil {
		return nil, err
	}
	return offering, nil
}

func (s *OfferingService) GetOffering(ctx context.Context, id string) (*entities.Offering, error) {
	if _, err := xid.FromString(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	return s.offeringRepo.FindByID(ctx, id)
}

func (s *OfferingService) ListOfferings(ctx context.Context) ([]entities.Offering, error) {
	return s.offeringRepo.List(ctx)
}
