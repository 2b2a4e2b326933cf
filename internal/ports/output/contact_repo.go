package output

import (
	"context"

	"krushi/internal/domain/entities"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *entities.Contact) error
	List(ctx context.Context) ([]entities.Contact, error)
}
