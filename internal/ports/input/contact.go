package input

import (
	"context"

	"krushi/internal/domain/contact"
	"krushi/internal/domain/entities"
)

// SubmitContact is a contact form received from a visitor.
type SubmitContact struct {
	contact.Fields
	Language  string
	IPAddress string
	UserAgent string
}

type ContactUseCase interface {
	SubmitContact(ctx context.Context, cmd SubmitContact) (*entities.Contact, error)
	ListContacts(ctx context.Context) ([]entities.Contact, error)
}
