package httpapi

import (
	"context"
	"log/slog"
	"time"

	"krushi/internal/domain/translation"
	"krushi/internal/ports/input"
	"krushi/internal/ports/output"
)

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves the REST API using use cases.
type Handler struct {
	products    input.ProductUseCase
	offerings   input.OfferingUseCase
	contacts    input.ContactUseCase
	catalog     *translation.Table
	messages    output.T
	db          Pinger
	logger      *slog.Logger
	development bool
	startedAt   time.Time
	now         func() time.Time
}

// Deps are the collaborators of a Handler.
type Deps struct {
	Products    input.ProductUseCase
	Offerings   input.OfferingUseCase
	Contacts    input.ContactUseCase
	Catalog     *translation.Table
	Messages    output.T
	DB          Pinger
	Logger      *slog.Logger
	Development bool
}

// NewHandler creates a Handler.
func NewHandler(d Deps) *Handler {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		products:    d.Products,
		offerings:   d.Offerings,
		contacts:    d.Contacts,
		catalog:     d.Catalog,
		messages:    d.Messages,
		db:          d.DB,
		logger:      logger,
		development: d.Development,
		startedAt:   time.Now(),
		now:         time.Now,
	}
}

// msg renders an API message in the request's language.
func (h *Handler) msg(ctx context.Context, key string) string {
	return h.messages.T(LanguageFromContext(ctx), key, nil)
}
