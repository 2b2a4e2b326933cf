package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/xid"

	"krushi/internal/domain/entities"
	"krushi/internal/ports/output"
)

var _ output.ContactRepository = (*ContactRepository)(nil)

type ContactRepository struct {
	db DBTX
}

func NewContactRepository(db DBTX) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, c *entities.Contact) error {
	if c.ID == "" {
		c.ID = xid.New().String()
	}
	var created, updated pgtype.Timestamptz
	err := r.db.QueryRow(ctx, `
		INSERT INTO contacts (id, name, email, phone, subject, message, status, source, language, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`,
		c.ID, c.Name, c.Email, c.Phone, c.Subject, c.Message, c.Status, c.Source, c.Language, c.IPAddress, c.UserAgent,
	).Scan(&created, &updated)
	if err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	c.CreatedAt = pgtypeTimestamptzToTime(created)
	c.UpdatedAt = pgtypeTimestamptzToTime(updated)
	return nil
}

func (r *ContactRepository) List(ctx context.Context) ([]entities.Contact, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, phone, subject, message, status, source, language, ip_address, user_agent, created_at, updated_at
		FROM contacts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	contacts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.Contact, error) {
		var (
			c                entities.Contact
			created, updated pgtype.Timestamptz
		)
		err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message, &c.Status, &c.Source,
			&c.Language, &c.IPAddress, &c.UserAgent, &created, &updated)
		c.CreatedAt = pgtypeTimestamptzToTime(created)
		c.UpdatedAt = pgtypeTimestamptzToTime(updated)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}
