package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/xid"

	"krushi/internal/domain"
	"krushi/internal/domain/entities"
	"krushi/internal/ports/output"
)

var _ output.OfferingRepository = (*OfferingRepository)(nil)

const offeringColumns = `id, title, description, icon, features, price, duration, category, created_at, updated_at`

// OfferingRepository stores offerings in the services table.
type OfferingRepository struct {
	db DBTX
}

func NewOfferingRepository(db DBTX) *OfferingRepository {
	return &OfferingRepository{db: db}
}

func scanOffering(row pgx.Row) (entities.Offering, error) {
	var (
		o                entities.Offering
		price            pgtype.Float8
		created, updated pgtype.Timestamptz
	)
	err := row.Scan(&o.ID, &o.Title, &o.Description, &o.Icon, &o.Features, &price, &o.Duration, &o.Category, &created, &updated)
	if err != nil {
		return entities.Offering{}, err
	}
	o.Price = float8ToPtr(price)
	o.CreatedAt = pgtypeTimestamptzToTime(created)
	o.UpdatedAt = pgtypeTimestamptzToTime(updated)
	return o, nil
}

func (r *OfferingRepository) Create(ctx context.Context, offering *entities.Offering) error {
	if offering.ID == "" {
		offering.ID = xid.New().String()
	}
	var created, updated pgtype.Timestamptz
	err := r.db.QueryRow(ctx, `
		INSERT INTO services (id, title, description, icon, features, price, duration, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`,
		offering.ID, offering.Title, offering.Description, offering.Icon,
		textArray(offering.Features), ptrToFloat8(offering.Price), offering.Duration, offering.Category,
	).Scan(&created, &updated)
	if err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	offering.CreatedAt = pgtypeTimestamptzToTime(created)
	offering.UpdatedAt = pgtypeTimestamptzToTime(updated)
	return nil
}

func (r *OfferingRepository) FindByID(ctx context.Context, id string) (*entities.Offering, error) {
	o, err := scanOffering(r.db.QueryRow(ctx, `SELECT `+offeringColumns+` FROM services WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrOfferingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get service by id: %w", err)
	}
	return &o, nil
}

func (r *OfferingRepository) List(ctx context.Context) ([]entities.Offering, error) {
	rows, err := r.db.Query(ctx, `SELECT `+offeringColumns+` FROM services ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	offerings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.Offering, error) {
		return scanOffering(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return offerings, nil
}

func (r *OfferingRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM services`); err != nil {
		return fmt.Errorf("delete services: %w", err)
	}
	return nil
}
