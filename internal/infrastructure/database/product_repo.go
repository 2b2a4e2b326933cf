package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/xid"

	"krushi/internal/domain"
	"krushi/internal/domain/entities"
	"krushi/internal/ports/output"
)

var _ output.ProductRepository = (*ProductRepository)(nil)

const productColumns = `id, name, description, category, price, unit, stock, image,
	features, is_featured, is_organic, tags, created_at, updated_at`

type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func scanProduct(row pgx.Row) (entities.Product, error) {
	var (
		p                entities.Product
		created, updated pgtype.Timestamptz
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.Unit, &p.Stock, &p.Image,
		&p.Features, &p.IsFeatured, &p.IsOrganic, &p.Tags, &created, &updated)
	if err != nil {
		return entities.Product{}, err
	}
	p.CreatedAt = pgtypeTimestamptzToTime(created)
	p.UpdatedAt = pgtypeTimestamptzToTime(updated)
	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	if product.ID == "" {
		product.ID = xid.New().String()
	}
	var created, updated pgtype.Timestamptz
	err := r.db.QueryRow(ctx, `
		INSERT INTO products (id, name, description, category, price, unit, stock, image,
			features, is_featured, is_organic, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at`,
		product.ID, product.Name, product.Description, product.Category, product.Price,
		product.Unit, product.Stock, product.Image, textArray(product.Features),
		product.IsFeatured, product.IsOrganic, textArray(product.Tags),
	).Scan(&created, &updated)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	product.CreatedAt = pgtypeTimestamptzToTime(created)
	product.UpdatedAt = pgtypeTimestamptzToTime(updated)
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*entities.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return &p, nil
}

// List returns products matching filter, newest first. Search matches name or
// description case-insensitively.
func (r *ProductRepository) List(ctx context.Context, filter output.ProductFilter) ([]entities.Product, error) {
	query, args := productListQuery(filter)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func productListQuery(filter output.ProductFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	if filter.Category != "" {
		args = append(args, filter.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.FeaturedOnly {
		where = append(where, "is_featured")
	}
	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", n, n))
	}
	query := `SELECT ` + productColumns + ` FROM products`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	return query + ` ORDER BY created_at DESC, id DESC`, args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *ProductRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("delete products: %w", err)
	}
	return nil
}
