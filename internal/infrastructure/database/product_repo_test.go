package database

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"

	"krushi/internal/ports/output"
)

func TestProductListQuery(t *testing.T) {
	cases := []struct {
		name      string
		filter    output.ProductFilter
		wantWhere string
		wantArgs  []any
	}{
		{"no filter", output.ProductFilter{}, "", nil},
		{"category", output.ProductFilter{Category: "Seeds"}, " WHERE category = $1", []any{"Seeds"}},
		{"featured", output.ProductFilter{FeaturedOnly: true}, " WHERE is_featured", nil},
		{
			"all",
			output.ProductFilter{Category: "Tools", FeaturedOnly: true, Search: "50%_off"},
			" WHERE category = $1 AND is_featured AND (name ILIKE $2 OR description ILIKE $2)",
			[]any{"Tools", `%50\%\_off%`},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			query, args := productListQuery(tc.filter)
			want := `SELECT ` + productColumns + ` FROM products` + tc.wantWhere + ` ORDER BY created_at DESC, id DESC`
			assert.Equal(t, want, query)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestMappers(t *testing.T) {
	assert.Nil(t, float8ToPtr(pgtype.Float8{}))
	p := float8ToPtr(pgtype.Float8{Float64: 12.5, Valid: true})
	if assert.NotNil(t, p) {
		assert.Equal(t, 12.5, *p)
	}
	assert.Equal(t, pgtype.Float8{Float64: 12.5, Valid: true}, ptrToFloat8(p))
	assert.False(t, ptrToFloat8(nil).Valid)

	assert.True(t, pgtypeTimestamptzToTime(pgtype.Timestamptz{}).IsZero())
	assert.Equal(t, []string{}, textArray(nil))
}
