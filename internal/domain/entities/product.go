package entities

import "time"

// Product categories accepted by the catalog.
const (
	CategorySeeds           = "Seeds"
	CategoryFertilizers     = "Fertilizers"
	CategoryPesticides      = "Pesticides"
	CategoryEquipment       = "Equipment"
	CategoryOrganicProducts = "Organic Products"
	CategoryTools           = "Tools"
	CategoryOther           = "Other"
)

// ProductCategories lists every valid product category in display order.
var ProductCategories = []string{
	CategorySeeds,
	CategoryFertilizers,
	CategoryPesticides,
	CategoryEquipment,
	CategoryOrganicProducts,
	CategoryTools,
	CategoryOther,
}

const (
	DefaultProductUnit  = "kg"
	DefaultProductImage = "https://via.placeholder.com/400x300?text=Agriculture+Product"
)

// Product is a farm input sold by the store.
type Product struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Unit        string    `json:"unit"`
	Stock       int       `json:"stock"`
	Image       string    `json:"image"`
	Features    []string  `json:"features"`
	IsFeatured  bool      `json:"isFeatured"`
	IsOrganic   bool      `json:"isOrganic"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InStock reports whether at least one unit is available.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
