// internal/domain/catalog/entity.go
package catalog

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a product card on the storefront page
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"-"`
	Slug        string          `gorm:"uniqueIndex;not null;size:255" json:"id"`
	Name        string          `gorm:"not null;size:255" json:"name"`
	Description string          `gorm:"size:500" json:"description"`
	Category    string          `gorm:"not null;size:100;index" json:"category"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	PriceLabel  string          `gorm:"size:100" json:"price_label"` // e.g. "₹ 120.00 / dozen"
	Image       string          `gorm:"size:500" json:"image"`
	EnquiryOnly bool            `gorm:"default:false" json:"enquiry_only"`
	SortOrder   int             `gorm:"default:0" json:"sort_order"`
	IsActive    bool            `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}

// BeforeSave derives the slug from the product name when it is not set
func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = Slugify(p.Name)
	}
	return nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify turns a product name into its cart identifier:
// every whitespace run becomes a single dash and the result is lower-cased.
func Slugify(name string) string {
	return strings.ToLower(whitespaceRun.ReplaceAllString(name, "-"))
}

// DefaultProducts is the catalog seeded into an empty database
func DefaultProducts() []Product {
	return []Product{
		{Name: "Farm Eggs", Category: "eggs", Price: decimal.RequireFromString("120.00"), PriceLabel: "₹ 120.00 / dozen",
			Description: "Fresh white eggs collected every morning", Image: "images/farm-eggs.jpg", SortOrder: 1, IsActive: true},
		{Name: "Brown Eggs", Category: "eggs", Price: decimal.RequireFromString("150.00"), PriceLabel: "₹ 150.00 / dozen",
			Description: "Brown shelled eggs from free range hens", Image: "images/brown-eggs.jpg", SortOrder: 2, IsActive: true},
		{Name: "Country Eggs", Category: "eggs", Price: decimal.RequireFromString("180.00"), PriceLabel: "₹ 180.00 / dozen",
			Description: "Naatu kodi eggs from desi backyard hens", Image: "images/country-eggs.jpg", SortOrder: 3, IsActive: true},
		{Name: "Quail Eggs", Category: "eggs", Price: decimal.RequireFromString("90.00"), PriceLabel: "₹ 90.00 / 12 pcs",
			Description: "Small speckled quail eggs, rich in protein", Image: "images/quail-eggs.jpg", SortOrder: 4, IsActive: true},
		{Name: "Duck Eggs", Category: "eggs", Price: decimal.RequireFromString("240.00"), PriceLabel: "₹ 240.00 / dozen",
			Description: "Large duck eggs for baking", Image: "images/duck-eggs.jpg", SortOrder: 5, IsActive: true},
		{Name: "Broiler Chicken", Category: "poultry", Price: decimal.RequireFromString("220.00"), PriceLabel: "₹ 220.00 / kg",
			Description: "Live broiler birds for bulk orders", Image: "images/broiler.jpg", EnquiryOnly: true, SortOrder: 10, IsActive: true},
		{Name: "Country Chicken", Category: "poultry", Price: decimal.RequireFromString("450.00"), PriceLabel: "₹ 450.00 / kg",
			Description: "Desi naatu kodi raised on open farms", Image: "images/country-chicken.jpg", EnquiryOnly: true, SortOrder: 11, IsActive: true},
		{Name: "Kadaknath Chicken", Category: "poultry", Price: decimal.RequireFromString("900.00"), PriceLabel: "₹ 900.00 / kg",
			Description: "Black meat breed, available on request", Image: "images/kadaknath.jpg", EnquiryOnly: true, SortOrder: 12, IsActive: true},
	}
}
