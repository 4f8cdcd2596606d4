package models

import (
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	BaseModel
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Favorite    bool            `json:"favorite"`
	Images      []ProductImage  `json:"images,omitempty"`
	Options     []ProductOption `json:"options,omitempty"`
	Categories  []Category      `gorm:"many2many:product_categories;" json:"categories,omitempty"`
}

type ProductImage struct {
	BaseModel
	ProductID uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	URL       string    `json:"url"`
	SortOrder int       `json:"sort_order"`
}

// ProductOption is one purchasable variant of a product. Discount is not
// stored; it is derived from the two prices on every read.
type ProductOption struct {
	BaseModel
	ProductID     uuid.UUID     `gorm:"type:uuid;index" json:"product_id"`
	Color         string        `json:"color"`
	Variant       string        `json:"variant"`
	OriginalPrice float64       `json:"original_price"`
	SalePrice     float64       `json:"sale_price"`
	Stock         int           `json:"stock"`
	Discount      int           `gorm:"-" json:"discount"`
	Images        []OptionImage `json:"images,omitempty"`
	Specs         []ProductSpec `json:"specs,omitempty"`
}

// AfterFind fills the computed discount percentage.
func (o *ProductOption) AfterFind(tx *gorm.DB) error {
	o.Discount = DiscountPercent(o.OriginalPrice, o.SalePrice)
	return nil
}

// DiscountPercent returns the rounded discount percentage implied by the
// pair of prices, or 0 when the pair does not describe a discount.
func DiscountPercent(original, sale float64) int {
	if original <= 0 || sale < 0 || sale > original {
		return 0
	}
	return int(math.Round((1 - sale/original) * 100))
}

type OptionImage struct {
	BaseModel
	ProductOptionID uuid.UUID `gorm:"type:uuid;index" json:"product_option_id"`
	URL             string    `json:"url"`
	SortOrder       int       `json:"sort_order"`
}

type ProductSpec struct {
	BaseModel
	ProductOptionID uuid.UUID `gorm:"type:uuid;index" json:"product_option_id"`
	Description     string    `json:"description"`
	Image           string    `json:"image"`
}
