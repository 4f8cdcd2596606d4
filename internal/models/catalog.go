package models

import "github.com/google/uuid"

type Category struct {
	BaseModel
	Name     string         `json:"name"`
	Products []Product      `gorm:"many2many:product_categories;" json:"products,omitempty"`
	Brands   []BrandPartner `gorm:"many2many:brand_categories;" json:"brands,omitempty"`
}

type BrandPartner struct {
	BaseModel
	Name       string     `json:"name"`
	Image      string     `json:"image"`
	AboutID    *uuid.UUID `gorm:"type:uuid" json:"about_id"`
	About      *About     `json:"about,omitempty"`
	Categories []Category `gorm:"many2many:brand_categories;" json:"categories,omitempty"`
}
