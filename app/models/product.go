package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type tags identify one concrete product table for polymorphic lookups:
// the cart line reference and the latest-products aggregation both resolve
// products through a tag instead of a fixed foreign key.
const (
	ProductTypeRam        = "ram"
	ProductTypeNotebook   = "notebook"
	ProductTypeSmartphone = "smartphone"
	ProductTypeProcessor  = "processor"
)

func AllProductTypes() []string {
	return []string{ProductTypeRam, ProductTypeNotebook, ProductTypeSmartphone, ProductTypeProcessor}
}

// ProductBase carries the attribute set shared by every variant table.
type ProductBase struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID  uint            `gorm:"index;not null" json:"category_id"`
	Category    *Category       `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty"`
	Title       string          `gorm:"size:255;not null" json:"title" validate:"required"`
	Slug        string          `gorm:"size:255;not null;uniqueIndex" json:"slug" validate:"required"`
	ImagePath   string          `gorm:"size:255" json:"image_path"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(9,2);not null" json:"price"`
	Year        int             `json:"year" validate:"min=1980,max=2100"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

// ProductVariant is implemented by every concrete product type.
type ProductVariant interface {
	ProductID() uint
	ProductType() string
	Base() *ProductBase
}

// NewVariant returns an empty variant for a type tag, nil for unknown tags.
func NewVariant(productType string) ProductVariant {
	switch productType {
	case ProductTypeRam:
		return &RamProduct{}
	case ProductTypeNotebook:
		return &NotebookProduct{}
	case ProductTypeSmartphone:
		return &SmartphoneProduct{}
	case ProductTypeProcessor:
		return &ProcessorProduct{}
	default:
		return nil
	}
}
