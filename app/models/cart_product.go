package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartProduct is one cart line. The (ProductType, ProductID) pair is a
// polymorphic reference: it may point at any product table known to the
// type registry, so a single line type holds any catalog item.
type CartProduct struct {
	ID          string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Cart        *Cart  `gorm:"foreignKey:CartID" json:"-"`
	CartID      string `gorm:"size:36;index;uniqueIndex:idx_cart_type_product" json:"cart_id"`
	ProductType string `gorm:"size:20;not null;uniqueIndex:idx_cart_type_product" json:"product_type"`
	ProductID   uint   `gorm:"not null;uniqueIndex:idx_cart_type_product" json:"product_id"`

	Qty        int             `gorm:"not null" json:"qty"`
	BasePrice  decimal.Decimal `gorm:"type:decimal(9,2)" json:"base_price"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(9,2)" json:"total_price"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (cp *CartProduct) BeforeCreate(tx *gorm.DB) (err error) {
	if cp.ID == "" {
		cp.ID = uuid.New().String()
	}
	return
}
