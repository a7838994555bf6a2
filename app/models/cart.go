package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID     string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID string `gorm:"size:36;uniqueIndex" json:"user_id"`
	User   *User  `gorm:"foreignKey:UserID" json:"-"`

	CartProducts []CartProduct `gorm:"constraint:OnDelete:CASCADE" json:"cart_products"`

	// Denormalized aggregates, re-summed over the full line set on every
	// mutation.
	TotalProducts int             `json:"total_products"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(9,2)" json:"total_price"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
