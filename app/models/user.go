package models

import "time"

type User struct {
	ID         string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Username   string `gorm:"size:150;not null;uniqueIndex" json:"username"`
	FirstName  string `gorm:"size:128" json:"first_name"`
	LastName   string `gorm:"size:128" json:"last_name"`
	Email      string `gorm:"size:100" json:"email"`
	Country    string `gorm:"size:2" json:"country"`
	Phone      string `gorm:"size:20" json:"phone" validate:"omitempty,numeric,len=10"`
	Password   string `gorm:"size:255;not null" json:"-"`
	Role       string `gorm:"size:20;default:'customer';not null" json:"role"`
	AvatarPath string `gorm:"size:255" json:"avatar_path"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)
