package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductCategory represents product categories.
// Category names are not required to be unique.
type ProductCategory struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(50);not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Product represents the product master data
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"type:varchar(100);not null"`
	Description string          `json:"description" gorm:"type:varchar(200)"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	CategoryID  uint            `json:"category_id" gorm:"index;not null"`
	Category    ProductCategory `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
