package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderDetail is one line item of an order. TotalPrice is a snapshot of
// product price times quantity taken at placement time; it is never
// recomputed from the live product.
type OrderDetail struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	OrderID    uint            `json:"order_id" gorm:"index"`
	ProductID  uint            `json:"product_id" gorm:"index;not null"`
	Product    Product         `json:"product"`
	Quantity   int             `json:"quantity" gorm:"default:1"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(20,2);not null"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Order groups the line items placed by a user in a single request.
// Orders are immutable once created.
type Order struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	UserID    uint          `json:"user_id" gorm:"index;not null"`
	User      User          `json:"user"`
	Details   []OrderDetail `json:"details" gorm:"foreignKey:OrderID"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
