package schema

import (
	"time"

	"shop-service/internal/model"

	"github.com/shopspring/decimal"
)

// OrderLine is one requested {product, quantity} pair.
type OrderLine struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// OrderPlacementIn is the order placement payload. The caller identity is
// passed to the mutation explicitly, never carried in the payload.
type OrderPlacementIn struct {
	OrderRequest []OrderLine `json:"order_request"`
}

func (in *OrderPlacementIn) Validate() FieldErrors {
	errs := FieldErrors{}
	if in.OrderRequest == nil {
		errs.Add("order_request", msgRequired)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// OrderLineOut is the outbound projection of a single line item.
type OrderLineOut struct {
	ID          uint            `json:"id"`
	Quantity    int             `json:"quantity"`
	ProductName string          `json:"product_name"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// OrderOut is the outbound projection of an order. The owner is flattened
// onto the order and line items are walked at shape time.
type OrderOut struct {
	ID          uint           `json:"id"`
	UserID      uint           `json:"user_id"`
	UserName    string         `json:"user_name"`
	OrderDetail []OrderLineOut `json:"order_detail"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func NewOrderOut(o model.Order) OrderOut {
	details := make([]OrderLineOut, 0, len(o.Details))
	for _, d := range o.Details {
		details = append(details, OrderLineOut{
			ID:          d.ID,
			Quantity:    d.Quantity,
			ProductName: d.Product.Name,
			TotalPrice:  d.TotalPrice,
		})
	}

	return OrderOut{
		ID:          o.ID,
		UserID:      o.UserID,
		UserName:    o.User.Name,
		OrderDetail: details,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// NewOrderOuts shapes a list of orders.
func NewOrderOuts(orders []model.Order) []OrderOut {
	out := make([]OrderOut, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderOut(o))
	}
	return out
}
