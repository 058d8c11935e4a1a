package service

import (
	"errors"
	"time"

	"shop-service/internal/model"
	"shop-service/internal/schema"
	"shop-service/pkg/database"
	"shop-service/pkg/pagination"
	"shop-service/prometheus"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LineTotal computes the price snapshot stored on an order detail.
func LineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// PlaceOrder materializes the valid line items of the request into order
// details and persists them with a new order owned by userID. Line items
// with a missing product id or quantity, or referencing an unknown product,
// are dropped from the order without failing the request; the drop is only
// visible in logs and metrics. The request fails when no line item survives.
func PlaceOrder(userID uint, in schema.OrderPlacementIn, log *zap.Logger) (model.Order, error) {
	db := database.GetDB()

	var details []model.OrderDetail
	for _, line := range in.OrderRequest {
		if line.ProductID == 0 || line.Quantity == 0 {
			log.Warn("Dropping order line with missing product or quantity",
				zap.Uint("product_id", line.ProductID),
				zap.Int("quantity", line.Quantity))
			prometheus.RecordDroppedOrderLine("empty_line")
			continue
		}

		var product model.Product
		if err := db.First(&product, line.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn("Dropping order line for unknown product",
					zap.Uint("product_id", line.ProductID))
				prometheus.RecordDroppedOrderLine("unknown_product")
				continue
			}
			return model.Order{}, err
		}

		details = append(details, model.OrderDetail{
			ProductID:  product.ID,
			Quantity:   line.Quantity,
			TotalPrice: LineTotal(product.Price, line.Quantity),
		})
	}

	if len(details) == 0 {
		return model.Order{}, invalidRequest("No order was created (this can be due to incorrect payload or no item found for placement)")
	}

	order := model.Order{
		UserID:  userID,
		Details: details,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit("User", "Details.Product").Create(&order).Error
	})
	if err != nil {
		return model.Order{}, err
	}

	// Reload the full graph for shaping
	if err := db.Preload("Details.Product").Preload("User").First(&order, order.ID).Error; err != nil {
		return model.Order{}, err
	}

	prometheus.OrderPlacedCounter.Inc()
	log.Info("Order placed",
		zap.Uint("order_id", order.ID),
		zap.Uint("user_id", userID),
		zap.Int("line_items", len(order.Details)))

	return order, nil
}

// ListOrders returns one page of the caller's own orders, newest first.
func ListOrders(userID uint, p pagination.Params) ([]model.Order, int64, error) {
	db := database.GetDB()

	defer prometheus.TrackDBOperation("query")(time.Now())
	var count int64
	if err := db.Model(&model.Order{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var orders []model.Order
	err := db.Where("user_id = ?", userID).
		Preload("Details.Product").
		Preload("User").
		Order("created_at DESC").
		Scopes(p.Scope()).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, count, nil
}
