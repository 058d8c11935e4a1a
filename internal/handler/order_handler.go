package handler

import (
	"net/http"

	"shop-service/internal/middleware"
	"shop-service/internal/schema"
	"shop-service/internal/service"
	"shop-service/pkg/logger"
	"shop-service/pkg/pagination"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PlaceOrder handles creating an order from the submitted line items
func PlaceOrder(c echo.Context) error {
	log := logger.FromContext(c)

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Authentication credentials were not provided"})
	}

	var in schema.OrderPlacementIn
	if err := c.Bind(&in); err != nil {
		log.Error("Failed to parse order request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid request"})
	}

	if errs := in.Validate(); errs != nil {
		log.Warn("Order validation failed", zap.Any("errors", errs))
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": errs.Message()})
	}

	order, err := service.PlaceOrder(userID, in, log)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"detail": "Order created successfully",
		"data":   schema.NewOrderOut(order),
	})
}

// ListOrders handles retrieving a page of the caller's own orders
func ListOrders(c echo.Context) error {
	log := logger.FromContext(c)

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Authentication credentials were not provided"})
	}

	page := pagination.FromRequest(c)
	orders, count, err := service.ListOrders(userID, page)
	if err != nil {
		return domainError(c, err)
	}

	log.Info("Orders retrieved",
		zap.Uint("user_id", userID),
		zap.Int("count", len(orders)))
	return c.JSON(http.StatusOK, pagination.NewResponse(page, count, schema.NewOrderOuts(orders)))
}
