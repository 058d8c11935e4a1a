package handler

import (
	"net/http"

	"shop-service/internal/schema"
	"shop-service/internal/service"
	"shop-service/pkg/logger"
	"shop-service/pkg/pagination"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListCategories handles retrieving a page of product categories
func ListCategories(c echo.Context) error {
	log := logger.FromContext(c)

	page := pagination.FromRequest(c)
	categories, count, err := service.ListCategories(page)
	if err != nil {
		return domainError(c, err)
	}

	log.Info("Categories retrieved", zap.Int("count", len(categories)))
	return c.JSON(http.StatusOK, pagination.NewResponse(page, count, schema.NewCategoryOuts(categories)))
}

// CreateCategory handles creating a new product category
func CreateCategory(c echo.Context) error {
	log := logger.FromContext(c)

	var in schema.CategoryIn
	if err := c.Bind(&in); err != nil {
		log.Error("Failed to parse category request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid request"})
	}

	if errs := in.Validate(); errs != nil {
		log.Warn("Category validation failed", zap.Any("errors", errs))
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": errs.Message()})
	}

	category, err := service.CreateCategory(in)
	if err != nil {
		return domainError(c, err)
	}

	log.Info("Category created",
		zap.Uint("category_id", category.ID),
		zap.String("name", category.Name))
	return c.JSON(http.StatusCreated, schema.NewCategoryOut(category))
}
