package handler

import (
	"net/http"
	"strconv"

	"shop-service/internal/schema"
	"shop-service/internal/service"
	"shop-service/pkg/logger"
	"shop-service/pkg/pagination"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CreateProduct handles creating a new product
func CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)

	var in schema.ProductIn
	if err := c.Bind(&in); err != nil {
		log.Error("Failed to parse product request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid request"})
	}

	if errs := in.Validate(); errs != nil {
		log.Warn("Product validation failed", zap.Any("errors", errs))
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": errs.Message()})
	}

	product, err := service.CreateProduct(in)
	if err != nil {
		return domainError(c, err)
	}

	log.Info("Product created",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name))
	return c.JSON(http.StatusCreated, echo.Map{
		"detail": "Product created successfully",
		"data":   schema.NewProductOut(product),
	})
}

// UpdateProduct handles partially updating an existing product
func UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Product not found"})
	}

	var in schema.ProductIn
	if err := c.Bind(&in); err != nil {
		log.Error("Failed to parse product request", zap.String("product_id", c.Param("id")), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid request"})
	}

	if errs := in.Validate(); errs != nil {
		log.Warn("Product validation failed", zap.Any("errors", errs))
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": errs.Message()})
	}

	product, err := service.UpdateProduct(id, in)
	if err != nil {
		return domainError(c, err)
	}

	log.Info("Product updated",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name))
	return c.JSON(http.StatusOK, echo.Map{
		"detail": "Product updated successfully",
		"data":   schema.NewProductOut(product),
	})
}

// DeleteProduct handles deleting a product and its dependent order details
func DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Product not found"})
	}

	if err := service.DeleteProduct(id); err != nil {
		return domainError(c, err)
	}

	log.Info("Product deleted", zap.Uint("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{"detail": "Product deleted"})
}

// ListProducts handles retrieving a page of products with optional name search
func ListProducts(c echo.Context) error {
	log := logger.FromContext(c)

	search := c.QueryParam("search")
	page := pagination.FromRequest(c)

	products, count, err := service.ListProducts(search, page)
	if err != nil {
		return domainError(c, err)
	}

	log.Info("Products retrieved",
		zap.Int("count", len(products)),
		zap.String("search", search))
	return c.JSON(http.StatusOK, pagination.NewResponse(page, count, schema.NewProductOuts(products)))
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
