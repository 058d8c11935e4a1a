package service

import (
	"errors"
	"time"

	"shop-service/internal/model"
	"shop-service/internal/schema"
	"shop-service/pkg/database"
	"shop-service/pkg/pagination"
	"shop-service/prometheus"

	"gorm.io/gorm"
)

// CreateProduct persists a new product. All four fields must carry non-zero
// values and the category must exist.
func CreateProduct(in schema.ProductIn) (model.Product, error) {
	db := database.GetDB()

	if in.Name == "" || in.Description == "" || in.Price.IsZero() || in.CategoryID == 0 {
		return model.Product{}, invalidRequest("Required fields [name, description, price, category_id]")
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var category model.ProductCategory
	if err := db.First(&category, in.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Product{}, invalidRequest("Selected product category is NOT valid")
		}
		return model.Product{}, err
	}

	product := model.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  category.ID,
		Category:    category,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := db.Omit("Category").Create(&product).Error; err != nil {
		return model.Product{}, err
	}

	prometheus.RecordProductOperation("create")
	return product, nil
}

// UpdateProduct partially updates a product: zero-valued fields leave the
// stored values unchanged. A supplied category must exist.
func UpdateProduct(id uint, in schema.ProductIn) (model.Product, error) {
	db := database.GetDB()

	defer prometheus.TrackDBOperation("query")(time.Now())
	var product model.Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Product{}, notFound("Product not found")
		}
		return model.Product{}, err
	}

	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Description != "" {
		product.Description = in.Description
	}
	if !in.Price.IsZero() {
		product.Price = in.Price
	}
	if in.CategoryID != 0 {
		var category model.ProductCategory
		if err := db.First(&category, in.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.Product{}, invalidRequest("Selected product category is NOT valid")
			}
			return model.Product{}, err
		}
		product.CategoryID = category.ID
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := db.Omit("Category").Save(&product).Error; err != nil {
		return model.Product{}, err
	}

	if err := db.Preload("Category").First(&product, product.ID).Error; err != nil {
		return model.Product{}, err
	}

	prometheus.RecordProductOperation("update")
	return product, nil
}

// DeleteProduct removes a product together with the order details that
// reference it, in a single transaction so no orphan rows survive.
func DeleteProduct(id uint) error {
	db := database.GetDB()

	defer prometheus.TrackDBOperation("delete")(time.Now())
	err := db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Product not found")
			}
			return err
		}

		if err := tx.Where("product_id = ?", id).Delete(&model.OrderDetail{}).Error; err != nil {
			return err
		}

		return tx.Delete(&product).Error
	})
	if err != nil {
		return err
	}

	prometheus.RecordProductOperation("delete")
	return nil
}

// ListProducts returns one page of products, newest first, optionally
// filtered by a case-insensitive name search.
func ListProducts(search string, p pagination.Params) ([]model.Product, int64, error) {
	db := database.GetDB()

	countQuery := db.Model(&model.Product{})
	listQuery := db.Preload("Category").Order("created_at DESC").Scopes(p.Scope())
	if search != "" {
		pattern := "%" + search + "%"
		countQuery = countQuery.Where("name ILIKE ?", pattern)
		listQuery = listQuery.Where("name ILIKE ?", pattern)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var count int64
	if err := countQuery.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	if err := listQuery.Find(&products).Error; err != nil {
		return nil, 0, err
	}

	prometheus.RecordProductOperation("list")
	return products, count, nil
}
