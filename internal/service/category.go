package service

import (
	"time"

	"shop-service/internal/model"
	"shop-service/internal/schema"
	"shop-service/pkg/database"
	"shop-service/pkg/pagination"
	"shop-service/prometheus"
)

// CreateCategory persists a new product category. Names are not required to
// be unique.
func CreateCategory(in schema.CategoryIn) (model.ProductCategory, error) {
	db := database.GetDB()

	category := model.ProductCategory{Name: in.Name}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := db.Create(&category).Error; err != nil {
		return model.ProductCategory{}, err
	}

	return category, nil
}

// ListCategories returns one page of categories, newest first, with the
// total count for the pagination envelope.
func ListCategories(p pagination.Params) ([]model.ProductCategory, int64, error) {
	db := database.GetDB()

	defer prometheus.TrackDBOperation("query")(time.Now())
	var count int64
	if err := db.Model(&model.ProductCategory{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var categories []model.ProductCategory
	err := db.Order("created_at DESC").Scopes(p.Scope()).Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}

	return categories, count, nil
}
