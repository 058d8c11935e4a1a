package schema

import (
	"strings"
	"testing"
	"time"

	"shop-service/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryInValidate(t *testing.T) {
	assert.Nil(t, (&CategoryIn{Name: "Mobile Phone"}).Validate())

	errs := (&CategoryIn{}).Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs["name"], msgRequired)

	errs = (&CategoryIn{Name: strings.Repeat("x", 51)}).Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs["name"], msgMaxLength(50))
}

func TestProductInValidate(t *testing.T) {
	// Every field is optional at the schema level
	assert.Nil(t, (&ProductIn{}).Validate())

	assert.Nil(t, (&ProductIn{
		Name:        "LG Smart TV",
		Description: "55 inch",
		Price:       decimal.RequireFromString("3000.00"),
		CategoryID:  1,
	}).Validate())

	errs := (&ProductIn{Name: strings.Repeat("x", 101)}).Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs["name"], msgMaxLength(100))

	errs = (&ProductIn{Description: strings.Repeat("x", 201)}).Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs["description"], msgMaxLength(200))
}

func TestNewProductOutExpandsCategory(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	product := model.Product{
		ID:          3,
		Name:        "LG Smart TV",
		Description: "55 inch",
		Price:       decimal.RequireFromString("3000.00"),
		CategoryID:  9,
		Category: model.ProductCategory{
			ID:        9,
			Name:      "Mobile Phone",
			CreatedAt: created,
		},
		CreatedAt: created,
	}

	out := NewProductOut(product)
	assert.Equal(t, uint(3), out.ID)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("3000.00")))
	assert.Equal(t, uint(9), out.Category.ID)
	assert.Equal(t, "Mobile Phone", out.Category.Name)
	assert.Equal(t, created, out.Category.CreatedAt)
}

func TestNewProductOutsKeepsOrderAndLength(t *testing.T) {
	products := []model.Product{
		{ID: 2, Name: "b"},
		{ID: 1, Name: "a"},
	}

	out := NewProductOuts(products)
	require.Len(t, out, 2)
	assert.Equal(t, uint(2), out[0].ID)
	assert.Equal(t, uint(1), out[1].ID)

	// An empty page shapes to an empty list, not null
	assert.NotNil(t, NewProductOuts(nil))
	assert.Len(t, NewProductOuts(nil), 0)
}
