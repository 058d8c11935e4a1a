package schema

import (
	"testing"

	"shop-service/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderPlacementInValidate(t *testing.T) {
	// Missing order_request is a schema error
	errs := (&OrderPlacementIn{}).Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs["order_request"], msgRequired)

	// An empty list passes the schema; the mutation rejects it later
	assert.Nil(t, (&OrderPlacementIn{OrderRequest: []OrderLine{}}).Validate())

	assert.Nil(t, (&OrderPlacementIn{OrderRequest: []OrderLine{
		{ProductID: 1, Quantity: 20},
	}}).Validate())
}

func TestNewOrderOutFlattensOwnerAndWalksDetails(t *testing.T) {
	order := model.Order{
		ID:     11,
		UserID: 4,
		User:   model.User{ID: 4, Name: "Jane Doe", Email: "jane@example.com"},
		Details: []model.OrderDetail{
			{
				ID:         21,
				Quantity:   20,
				Product:    model.Product{ID: 3, Name: "LG Smart TV"},
				TotalPrice: decimal.RequireFromString("60000.00"),
			},
			{
				ID:         22,
				Quantity:   1,
				Product:    model.Product{ID: 5, Name: "Toaster"},
				TotalPrice: decimal.RequireFromString("45.50"),
			},
		},
	}

	out := NewOrderOut(order)
	assert.Equal(t, uint(11), out.ID)
	assert.Equal(t, uint(4), out.UserID)
	assert.Equal(t, "Jane Doe", out.UserName)

	require.Len(t, out.OrderDetail, 2)
	assert.Equal(t, uint(21), out.OrderDetail[0].ID)
	assert.Equal(t, 20, out.OrderDetail[0].Quantity)
	assert.Equal(t, "LG Smart TV", out.OrderDetail[0].ProductName)
	assert.True(t, out.OrderDetail[0].TotalPrice.Equal(decimal.RequireFromString("60000.00")))
	assert.Equal(t, "Toaster", out.OrderDetail[1].ProductName)
}

func TestNewOrderOutDoesNotMutateInput(t *testing.T) {
	order := model.Order{
		ID:      1,
		Details: []model.OrderDetail{{ID: 2, Quantity: 3}},
	}

	out := NewOrderOut(order)
	out.OrderDetail[0].Quantity = 99

	assert.Equal(t, 3, order.Details[0].Quantity)
}
