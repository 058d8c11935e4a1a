package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		quantity int
		want     string
	}{
		{"catalog example", "3000.00", 20, "60000.00"},
		{"single unit", "45.50", 1, "45.50"},
		{"fractional cents stay exact", "0.10", 3, "0.30"},
		{"zero quantity", "19.99", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := LineTotal(decimal.RequireFromString(tt.price), tt.quantity)
			assert.True(t, total.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", total, tt.want)
		})
	}
}

func TestDomainErrorMessages(t *testing.T) {
	err := invalidRequest("User with this email already exist")
	assert.EqualError(t, err, "User with this email already exist")

	var invalid *InvalidRequestError
	assert.ErrorAs(t, err, &invalid)

	nf := notFound("Product not found")
	var missing *NotFoundError
	assert.ErrorAs(t, nf, &missing)
	assert.Equal(t, "Product not found", missing.Detail)
}
