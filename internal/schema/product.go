package schema

import (
	"time"

	"shop-service/internal/model"

	"github.com/shopspring/decimal"
)

// CategoryIn is the category creation payload.
type CategoryIn struct {
	Name string `json:"name"`
}

func (in *CategoryIn) Validate() FieldErrors {
	errs := FieldErrors{}
	if in.Name == "" {
		errs.Add("name", msgRequired)
	} else if len(in.Name) > 50 {
		errs.Add("name", msgMaxLength(50))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ProductIn is the product create/update payload. Every field is optional at
// the schema level; the create mutation enforces its own required set and the
// update mutation treats zero values as "leave unchanged".
type ProductIn struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  uint            `json:"category_id"`
}

func (in *ProductIn) Validate() FieldErrors {
	errs := FieldErrors{}
	if len(in.Name) > 100 {
		errs.Add("name", msgMaxLength(100))
	}
	if len(in.Description) > 200 {
		errs.Add("description", msgMaxLength(200))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CategoryOut is the outbound projection of a product category.
type CategoryOut struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCategoryOut(c model.ProductCategory) CategoryOut {
	return CategoryOut{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

// NewCategoryOuts shapes a list of categories.
func NewCategoryOuts(categories []model.ProductCategory) []CategoryOut {
	out := make([]CategoryOut, 0, len(categories))
	for _, c := range categories {
		out = append(out, NewCategoryOut(c))
	}
	return out
}

// ProductOut is the outbound projection of a product with its category
// expanded inline.
type ProductOut struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    CategoryOut     `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func NewProductOut(p model.Product) ProductOut {
	return ProductOut{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    NewCategoryOut(p.Category),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// NewProductOuts shapes a list of products.
func NewProductOuts(products []model.Product) []ProductOut {
	out := make([]ProductOut, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductOut(p))
	}
	return out
}
