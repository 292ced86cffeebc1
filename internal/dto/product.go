package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ProductCategoryDto is the category shape crossing the API boundary.
type ProductCategoryDto struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductDto is the product shape crossing the API boundary. Category is
// attached by the relation loader and may be null.
type ProductDto struct {
	ID         int                 `json:"id"`
	Name       string              `json:"name"`
	Code       string              `json:"code"`
	CategoryID int                 `json:"categoryId"`
	Category   *ProductCategoryDto `json:"category,omitempty"`
	Stock      int                 `json:"stock"`
	Price      float64             `json:"price"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

// ProductListResult pairs a product page with the total match count. This is
// also the shape stored in the list cache.
type ProductListResult struct {
	Data  []ProductDto `json:"data"`
	Total int          `json:"total"`
}

// CreateProductRequest is the payload for POST /products.
type CreateProductRequest struct {
	Name       string  `json:"name"`
	Code       string  `json:"code"`
	CategoryID int     `json:"categoryId"`
	Stock      int     `json:"stock"`
	Price      float64 `json:"price"`
}

// Validate checks the request and reports every violated field rule.
func (r CreateProductRequest) Validate() error {
	return wrapValidation(validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(3, 0)),
		validation.Field(&r.Code, validation.Required, is.Alphanumeric),
		validation.Field(&r.CategoryID, validation.Required, validation.Min(1)),
		validation.Field(&r.Stock, validation.Min(0)),
		validation.Field(&r.Price, validation.Required, validation.Min(1.0)),
	))
}

// UpdateProductRequest is the payload for PATCH /products/:id. Nil fields are
// left untouched by the partial merge.
type UpdateProductRequest struct {
	Name       *string  `json:"name"`
	Code       *string  `json:"code"`
	CategoryID *int     `json:"categoryId"`
	Stock      *int     `json:"stock"`
	Price      *float64 `json:"price"`
}

// Validate checks only the fields that are present. NilOrNotEmpty keeps nil
// fields optional while rejecting explicit empty values, which the remaining
// rules would otherwise skip.
func (r UpdateProductRequest) Validate() error {
	return wrapValidation(validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(3, 0)),
		validation.Field(&r.Code, validation.NilOrNotEmpty, is.Alphanumeric),
		validation.Field(&r.CategoryID, validation.NilOrNotEmpty, validation.Min(1)),
		validation.Field(&r.Stock, validation.Min(0)),
		validation.Field(&r.Price, validation.NilOrNotEmpty, validation.Min(1.0)),
	))
}
