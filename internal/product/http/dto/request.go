// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/inventory/internal/validation"
)

// CreateProductRequest contains the parameters for creating a new product.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
}

// Validate checks if the create product request is valid.
func (r *CreateProductRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 100),
		),
		validation.Field(&r.Description,
			validation.Length(0, 500),
		),
		validation.Field(&r.Price,
			validation.Min(0.0),
		),
		validation.Field(&r.Stock,
			validation.Min(0),
		),
		validation.Field(&r.Category,
			validation.Length(0, 50),
		),
	)
}

// UpdateProductRequest contains the parameters for a partial product update.
// Omitted fields are left unchanged.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Category    *string  `json:"category"`
}

// Validate checks if the update product request is valid.
// Validation rules only apply to fields that are present.
func (r *UpdateProductRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty,
			customValidation.NotBlank,
			validation.Length(1, 100),
		),
		validation.Field(&r.Description,
			validation.Length(0, 500),
		),
		validation.Field(&r.Price,
			validation.Min(0.0),
		),
		validation.Field(&r.Stock,
			validation.Min(0),
		),
		validation.Field(&r.Category,
			validation.Length(0, 50),
		),
	)
}
