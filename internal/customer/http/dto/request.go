// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/inventory/internal/validation"
)

// CreateCustomerRequest contains the parameters for creating a new customer.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Company string `json:"company"`
}

// Validate checks if the create customer request is valid.
func (r *CreateCustomerRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 100),
		),
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
		),
		validation.Field(&r.Phone,
			validation.Length(0, 30),
		),
		validation.Field(&r.Address,
			validation.Length(0, 200),
		),
		validation.Field(&r.Company,
			validation.Length(0, 100),
		),
	)
}

// UpdateCustomerRequest contains the parameters for a partial customer update.
// Omitted fields are left unchanged.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Company *string `json:"company"`
}

// Validate checks if the update customer request is valid.
// Validation rules only apply to fields that are present.
func (r *UpdateCustomerRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty,
			customValidation.NotBlank,
			validation.Length(1, 100),
		),
		validation.Field(&r.Email,
			validation.NilOrNotEmpty,
			customValidation.Email,
		),
		validation.Field(&r.Phone,
			validation.Length(0, 30),
		),
		validation.Field(&r.Address,
			validation.Length(0, 200),
		),
		validation.Field(&r.Company,
			validation.Length(0, 100),
		),
	)
}
