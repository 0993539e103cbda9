// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/inventory/internal/validation"
)

// CreateUserRequest contains the parameters for creating a new user account.
// IsActive defaults to true when omitted.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	IsActive *bool  `json:"is_active"`
	Role     string `json:"role"`
}

// Validate checks if the create user request is valid.
func (r *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NoWhitespace,
			validation.Length(3, 50),
		),
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(6, 100),
		),
		validation.Field(&r.FullName,
			validation.Length(0, 100),
		),
		validation.Field(&r.Role,
			validation.Length(0, 20),
		),
	)
}

// Active returns the requested active flag, defaulting to true.
func (r *CreateUserRequest) Active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

// UpdateUserRequest contains the parameters for a partial user update.
// Omitted fields are left unchanged.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	FullName *string `json:"full_name"`
	IsActive *bool   `json:"is_active"`
	Role     *string `json:"role"`
}

// Validate checks if the update user request is valid.
// Validation rules only apply to fields that are present.
func (r *UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.NilOrNotEmpty,
			customValidation.NoWhitespace,
			validation.Length(3, 50),
		),
		validation.Field(&r.Email,
			validation.NilOrNotEmpty,
			customValidation.Email,
		),
		validation.Field(&r.Password,
			validation.NilOrNotEmpty,
			validation.Length(6, 100),
		),
		validation.Field(&r.FullName,
			validation.Length(0, 100),
		),
		validation.Field(&r.Role,
			validation.NilOrNotEmpty,
			validation.Length(0, 20),
		),
	)
}
