package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCreateUserRequest_Validate(t *testing.T) {
	validRequest := func() CreateUserRequest {
		return CreateUserRequest{
			Username: "johndoe",
			Email:    "johndoe@example.com",
			Password: "password123",
			FullName: "John Doe",
			Role:     "user",
		}
	}

	t.Run("Success_ValidRequest", func(t *testing.T) {
		req := validRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("Success_MinimalRequest", func(t *testing.T) {
		req := CreateUserRequest{
			Username: "abc",
			Email:    "abc@example.com",
			Password: "secret",
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("Error_MissingUsername", func(t *testing.T) {
		req := validRequest()
		req.Username = ""
		assert.Error(t, req.Validate())
	})

	t.Run("Error_UsernameTooShort", func(t *testing.T) {
		req := validRequest()
		req.Username = "jo"
		assert.Error(t, req.Validate())
	})

	t.Run("Error_UsernameWithWhitespace", func(t *testing.T) {
		req := validRequest()
		req.Username = "john doe"
		assert.Error(t, req.Validate())
	})

	t.Run("Error_InvalidEmail", func(t *testing.T) {
		req := validRequest()
		req.Email = "not-an-email"
		assert.Error(t, req.Validate())
	})

	t.Run("Error_PasswordTooShort", func(t *testing.T) {
		req := validRequest()
		req.Password = "short"
		assert.Error(t, req.Validate())
	})
}

func TestCreateUserRequest_Active(t *testing.T) {
	t.Run("defaults to true when omitted", func(t *testing.T) {
		req := CreateUserRequest{}
		assert.True(t, req.Active())
	})

	t.Run("respects explicit false", func(t *testing.T) {
		inactive := false
		req := CreateUserRequest{IsActive: &inactive}
		assert.False(t, req.Active())
	})

	t.Run("respects explicit true", func(t *testing.T) {
		active := true
		req := CreateUserRequest{IsActive: &active}
		assert.True(t, req.Active())
	})
}

func TestUpdateUserRequest_Validate(t *testing.T) {
	t.Run("Success_EmptyRequest", func(t *testing.T) {
		// All fields optional; an empty update is valid at the DTO level.
		req := UpdateUserRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("Success_PartialUpdate", func(t *testing.T) {
		req := UpdateUserRequest{
			FullName: strPtr("John M. Doe"),
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("Error_EmptyUsername", func(t *testing.T) {
		req := UpdateUserRequest{
			Username: strPtr(""),
		}
		assert.Error(t, req.Validate())
	})

	t.Run("Error_UsernameTooShort", func(t *testing.T) {
		req := UpdateUserRequest{
			Username: strPtr("jo"),
		}
		assert.Error(t, req.Validate())
	})

	t.Run("Error_InvalidEmail", func(t *testing.T) {
		req := UpdateUserRequest{
			Email: strPtr("not-an-email"),
		}
		assert.Error(t, req.Validate())
	})

	t.Run("Error_PasswordTooShort", func(t *testing.T) {
		req := UpdateUserRequest{
			Password: strPtr("short"),
		}
		assert.Error(t, req.Validate())
	})
}
