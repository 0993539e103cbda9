package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userDomain "github.com/allisson/inventory/internal/user/domain"
)

func TestMapUserToResponse(t *testing.T) {
	now := time.Now().UTC()
	user := &userDomain.User{
		ID:           7,
		Username:     "johndoe",
		Email:        "johndoe@example.com",
		PasswordHash: "secret-digest",
		FullName:     "John Doe",
		IsActive:     true,
		Role:         userDomain.RoleUser,
		CreatedAt:    now,
	}

	response := MapUserToResponse(user)

	assert.Equal(t, user.ID, response.ID)
	assert.Equal(t, user.Username, response.Username)
	assert.Equal(t, user.Email, response.Email)
	assert.Equal(t, user.FullName, response.FullName)
	assert.True(t, response.IsActive)
	assert.Equal(t, user.Role, response.Role)
	assert.Equal(t, now, response.CreatedAt)

	// The serialized response must not carry the password hash.
	data, err := json.Marshal(response)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret-digest")
	assert.NotContains(t, string(data), "password")
}

func TestMapUsersToListResponse(t *testing.T) {
	users := []*userDomain.User{
		{ID: 1, Username: "admin"},
		{ID: 2, Username: "manager"},
	}

	response := MapUsersToListResponse(users)

	require.Len(t, response.Data, 2)
	assert.Equal(t, int64(1), response.Data[0].ID)
	assert.Equal(t, int64(2), response.Data[1].ID)
}

func TestMapUsersToListResponse_Empty(t *testing.T) {
	response := MapUsersToListResponse(nil)

	// Serializes as an empty array, not null.
	data, err := json.Marshal(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[]}`, string(data))
}
