package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productDomain "github.com/allisson/inventory/internal/product/domain"
)

func TestMapProductToResponse(t *testing.T) {
	product := &productDomain.Product{
		ID:          1,
		Name:        "Laptop",
		Description: "High-end laptop",
		Price:       999.99,
		Stock:       10,
		Category:    "electronics",
		CreatedAt:   time.Now().UTC(),
	}

	response := MapProductToResponse(product)

	assert.Equal(t, product.ID, response.ID)
	assert.Equal(t, product.Name, response.Name)
	assert.Equal(t, product.Description, response.Description)
	assert.Equal(t, product.Price, response.Price)
	assert.Equal(t, product.Stock, response.Stock)
	assert.Equal(t, product.Category, response.Category)
	assert.Equal(t, product.CreatedAt, response.CreatedAt)
}

func TestMapProductsToListResponse(t *testing.T) {
	t.Run("Success_MultipleProducts", func(t *testing.T) {
		products := []*productDomain.Product{
			{ID: 1, Name: "Laptop"},
			{ID: 2, Name: "Mouse"},
		}

		response := MapProductsToListResponse(products)

		assert.Len(t, response.Data, 2)
		assert.Equal(t, int64(1), response.Data[0].ID)
		assert.Equal(t, int64(2), response.Data[1].ID)
	})

	t.Run("Success_EmptyListSerializesAsEmptyArray", func(t *testing.T) {
		response := MapProductsToListResponse(nil)

		body, err := json.Marshal(response)
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":[]}`, string(body))
	})
}
