// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	productDomain "github.com/allisson/inventory/internal/product/domain"
)

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MapProductToResponse converts a domain product to an API response.
func MapProductToResponse(product *productDomain.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		Category:    product.Category,
		CreatedAt:   product.CreatedAt,
	}
}

// ListProductsResponse represents a paginated list of products in API responses.
type ListProductsResponse struct {
	Data []ProductResponse `json:"data"`
}

// MapProductsToListResponse converts a slice of domain products to a list API response.
func MapProductsToListResponse(products []*productDomain.Product) ListProductsResponse {
	productResponses := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		productResponses = append(productResponses, MapProductToResponse(product))
	}
	return ListProductsResponse{
		Data: productResponses,
	}
}
