// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	customerDomain "github.com/allisson/inventory/internal/customer/domain"
)

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// MapCustomerToResponse converts a domain customer to an API response.
func MapCustomerToResponse(customer *customerDomain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email,
		Phone:     customer.Phone,
		Address:   customer.Address,
		Company:   customer.Company,
		CreatedAt: customer.CreatedAt,
	}
}

// ListCustomersResponse represents a paginated list of customers in API responses.
type ListCustomersResponse struct {
	Data []CustomerResponse `json:"data"`
}

// MapCustomersToListResponse converts a slice of domain customers to a list API response.
func MapCustomersToListResponse(customers []*customerDomain.Customer) ListCustomersResponse {
	customerResponses := make([]CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		customerResponses = append(customerResponses, MapCustomerToResponse(customer))
	}
	return ListCustomersResponse{
		Data: customerResponses,
	}
}
