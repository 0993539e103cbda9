// Package http provides HTTP handlers for customer management.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	customerDomain "github.com/allisson/inventory/internal/customer/domain"
	"github.com/allisson/inventory/internal/customer/http/dto"
	customerUseCase "github.com/allisson/inventory/internal/customer/usecase"
	"github.com/allisson/inventory/internal/httputil"
	customValidation "github.com/allisson/inventory/internal/validation"
)

// CustomerHandler handles HTTP requests for customer management operations.
type CustomerHandler struct {
	customerUseCase customerUseCase.CustomerUseCase
	logger          *slog.Logger
}

// NewCustomerHandler creates a new customer handler with required dependencies.
func NewCustomerHandler(useCase customerUseCase.CustomerUseCase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerUseCase: useCase,
		logger:          logger,
	}
}

// parseID parses the :id path parameter as an int64.
func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id format: must be an integer")
	}
	return id, nil
}

// CreateHandler registers a new customer.
// POST /v1/customers - Returns 201 Created with the customer data.
func (h *CustomerHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateCustomerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &customerDomain.CreateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Company: req.Company,
	}

	customer, err := h.customerUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapCustomerToResponse(customer))
}

// GetHandler retrieves a customer by ID.
// GET /v1/customers/:id - Returns 200 OK with the customer data.
func (h *CustomerHandler) GetHandler(c *gin.Context) {
	customerID, err := parseID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	customer, err := h.customerUseCase.Get(c.Request.Context(), customerID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCustomerToResponse(customer))
}

// ListHandler retrieves customers with pagination.
// GET /v1/customers?offset=0&limit=50 - Returns 200 OK with the customer list.
func (h *CustomerHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	customers, err := h.customerUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCustomersToListResponse(customers))
}

// UpdateHandler applies a partial update to an existing customer.
// PUT /v1/customers/:id - Returns 200 OK with the updated customer data.
func (h *CustomerHandler) UpdateHandler(c *gin.Context) {
	customerID, err := parseID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateCustomerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &customerDomain.UpdateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Company: req.Company,
	}

	customer, err := h.customerUseCase.Update(c.Request.Context(), customerID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCustomerToResponse(customer))
}

// DeleteHandler removes a customer.
// DELETE /v1/customers/:id - Returns 204 No Content.
func (h *CustomerHandler) DeleteHandler(c *gin.Context) {
	customerID, err := parseID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.customerUseCase.Delete(c.Request.Context(), customerID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
