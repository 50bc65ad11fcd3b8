package handler

import (
	"net/http"
	"strconv"

	"github.com/dafibh/loanboard/loanboard-backend/internal/domain"
	"github.com/dafibh/loanboard/loanboard-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// CustomerHandler handles customer and payment requests
type CustomerHandler struct {
	dashboardService *service.DashboardService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(dashboardService *service.DashboardService) *CustomerHandler {
	return &CustomerHandler{dashboardService: dashboardService}
}

// CreateCustomerRequest represents the add-customer form
type CreateCustomerRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	Mobile     string `json:"mobile"`
	LoanNo     string `json:"loanNo"`
	LoanAmount int64  `json:"loanAmount"`
}

// CreatePaymentRequest represents the add-payment form
type CreatePaymentRequest struct {
	Amount int64 `json:"amount"`
}

// CreateCustomer godoc
// @Summary Create a customer
// @Description Registers a new customer and loan with the loan backend
// @Tags customers
// @Accept json
// @Produce json
// @Param request body CreateCustomerRequest true "Customer creation request"
// @Success 201 {object} domain.Customer
// @Failure 400 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	customer, err := h.dashboardService.CreateCustomer(c.Request().Context(), domain.CreateCustomerInput{
		Name:       req.Name,
		Address:    req.Address,
		Mobile:     req.Mobile,
		LoanNo:     req.LoanNo,
		LoanAmount: req.LoanAmount,
	})
	if err != nil {
		return respondError(c, err, "Customer not found", "Failed to create customer")
	}

	return c.JSON(http.StatusCreated, customer)
}

// GetCustomer godoc
// @Summary Customer details
// @Description Summary, monthly breakdown and payment history of one customer
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} service.CustomerDetails
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, err := customerID(c)
	if err != nil {
		return NewValidationError(c, "Invalid customer ID", nil)
	}

	details, err := h.dashboardService.CustomerDetails(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "Customer not found", "Failed to load customer")
	}

	return c.JSON(http.StatusOK, details)
}

// CreatePayment godoc
// @Summary Record a payment
// @Description Records a payment against a customer's loan
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param request body CreatePaymentRequest true "Payment request"
// @Success 201 {object} domain.Payment
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /customers/{id}/payments [post]
func (h *CustomerHandler) CreatePayment(c echo.Context) error {
	id, err := customerID(c)
	if err != nil {
		return NewValidationError(c, "Invalid customer ID", nil)
	}

	var req CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	payment, err := h.dashboardService.CreatePayment(c.Request().Context(), domain.CreatePaymentInput{
		CustomerID: id,
		Amount:     req.Amount,
	})
	if err != nil {
		return respondError(c, err, "Customer not found", "Failed to record payment")
	}

	return c.JSON(http.StatusCreated, payment)
}

func customerID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}
