package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/dafibh/loanboard/loanboard-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomer_Success(t *testing.T) {
	env := newTestEnv()
	h := NewCustomerHandler(env.service)

	body := `{"name":" Meena ","address":"12 Park Road","mobile":"9000000000","loanNo":"LN-010","loanAmount":8000}`
	c, rec := env.context(http.MethodPost, "/api/v1/customers", body)

	require.NoError(t, h.CreateCustomer(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	customer := decode[domain.Customer](t, rec)
	assert.Equal(t, int64(1), customer.ID)
	assert.Equal(t, "Meena", customer.Name)
	assert.Equal(t, int64(8000), customer.LoanAmount)
	assert.Equal(t, 1, env.customerRepo.CreateCalls)
}

func TestCreateCustomer_ValidationErrors(t *testing.T) {
	env := newTestEnv()
	h := NewCustomerHandler(env.service)

	c, rec := env.context(http.MethodPost, "/api/v1/customers", `{"name":"","mobile":" ","loanNo":"LN-1","loanAmount":0}`)

	require.NoError(t, h.CreateCustomer(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	problem := decode[ProblemDetails](t, rec)
	assert.Equal(t, ErrorTypeValidation, problem.Type)
	assert.Equal(t, []ValidationError{
		{Field: "name", Message: domain.ErrCustomerNameRequired.Error()},
		{Field: "mobile", Message: domain.ErrCustomerMobileRequired.Error()},
		{Field: "loanAmount", Message: domain.ErrLoanAmountInvalid.Error()},
	}, problem.Errors)
	assert.Zero(t, env.customerRepo.CreateCalls)
}

func TestCreateCustomer_MalformedBody(t *testing.T) {
	env := newTestEnv()
	h := NewCustomerHandler(env.service)

	c, rec := env.context(http.MethodPost, "/api/v1/customers", `{"loanAmount":"lots"`)

	require.NoError(t, h.CreateCustomer(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, env.customerRepo.CreateCalls)
}

func TestCreateCustomer_BackendDown(t *testing.T) {
	env := newTestEnv()
	env.customerRepo.CreateErr = errors.New("503 from backend")
	h := NewCustomerHandler(env.service)

	c, rec := env.context(http.MethodPost, "/api/v1/customers", `{"name":"A","mobile":"1","loanNo":"L","loanAmount":1}`)

	require.NoError(t, h.CreateCustomer(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetCustomer_Success(t *testing.T) {
	env := newTestEnv()
	env.seed()
	h := NewCustomerHandler(env.service)

	c, rec := env.context(http.MethodGet, "/api/v1/customers/1", "", "id", "1")

	require.NoError(t, h.GetCustomer(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	details := decode[struct {
		Name          string `json:"name"`
		TotalPaid     int64  `json:"totalPaid"`
		Remaining     int64  `json:"remaining"`
		Status        string `json:"status"`
		MonthlyTotals []struct {
			Month  string `json:"month"`
			Label  string `json:"label"`
			Amount int64  `json:"amount"`
		} `json:"monthlyTotals"`
		Payments []domain.Payment `json:"payments"`
	}](t, rec)

	assert.Equal(t, "Asha Rao", details.Name)
	assert.Equal(t, int64(5000), details.TotalPaid)
	assert.Equal(t, int64(5000), details.Remaining)
	assert.Equal(t, "In Progress", details.Status)
	require.Len(t, details.MonthlyTotals, 2)
	assert.Equal(t, "2025-02", details.MonthlyTotals[0].Month)
	assert.Equal(t, "February 2025", details.MonthlyTotals[0].Label)
	require.Len(t, details.Payments, 2)
	assert.Equal(t, int64(2), details.Payments[0].ID)
}

func TestGetCustomer_NotFound(t *testing.T) {
	env := newTestEnv()
	env.seed()
	h := NewCustomerHandler(env.service)

	c, rec := env.context(http.MethodGet, "/api/v1/customers/99", "", "id", "99")

	require.NoError(t, h.GetCustomer(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ErrorTypeNotFound, decode[ProblemDetails](t, rec).Type)
}

func TestGetCustomer_InvalidID(t *testing.T) {
	env := newTestEnv()
	h := NewCustomerHandler(env.service)

	for _, id := range []string{"abc", "0", "-1"} {
		c, rec := env.context(http.MethodGet, "/api/v1/customers/"+id, "", "id", id)
		require.NoError(t, h.GetCustomer(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, id)
	}
}

func TestCreatePayment_Success(t *testing.T) {
	env := newTestEnv()
	env.seed()
	h := NewCustomerHandler(env.service)

	c, rec := env.context(http.MethodPost, "/api/v1/customers/1/payments", `{"amount":5000}`, "id", "1")

	require.NoError(t, h.CreatePayment(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	payment := decode[domain.Payment](t, rec)
	assert.Equal(t, int64(1), payment.CustomerID)
	assert.Equal(t, int64(5000), payment.Amount)

	c, rec = env.context(http.MethodGet, "/api/v1/customers/1", "", "id", "1")
	require.NoError(t, h.GetCustomer(c))
	details := decode[struct {
		Status        string `json:"status"`
		CanAddPayment bool   `json:"canAddPayment"`
	}](t, rec)
	assert.Equal(t, "Fully Paid", details.Status)
	assert.False(t, details.CanAddPayment)
}

func TestCreatePayment_InvalidAmount(t *testing.T) {
	env := newTestEnv()
	env.seed()
	h := NewCustomerHandler(env.service)

	for _, body := range []string{`{"amount":0}`, `{"amount":-10}`, `{}`} {
		c, rec := env.context(http.MethodPost, "/api/v1/customers/1/payments", body, "id", "1")
		require.NoError(t, h.CreatePayment(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)

		problem := decode[ProblemDetails](t, rec)
		require.Len(t, problem.Errors, 1)
		assert.Equal(t, "amount", problem.Errors[0].Field)
	}
	assert.Zero(t, env.paymentRepo.CreateCalls)
}

func TestCreatePayment_UnknownCustomer(t *testing.T) {
	env := newTestEnv()
	env.seed()
	h := NewCustomerHandler(env.service)

	c, rec := env.context(http.MethodPost, "/api/v1/customers/42/payments", `{"amount":100}`, "id", "42")

	require.NoError(t, h.CreatePayment(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreatePayment_BackendDown(t *testing.T) {
	env := newTestEnv()
	env.seed()
	env.paymentRepo.CreateErr = errors.New("reset by peer")
	h := NewCustomerHandler(env.service)

	c, rec := env.context(http.MethodPost, "/api/v1/customers/1/payments", `{"amount":100}`, "id", "1")

	require.NoError(t, h.CreatePayment(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
