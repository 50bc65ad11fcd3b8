package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dafibh/loanboard/loanboard-backend/internal/domain"
	"github.com/dafibh/loanboard/loanboard-backend/internal/service"
	"github.com/dafibh/loanboard/loanboard-backend/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	e            *echo.Echo
	customerRepo *testutil.MockCustomerRepository
	paymentRepo  *testutil.MockPaymentRepository
	service      *service.DashboardService
}

func newTestEnv() *testEnv {
	customerRepo := testutil.NewMockCustomerRepository()
	paymentRepo := testutil.NewMockPaymentRepository(customerRepo)
	return &testEnv{
		e:            echo.New(),
		customerRepo: customerRepo,
		paymentRepo:  paymentRepo,
		service:      service.NewDashboardService(customerRepo, paymentRepo, service.NewCustomerStore()),
	}
}

func (env *testEnv) seed() {
	paid := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	env.customerRepo.AddCustomer(domain.Customer{
		ID: 1, Name: "Asha Rao", Mobile: "9876543210", LoanNo: "LN-001", LoanAmount: 10000,
		Payments: []domain.Payment{
			{ID: 1, CustomerID: 1, Amount: 3000, Date: paid},
			{ID: 2, CustomerID: 1, Amount: 2000, Date: paid.AddDate(0, 1, 0)},
		},
	})
	env.customerRepo.AddCustomer(domain.Customer{
		ID: 2, Name: "Ravi Kumar", Mobile: "9123456780", LoanNo: "LN-002", LoanAmount: 5000,
		Payments: []domain.Payment{{ID: 3, CustomerID: 2, Amount: 5000, Date: paid}},
	})
}

// context builds an echo context; params are name/value pairs
func (env *testEnv) context(method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	return c, rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func (env *testEnv) newCustomer(id int64, name string) domain.Customer {
	return domain.Customer{ID: id, Name: name, Mobile: "9000000000", LoanNo: "LN-00" + name[:1], LoanAmount: 1000}
}
