package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dafibh/loanboard/loanboard-backend/internal/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", 2*time.Second)
}

func TestCustomerRepository_List(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/customers", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1,"name":"Ravi","address":"Pune","mobile":"98765","loanNo":"LN-1","loanAmount":10000,
			 "payments":[{"id":11,"customerId":1,"amount":3000,"date":"2025-01-15T10:30:00"},
			             {"id":12,"customerId":1,"amount":2000,"date":"2025-02-01T08:00:00Z"}]},
			{"id":2,"name":"Anita","mobile":"91234","loanNo":"LN-2","loanAmount":5000}
		]`))
	})
	repo := NewCustomerRepository(client)

	customers, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)

	assert.Equal(t, "Ravi", customers[0].Name)
	require.Len(t, customers[0].Payments, 2)
	assert.Equal(t, time.Date(2025, time.January, 15, 10, 30, 0, 0, time.UTC), customers[0].Payments[0].Date)
	assert.Equal(t, int64(5000), customers[0].Metrics().TotalPaid)

	assert.Nil(t, customers[1].Payments)
	assert.Equal(t, int64(5000), customers[1].Metrics().Remaining)
}

func TestCustomerRepository_Create(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ravi", body["name"])
		assert.Equal(t, "LN-1", body["loanNo"])
		assert.Equal(t, float64(10000), body["loanAmount"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":9,"name":"Ravi","mobile":"98765","loanNo":"LN-1","loanAmount":10000}`))
	})
	repo := NewCustomerRepository(client)

	c, err := repo.Create(context.Background(), domain.CreateCustomerInput{
		Name: "Ravi", Mobile: "98765", LoanNo: "LN-1", LoanAmount: 10000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), c.ID)
}

func TestCustomerRepository_GetSummary(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/7/summary", r.URL.Path)
		w.Write([]byte(`{"customer":"Ravi","loanAmount":10000,"totalPaid":5000,"remaining":5000,
			"monthlyTotals":{"2025-1":3000,"2025-01":500,"2025-2":1500,"bogus":1}}`))
	})
	repo := NewCustomerRepository(client)

	s, err := repo.GetSummary(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "Ravi", s.Customer)
	assert.Equal(t, int64(5000), s.Remaining)
	assert.Equal(t, domain.MonthlyTotals{
		{Year: 2025, Month: time.January}:  3500,
		{Year: 2025, Month: time.February}: 1500,
	}, s.MonthlyTotals)
}

func TestCustomerRepository_GetPayments_EmptyList(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/3/payments", r.URL.Path)
		w.Write([]byte(`[]`))
	})
	repo := NewCustomerRepository(client)

	payments, err := repo.GetPayments(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, payments)
	assert.Empty(t, payments)
}

func TestCustomerRepository_NotFound(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"customer not found"}`, http.StatusNotFound)
	})
	repo := NewCustomerRepository(client)

	_, err := repo.GetSummary(context.Background(), 404)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestCustomerRepository_ServerError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	repo := NewCustomerRepository(client)

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerRepository_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	repo := NewCustomerRepository(NewClient(url, time.Second))

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestCustomerRepository_BadDate(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"customerId":1,"amount":10,"date":"yesterday"}]`))
	})
	repo := NewCustomerRepository(client)

	_, err := repo.GetPayments(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestPaymentRepository_Create(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments", r.URL.Path)

		var body createPaymentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, createPaymentRequest{CustomerID: 4, Amount: 2500}, body)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":31,"customerId":4,"amount":2500,"date":"2025-03-09"}`))
	})
	repo := NewPaymentRepository(client)

	p, err := repo.Create(context.Background(), domain.CreatePaymentInput{CustomerID: 4, Amount: 2500})
	require.NoError(t, err)
	assert.Equal(t, int64(31), p.ID)
	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC), p.Date)
}

func TestBackendMetrics(t *testing.T) {
	backendRequestsTotal.Reset()

	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	repo := NewCustomerRepository(client)

	_, err := repo.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(backendRequestsTotal.WithLabelValues("list_customers", "success")))
	assert.Equal(t, float64(0), testutil.ToFloat64(backendRequestsTotal.WithLabelValues("list_customers", "error")))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2025-01-15T10:30:00Z", time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"2025-01-15T10:30:00.123", time.Date(2025, 1, 15, 10, 30, 0, 123000000, time.UTC)},
		{"2025-01-15 10:30:00", time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"2025-01-15", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}
