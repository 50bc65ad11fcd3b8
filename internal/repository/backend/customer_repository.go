package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dafibh/loanboard/loanboard-backend/internal/domain"
)

// Ensure CustomerRepository implements domain.CustomerRepository
var _ domain.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository reads and creates customers through the loan backend
type CustomerRepository struct {
	client *Client
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(client *Client) *CustomerRepository {
	return &CustomerRepository{client: client}
}

// List fetches every customer, with payments when the backend embeds them
func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	var dtos []customerDTO
	if err := r.client.do(ctx, "list_customers", http.MethodGet, "/customers", nil, &dtos); err != nil {
		return nil, err
	}

	customers := make([]domain.Customer, 0, len(dtos))
	for _, d := range dtos {
		c, err := d.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err)
		}
		customers = append(customers, c)
	}
	return customers, nil
}

// Create registers a new customer
func (r *CustomerRepository) Create(ctx context.Context, input domain.CreateCustomerInput) (*domain.Customer, error) {
	var dto customerDTO
	if err := r.client.do(ctx, "create_customer", http.MethodPost, "/customers", input, &dto); err != nil {
		return nil, err
	}

	c, err := dto.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err)
	}
	return &c, nil
}

// GetSummary fetches the backend's computed summary for one customer
func (r *CustomerRepository) GetSummary(ctx context.Context, customerID int64) (*domain.CustomerSummary, error) {
	var dto summaryDTO
	path := fmt.Sprintf("/customers/%d/summary", customerID)
	if err := r.client.do(ctx, "get_summary", http.MethodGet, path, nil, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}

// GetPayments fetches the payment list of one customer
func (r *CustomerRepository) GetPayments(ctx context.Context, customerID int64) ([]domain.Payment, error) {
	var dtos []paymentDTO
	path := fmt.Sprintf("/customers/%d/payments", customerID)
	if err := r.client.do(ctx, "get_payments", http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}

	payments, err := toPayments(dtos)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err)
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	return payments, nil
}
