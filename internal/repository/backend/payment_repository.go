package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dafibh/loanboard/loanboard-backend/internal/domain"
)

// Ensure PaymentRepository implements domain.PaymentRepository
var _ domain.PaymentRepository = (*PaymentRepository)(nil)

// PaymentRepository records payments through the loan backend
type PaymentRepository struct {
	client *Client
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(client *Client) *PaymentRepository {
	return &PaymentRepository{client: client}
}

// Create records a payment; the backend stamps its date
func (r *PaymentRepository) Create(ctx context.Context, input domain.CreatePaymentInput) (*domain.Payment, error) {
	var dto paymentDTO
	req := createPaymentRequest{CustomerID: input.CustomerID, Amount: input.Amount}
	if err := r.client.do(ctx, "create_payment", http.MethodPost, "/payments", req, &dto); err != nil {
		return nil, err
	}

	p, err := dto.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err)
	}
	return &p, nil
}
