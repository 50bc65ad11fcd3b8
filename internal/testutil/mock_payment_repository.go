package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/dafibh/loanboard/loanboard-backend/internal/domain"
)

// MockPaymentRepository records payments onto a MockCustomerRepository so a
// following reload sees them
type MockPaymentRepository struct {
	mu        sync.Mutex
	customers *MockCustomerRepository
	nextID    int64
	now       func() time.Time

	CreateErr   error
	CreateCalls int
}

func NewMockPaymentRepository(customers *MockCustomerRepository) *MockPaymentRepository {
	return &MockPaymentRepository{
		customers: customers,
		nextID:    1,
		now:       time.Now,
	}
}

func (m *MockPaymentRepository) Create(ctx context.Context, input domain.CreatePaymentInput) (*domain.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}

	if m.customers != nil {
		if _, ok := m.customers.lookup(input.CustomerID); !ok {
			return nil, domain.ErrNotFound
		}
	}

	p := domain.Payment{
		ID:         m.nextID,
		CustomerID: input.CustomerID,
		Amount:     input.Amount,
		Date:       m.now().UTC(),
	}
	m.nextID++
	if m.customers != nil {
		m.customers.AddPayment(p)
	}
	return &p, nil
}
