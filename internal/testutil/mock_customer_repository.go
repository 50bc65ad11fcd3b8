package testutil

import (
	"context"
	"sync"

	"github.com/dafibh/loanboard/loanboard-backend/internal/domain"
)

// MockCustomerRepository is an in-memory domain.CustomerRepository.
// Set the *Err fields to make the matching call fail.
type MockCustomerRepository struct {
	mu        sync.Mutex
	customers []domain.Customer
	summaries map[int64]*domain.CustomerSummary
	nextID    int64

	ListErr        error
	CreateErr      error
	GetSummaryErr  error
	GetPaymentsErr error

	// ListHook runs inside List before it returns, for ordering tests
	ListHook func(call int)

	ListCalls   int
	CreateCalls int
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{
		summaries: make(map[int64]*domain.CustomerSummary),
		nextID:    1,
	}
}

// AddCustomer seeds a customer; payments are kept on the customer
func (m *MockCustomerRepository) AddCustomer(c domain.Customer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers = append(m.customers, c)
	if c.ID >= m.nextID {
		m.nextID = c.ID + 1
	}
}

// AddPayment appends a payment to an existing customer
func (m *MockCustomerRepository) AddPayment(p domain.Payment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.customers {
		if m.customers[i].ID == p.CustomerID {
			m.customers[i].Payments = append(m.customers[i].Payments, p)
			return
		}
	}
}

// SetSummary overrides the summary served for a customer
func (m *MockCustomerRepository) SetSummary(customerID int64, s *domain.CustomerSummary) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summaries[customerID] = s
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	m.mu.Lock()
	m.ListCalls++
	call := m.ListCalls
	err := m.ListErr
	out := make([]domain.Customer, len(m.customers))
	for i, c := range m.customers {
		c.Payments = append([]domain.Payment(nil), c.Payments...)
		out[i] = c
	}
	hook := m.ListHook
	m.mu.Unlock()

	if hook != nil {
		hook(call)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MockCustomerRepository) Create(ctx context.Context, input domain.CreateCustomerInput) (*domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}

	c := domain.Customer{
		ID:         m.nextID,
		Name:       input.Name,
		Address:    input.Address,
		Mobile:     input.Mobile,
		LoanNo:     input.LoanNo,
		LoanAmount: input.LoanAmount,
	}
	m.nextID++
	m.customers = append(m.customers, c)
	return &c, nil
}

// GetSummary serves an explicit summary when one was set, otherwise it
// derives one from the seeded payments
func (m *MockCustomerRepository) GetSummary(ctx context.Context, customerID int64) (*domain.CustomerSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetSummaryErr != nil {
		return nil, m.GetSummaryErr
	}
	if s, ok := m.summaries[customerID]; ok {
		return s, nil
	}
	c, ok := m.find(customerID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return domain.Summarize(c, c.Payments), nil
}

func (m *MockCustomerRepository) GetPayments(ctx context.Context, customerID int64) ([]domain.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPaymentsErr != nil {
		return nil, m.GetPaymentsErr
	}
	c, ok := m.find(customerID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]domain.Payment{}, c.Payments...), nil
}

func (m *MockCustomerRepository) find(id int64) (domain.Customer, bool) {
	for _, c := range m.customers {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Customer{}, false
}

func (m *MockCustomerRepository) lookup(id int64) (domain.Customer, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.find(id)
}
