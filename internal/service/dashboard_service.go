package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dafibh/loanboard/loanboard-backend/internal/domain"
	"github.com/dafibh/loanboard/loanboard-backend/internal/websocket"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// DashboardService owns the in-memory customer collection and the
// operations the dashboard performs against the loan backend
type DashboardService struct {
	customerRepo   domain.CustomerRepository
	paymentRepo    domain.PaymentRepository
	store          *CustomerStore
	eventPublisher websocket.EventPublisher
	now            func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	customerRepo domain.CustomerRepository,
	paymentRepo domain.PaymentRepository,
	store *CustomerStore,
) *DashboardService {
	return &DashboardService{
		customerRepo: customerRepo,
		paymentRepo:  paymentRepo,
		store:        store,
		now:          time.Now,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *DashboardService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// publishEvent publishes a WebSocket event if a publisher is configured
func (s *DashboardService) publishEvent(topic string, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(topic, event)
	}
}

// Reload fetches the full customer list and replaces the collection.
// On failure the previous collection stays in place.
func (s *DashboardService) Reload(ctx context.Context) error {
	gen := s.store.Begin()

	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		log.Error().Err(err).Uint64("generation", gen).Msg("Failed to reload customers")
		return wrapBackend("reload customers", err)
	}

	if !s.store.Apply(gen, customers, s.now().UTC()) {
		log.Debug().Uint64("generation", gen).Msg("Discarded stale customer list")
		return nil
	}

	s.publishEvent(websocket.TopicDashboard, websocket.CustomersReloaded(map[string]interface{}{
		"count":      len(customers),
		"generation": gen,
	}))
	return nil
}

// Dashboard filters the collection for the given view and computes the
// book-wide statistics. The first call loads the collection.
func (s *DashboardService) Dashboard(ctx context.Context, view ViewState) (*DashboardView, error) {
	if !s.store.Loaded() {
		if err := s.Reload(ctx); err != nil {
			return nil, err
		}
	}

	customers, loadedAt, _ := s.store.Snapshot()
	matches := domain.FilterCustomers(customers, view.Filter())

	result := &DashboardView{
		Stats:        domain.ComputeStats(customers),
		Customers:    make([]CustomerCard, 0, len(matches)),
		TotalMatches: len(matches),
		LoadedAt:     loadedAt,
	}
	for _, c := range matches {
		result.Customers = append(result.Customers, newCustomerCard(c))
	}

	switch {
	case len(customers) == 0:
		result.EmptyReason = EmptyReasonNoCustomers
	case len(matches) == 0:
		result.EmptyReason = EmptyReasonNoMatches
	}

	if view.SelectedCustomerID > 0 {
		details, err := s.CustomerDetails(ctx, view.SelectedCustomerID)
		if err != nil {
			return nil, err
		}
		result.Selected = details
	}

	return result, nil
}

// CustomerDetails fetches a customer's summary and payment history in
// parallel. When the backend has no summary for a customer it still lists,
// the summary is rebuilt from the payments.
func (s *DashboardService) CustomerDetails(ctx context.Context, customerID int64) (*CustomerDetails, error) {
	if customerID <= 0 {
		return nil, domain.ValidationErrors{{Field: "id", Err: domain.ErrCustomerIDRequired}}
	}

	var (
		summary        *domain.CustomerSummary
		payments       []domain.Payment
		summaryMissing bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sum, err := s.customerRepo.GetSummary(gctx, customerID)
		if errors.Is(err, domain.ErrNotFound) {
			summaryMissing = true
			return nil
		}
		if err != nil {
			return err
		}
		summary = sum
		return nil
	})
	g.Go(func() error {
		p, err := s.customerRepo.GetPayments(gctx, customerID)
		if err != nil {
			return err
		}
		payments = p
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Int64("customer_id", customerID).Msg("Failed to load customer details")
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("customer %d: %w", customerID, domain.ErrNotFound)
		}
		return nil, wrapBackend("load customer details", err)
	}

	customer, known := s.store.Find(customerID)
	source := SummarySourceBackend
	if summaryMissing {
		if !known {
			return nil, fmt.Errorf("customer %d: %w", customerID, domain.ErrNotFound)
		}
		log.Warn().Int64("customer_id", customerID).Msg("Summary unavailable, computing from payments")
		summary = domain.Summarize(customer, payments)
		source = SummarySourceLocal
	}

	return newCustomerDetails(customerID, customer, known, summary, payments, source), nil
}

// CreateCustomer validates the form, creates the customer and reloads the
// collection. A failed reload is logged; the customer was still created.
func (s *DashboardService) CreateCustomer(ctx context.Context, input domain.CreateCustomerInput) (*domain.Customer, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.Create(ctx, input)
	if err != nil {
		log.Error().Err(err).Str("loan_no", input.LoanNo).Msg("Failed to create customer")
		return nil, wrapBackend("create customer", err)
	}

	if err := s.Reload(ctx); err != nil {
		log.Warn().Err(err).Int64("customer_id", customer.ID).Msg("Customer created but reload failed")
	}

	s.publishEvent(websocket.TopicDashboard, websocket.CustomerCreated(customer))
	return customer, nil
}

// CreatePayment validates the form, records the payment and reloads the
// collection so every derived figure reflects it.
func (s *DashboardService) CreatePayment(ctx context.Context, input domain.CreatePaymentInput) (*domain.Payment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.Create(ctx, input)
	if err != nil {
		log.Error().Err(err).Int64("customer_id", input.CustomerID).Msg("Failed to create payment")
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("customer %d: %w", input.CustomerID, domain.ErrNotFound)
		}
		return nil, wrapBackend("create payment", err)
	}

	if err := s.Reload(ctx); err != nil {
		log.Warn().Err(err).Int64("payment_id", payment.ID).Msg("Payment created but reload failed")
	}

	s.publishEvent(websocket.TopicDashboard, websocket.PaymentCreated(payment))
	s.publishEvent(websocket.CustomerTopic(payment.CustomerID), websocket.PaymentCreated(payment))
	return payment, nil
}

// wrapBackend makes sure a collaborator failure matches ErrBackendUnavailable
func wrapBackend(op string, err error) error {
	if errors.Is(err, domain.ErrBackendUnavailable) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrBackendUnavailable, err)
}
