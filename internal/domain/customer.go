package domain

import (
	"context"
	"strings"
	"time"
)

// Customer holds a single loan and the payments made against it.
// Payments is nil when the backend listing omits them.
type Customer struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address,omitempty"`
	Mobile     string    `json:"mobile"`
	LoanNo     string    `json:"loanNo"`
	LoanAmount int64     `json:"loanAmount"`
	Payments   []Payment `json:"payments,omitempty"`
}

// Metrics derives the repayment figures from the embedded payments
func (c Customer) Metrics() Metrics {
	return Calculate(c.LoanAmount, c.Payments)
}

// Payment is a single credit applied to a customer's loan
type Payment struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	Amount     int64     `json:"amount"`
	Date       time.Time `json:"date"`
}

// CustomerSummary is the backend's authoritative view of one loan
type CustomerSummary struct {
	Customer      string        `json:"customer"`
	LoanAmount    int64         `json:"loanAmount"`
	TotalPaid     int64         `json:"totalPaid"`
	Remaining     int64         `json:"remaining"`
	MonthlyTotals MonthlyTotals `json:"monthlyTotals"`
}

// Metrics derives progress and status from the summary's own figures.
// Remaining is taken as reported, not recomputed.
func (s CustomerSummary) Metrics() Metrics {
	return Metrics{
		TotalPaid:          s.TotalPaid,
		Remaining:          s.Remaining,
		ProgressPercentage: progress(s.TotalPaid, s.LoanAmount),
	}
}

// Summarize rebuilds a summary locally from a customer and its payments
func Summarize(c Customer, payments []Payment) *CustomerSummary {
	m := Calculate(c.LoanAmount, payments)
	return &CustomerSummary{
		Customer:      c.Name,
		LoanAmount:    c.LoanAmount,
		TotalPaid:     m.TotalPaid,
		Remaining:     m.Remaining,
		MonthlyTotals: AggregateMonthly(payments),
	}
}

// CreateCustomerInput holds the fields of the add-customer form
type CreateCustomerInput struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	Mobile     string `json:"mobile"`
	LoanNo     string `json:"loanNo"`
	LoanAmount int64  `json:"loanAmount"`
}

// Normalize trims surrounding whitespace from the text fields
func (in CreateCustomerInput) Normalize() CreateCustomerInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	in.Mobile = strings.TrimSpace(in.Mobile)
	in.LoanNo = strings.TrimSpace(in.LoanNo)
	return in
}

// Validate reports every missing or invalid field. Address is optional.
func (in CreateCustomerInput) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Err: ErrCustomerNameRequired})
	}
	if strings.TrimSpace(in.Mobile) == "" {
		errs = append(errs, FieldError{Field: "mobile", Err: ErrCustomerMobileRequired})
	}
	if strings.TrimSpace(in.LoanNo) == "" {
		errs = append(errs, FieldError{Field: "loanNo", Err: ErrCustomerLoanNoRequired})
	}
	if in.LoanAmount <= 0 {
		errs = append(errs, FieldError{Field: "loanAmount", Err: ErrLoanAmountInvalid})
	}
	return errs.orNil()
}

// CreatePaymentInput holds the fields of the add-payment form
type CreatePaymentInput struct {
	CustomerID int64 `json:"customerId"`
	Amount     int64 `json:"amount"`
}

func (in CreatePaymentInput) Validate() error {
	var errs ValidationErrors
	if in.CustomerID <= 0 {
		errs = append(errs, FieldError{Field: "customerId", Err: ErrCustomerIDRequired})
	}
	if in.Amount <= 0 {
		errs = append(errs, FieldError{Field: "amount", Err: ErrPaymentAmountInvalid})
	}
	return errs.orNil()
}

// CustomerRepository is the customer side of the loan backend
type CustomerRepository interface {
	List(ctx context.Context) ([]Customer, error)
	Create(ctx context.Context, input CreateCustomerInput) (*Customer, error)
	GetSummary(ctx context.Context, customerID int64) (*CustomerSummary, error)
	GetPayments(ctx context.Context, customerID int64) ([]Payment, error)
}

// PaymentRepository is the payment side of the loan backend
type PaymentRepository interface {
	Create(ctx context.Context, input CreatePaymentInput) (*Payment, error)
}
