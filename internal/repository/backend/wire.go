package backend

import (
	"fmt"
	"strings"
	"time"

	"github.com/dafibh/loanboard/loanboard-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// Wire shapes of the loan backend. Dates arrive as strings that may lack a
// zone, and month keys may be unpadded ("2025-3"), so both are parsed here.

type customerDTO struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	Address    string       `json:"address"`
	Mobile     string       `json:"mobile"`
	LoanNo     string       `json:"loanNo"`
	LoanAmount int64        `json:"loanAmount"`
	Payments   []paymentDTO `json:"payments"`
}

type paymentDTO struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customerId"`
	Amount     int64  `json:"amount"`
	Date       string `json:"date"`
}

type summaryDTO struct {
	Customer      string           `json:"customer"`
	LoanAmount    int64            `json:"loanAmount"`
	TotalPaid     int64            `json:"totalPaid"`
	Remaining     int64            `json:"remaining"`
	MonthlyTotals map[string]int64 `json:"monthlyTotals"`
}

type createPaymentRequest struct {
	CustomerID int64 `json:"customerId"`
	Amount     int64 `json:"amount"`
}

// dateLayouts are tried in order; zone-less layouts parse as UTC
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized payment date %q", s)
}

func (d paymentDTO) toDomain() (domain.Payment, error) {
	date, err := parseDate(d.Date)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("payment %d: %w", d.ID, err)
	}
	return domain.Payment{
		ID:         d.ID,
		CustomerID: d.CustomerID,
		Amount:     d.Amount,
		Date:       date,
	}, nil
}

func toPayments(dtos []paymentDTO) ([]domain.Payment, error) {
	if dtos == nil {
		return nil, nil
	}
	out := make([]domain.Payment, 0, len(dtos))
	for _, d := range dtos {
		p, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (d customerDTO) toDomain() (domain.Customer, error) {
	payments, err := toPayments(d.Payments)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("customer %d: %w", d.ID, err)
	}
	return domain.Customer{
		ID:         d.ID,
		Name:       d.Name,
		Address:    d.Address,
		Mobile:     d.Mobile,
		LoanNo:     d.LoanNo,
		LoanAmount: d.LoanAmount,
		Payments:   payments,
	}, nil
}

// toDomain folds keys naming the same month ("2025-3" and "2025-03") into one
// bucket and drops keys that are not months.
func (d summaryDTO) toDomain() *domain.CustomerSummary {
	totals := make(domain.MonthlyTotals, len(d.MonthlyTotals))
	for raw, amount := range d.MonthlyTotals {
		key, err := domain.ParseMonthKey(raw)
		if err != nil {
			log.Warn().Err(err).Str("key", raw).Msg("Skipping malformed monthly total")
			continue
		}
		totals[key] += amount
	}
	return &domain.CustomerSummary{
		Customer:      d.Customer,
		LoanAmount:    d.LoanAmount,
		TotalPaid:     d.TotalPaid,
		Remaining:     d.Remaining,
		MonthlyTotals: totals,
	}
}
