package service

import (
	"math"
	"sort"
	"time"

	"github.com/dafibh/loanboard/loanboard-backend/internal/domain"
)

// ViewState is the dashboard state the browser holds and sends with each request
type ViewState struct {
	SearchTerm         string
	Status             domain.StatusFilter
	SelectedCustomerID int64
}

// Filter returns the collection filter for this view
func (v ViewState) Filter() domain.Filter {
	return domain.Filter{SearchTerm: v.SearchTerm, Status: v.Status}
}

// Reasons the customer list can be empty
const (
	EmptyReasonNoCustomers = "no_customers"
	EmptyReasonNoMatches   = "no_matches"
)

// DashboardView is everything the dashboard page renders
type DashboardView struct {
	Stats        domain.Stats     `json:"stats"`
	Customers    []CustomerCard   `json:"customers"`
	TotalMatches int              `json:"totalMatches"`
	LoadedAt     time.Time        `json:"loadedAt"`
	EmptyReason  string           `json:"emptyReason,omitempty"`
	Selected     *CustomerDetails `json:"selected,omitempty"`
}

// ProgressView carries a percentage both formatted and as a number.
// Value and BarWidth are nil when the percentage is not finite.
type ProgressView struct {
	Text     string   `json:"text"`
	Value    *float64 `json:"value"`
	BarWidth *float64 `json:"barWidth"`
}

func newProgressView(p float64) ProgressView {
	return ProgressView{
		Text:     domain.FormatProgress(p),
		Value:    finite(p),
		BarWidth: finite(domain.ProgressBarWidth(p)),
	}
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// CustomerCard is one row of the customer list
type CustomerCard struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Mobile        string        `json:"mobile"`
	LoanNo        string        `json:"loanNo"`
	LoanAmount    int64         `json:"loanAmount"`
	TotalPaid     int64         `json:"totalPaid"`
	Remaining     int64         `json:"remaining"`
	Progress      ProgressView  `json:"progress"`
	Status        domain.Status `json:"status"`
	StatusColor   domain.Color  `json:"statusColor"`
	CanAddPayment bool          `json:"canAddPayment"`
}

func newCustomerCard(c domain.Customer) CustomerCard {
	m := c.Metrics()
	status := m.Status()
	return CustomerCard{
		ID:            c.ID,
		Name:          c.Name,
		Mobile:        c.Mobile,
		LoanNo:        c.LoanNo,
		LoanAmount:    c.LoanAmount,
		TotalPaid:     m.TotalPaid,
		Remaining:     m.Remaining,
		Progress:      newProgressView(m.ProgressPercentage),
		Status:        status,
		StatusColor:   domain.StatusColor(status),
		CanAddPayment: m.Remaining > 0,
	}
}

// MonthlyRow is one month of the payment breakdown
type MonthlyRow struct {
	Month  domain.MonthKey `json:"month"`
	Label  string          `json:"label"`
	Amount int64           `json:"amount"`
}

// Where a detail summary came from
const (
	SummarySourceBackend = "backend"
	SummarySourceLocal   = "local"
)

// CustomerDetails is the customer detail page
type CustomerDetails struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Address       string           `json:"address,omitempty"`
	Mobile        string           `json:"mobile,omitempty"`
	LoanNo        string           `json:"loanNo,omitempty"`
	LoanAmount    int64            `json:"loanAmount"`
	TotalPaid     int64            `json:"totalPaid"`
	Remaining     int64            `json:"remaining"`
	Progress      ProgressView     `json:"progress"`
	Status        domain.Status    `json:"status"`
	StatusColor   domain.Color     `json:"statusColor"`
	CanAddPayment bool             `json:"canAddPayment"`
	MonthlyTotals []MonthlyRow     `json:"monthlyTotals"`
	Payments      []domain.Payment `json:"payments"`
	SummarySource string           `json:"summarySource"`
}

func newCustomerDetails(id int64, c domain.Customer, known bool, summary *domain.CustomerSummary, payments []domain.Payment, source string) *CustomerDetails {
	m := summary.Metrics()
	status := m.Status()

	d := &CustomerDetails{
		ID:            id,
		Name:          summary.Customer,
		LoanAmount:    summary.LoanAmount,
		TotalPaid:     m.TotalPaid,
		Remaining:     m.Remaining,
		Progress:      newProgressView(m.ProgressPercentage),
		Status:        status,
		StatusColor:   domain.StatusColor(status),
		CanAddPayment: m.Remaining > 0,
		MonthlyTotals: []MonthlyRow{},
		Payments:      sortNewestFirst(payments),
		SummarySource: source,
	}
	if known {
		d.Address = c.Address
		d.Mobile = c.Mobile
		d.LoanNo = c.LoanNo
		if d.Name == "" {
			d.Name = c.Name
		}
	}
	for _, mt := range summary.MonthlyTotals.Sorted() {
		d.MonthlyTotals = append(d.MonthlyTotals, MonthlyRow{
			Month:  mt.Month,
			Label:  domain.MonthLabel(mt.Month),
			Amount: mt.Amount,
		})
	}
	return d
}

func sortNewestFirst(payments []domain.Payment) []domain.Payment {
	out := append([]domain.Payment{}, payments...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
