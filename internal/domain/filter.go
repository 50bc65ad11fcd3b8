package domain

import (
	"fmt"
	"strings"
)

// StatusFilter selects customers by whether their loan is settled
type StatusFilter string

const (
	StatusFilterAll       StatusFilter = "all"
	StatusFilterActive    StatusFilter = "active"
	StatusFilterCompleted StatusFilter = "completed"
)

// ParseStatusFilter accepts all, active or completed (any case). Empty means all.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch f := StatusFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return StatusFilterAll, nil
	case StatusFilterAll, StatusFilterActive, StatusFilterCompleted:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unknown status filter %q", ErrInvalidInput, s)
	}
}

// Matches tests a loan's remaining balance against the filter
func (f StatusFilter) Matches(remaining int64) bool {
	switch f {
	case StatusFilterActive:
		return remaining > 0
	case StatusFilterCompleted:
		return remaining <= 0
	default:
		return true
	}
}

// Filter is the dashboard's search box and status toggle
type Filter struct {
	SearchTerm string
	Status     StatusFilter
}

// Matches is the AND of the search and status predicates
func (f Filter) Matches(c Customer) bool {
	if !MatchesSearch(c, f.SearchTerm) {
		return false
	}
	if f.Status == "" || f.Status == StatusFilterAll {
		return true
	}
	return f.Status.Matches(c.Metrics().Remaining)
}

// MatchesSearch checks name and loan number case-insensitively and the
// mobile number as a plain substring
func MatchesSearch(c Customer, term string) bool {
	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.Name), lower) ||
		strings.Contains(strings.ToLower(c.LoanNo), lower) ||
		strings.Contains(c.Mobile, term)
}

// FilterCustomers returns the matching customers in their original order.
// The input slice is left untouched.
func FilterCustomers(customers []Customer, f Filter) []Customer {
	out := make([]Customer, 0, len(customers))
	for _, c := range customers {
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}
