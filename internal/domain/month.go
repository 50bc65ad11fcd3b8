package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// MonthKey identifies a calendar month. Its text form is YYYY-MM so that
// lexicographic and chronological order agree.
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthKeyOf truncates t to its calendar month in t's own location
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// ParseMonthKey accepts "2025-01" and the unpadded "2025-1"
func ParseMonthKey(s string) (MonthKey, error) {
	yearStr, monthStr, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return MonthKey{}, fmt.Errorf("invalid month key %q", s)
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return MonthKey{}, fmt.Errorf("invalid year in month key %q: %w", s, err)
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return MonthKey{}, fmt.Errorf("invalid month in month key %q: %w", s, err)
	}
	if month < 1 || month > 12 {
		return MonthKey{}, fmt.Errorf("month out of range in month key %q", s)
	}
	return MonthKey{Year: year, Month: time.Month(month)}, nil
}

func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// Before reports whether k is an earlier month than other
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

func (k MonthKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *MonthKey) UnmarshalText(text []byte) error {
	parsed, err := ParseMonthKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MonthlyTotals maps a month to the sum of payments dated in it.
// Months without payments are absent.
type MonthlyTotals map[MonthKey]int64

// AggregateMonthly groups payments by calendar month and sums each group
func AggregateMonthly(payments []Payment) MonthlyTotals {
	totals := make(MonthlyTotals)
	for _, p := range payments {
		totals[MonthKeyOf(p.Date)] += p.Amount
	}
	return totals
}

// Total sums every bucket
func (m MonthlyTotals) Total() int64 {
	var total int64
	for _, amount := range m {
		total += amount
	}
	return total
}

// MonthlyTotal is one bucket of MonthlyTotals
type MonthlyTotal struct {
	Month  MonthKey
	Amount int64
}

// Sorted returns the buckets most recent month first
func (m MonthlyTotals) Sorted() []MonthlyTotal {
	out := make([]MonthlyTotal, 0, len(m))
	for k, amount := range m {
		out = append(out, MonthlyTotal{Month: k, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[j].Month.Before(out[i].Month)
	})
	return out
}
