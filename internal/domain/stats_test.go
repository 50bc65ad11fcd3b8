package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	customers := []Customer{
		{ID: 1, LoanAmount: 10000, Payments: payments(1500, 2500)},
		{ID: 2, LoanAmount: 5000, Payments: payments(5000)},
	}

	stats := ComputeStats(customers)

	assert.Equal(t, Stats{
		TotalCustomers:  2,
		TotalLoanAmount: 15000,
		TotalCollected:  9000,
		TotalRemaining:  6000,
		CompletedLoans:  1,
	}, stats)
}

func TestComputeStats_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil))
}

func TestComputeStats_OverpaymentOffsetsBook(t *testing.T) {
	customers := []Customer{
		{ID: 1, LoanAmount: 1000, Payments: payments(3000)},
		{ID: 2, LoanAmount: 1000},
	}

	stats := ComputeStats(customers)

	assert.Equal(t, int64(-1000), stats.TotalRemaining)
	assert.Equal(t, 1, stats.CompletedLoans)
}

func TestComputeStats_IgnoresFilter(t *testing.T) {
	customers := sampleCustomers()
	visible := FilterCustomers(customers, Filter{SearchTerm: "ravi"})

	assert.Len(t, visible, 1)
	assert.Equal(t, 4, ComputeStats(customers).TotalCustomers)
}
