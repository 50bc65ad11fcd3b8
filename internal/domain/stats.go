package domain

// Stats are the dashboard-wide totals over the whole customer book
type Stats struct {
	TotalCustomers  int   `json:"totalCustomers"`
	TotalLoanAmount int64 `json:"totalLoanAmount"`
	TotalCollected  int64 `json:"totalCollected"`
	TotalRemaining  int64 `json:"totalRemaining"`
	CompletedLoans  int   `json:"completedLoans"`
}

// ComputeStats totals the given customers. Pass the unfiltered collection:
// the statistics do not follow the dashboard's search.
func ComputeStats(customers []Customer) Stats {
	stats := Stats{TotalCustomers: len(customers)}
	for _, c := range customers {
		m := c.Metrics()
		stats.TotalLoanAmount += c.LoanAmount
		stats.TotalCollected += m.TotalPaid
		if m.IsFullyPaid() {
			stats.CompletedLoans++
		}
	}
	stats.TotalRemaining = stats.TotalLoanAmount - stats.TotalCollected
	return stats
}
