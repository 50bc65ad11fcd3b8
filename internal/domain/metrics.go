package domain

// Metrics are the repayment figures derived for one loan.
// Remaining goes negative on overpayment and ProgressPercentage is not capped at 100.
type Metrics struct {
	TotalPaid          int64   `json:"totalPaid"`
	Remaining          int64   `json:"remaining"`
	ProgressPercentage float64 `json:"progressPercentage"`
}

// Calculate derives the metrics of a loan from its payments.
// A zero loanAmount yields NaN or +Inf progress; callers must not pass one.
func Calculate(loanAmount int64, payments []Payment) Metrics {
	paid := TotalPaid(payments)
	return Metrics{
		TotalPaid:          paid,
		Remaining:          loanAmount - paid,
		ProgressPercentage: progress(paid, loanAmount),
	}
}

// TotalPaid sums the payment amounts; an empty list sums to 0
func TotalPaid(payments []Payment) int64 {
	var total int64
	for _, p := range payments {
		total += p.Amount
	}
	return total
}

func progress(paid, loanAmount int64) float64 {
	return float64(paid) / float64(loanAmount) * 100
}

// IsFullyPaid reports whether nothing remains outstanding
func (m Metrics) IsFullyPaid() bool {
	return m.Remaining <= 0
}

// Status classifies the metrics
func (m Metrics) Status() Status {
	return Classify(m.Remaining, m.ProgressPercentage)
}

// Status is the repayment state shown on a customer card
type Status string

const (
	StatusFullyPaid   Status = "Fully Paid"
	StatusJustStarted Status = "Just Started"
	StatusInProgress  Status = "In Progress"
	StatusAlmostDone  Status = "Almost Done"
)

// Band thresholds in percent. Each is exclusive: exactly 25 is In Progress.
const (
	JustStartedBelow = 25.0
	InProgressBelow  = 75.0
)

// Classify maps a loan to its status. Order matters: a settled loan is
// Fully Paid whatever its percentage.
func Classify(remaining int64, progressPercentage float64) Status {
	switch {
	case remaining <= 0:
		return StatusFullyPaid
	case progressPercentage < JustStartedBelow:
		return StatusJustStarted
	case progressPercentage < InProgressBelow:
		return StatusInProgress
	default:
		return StatusAlmostDone
	}
}
