package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomerInput_Validate(t *testing.T) {
	valid := CreateCustomerInput{Name: "Ravi", Mobile: "98765", LoanNo: "LN-1", LoanAmount: 1000}
	assert.NoError(t, valid.Validate())

	noAddress := valid
	noAddress.Address = ""
	assert.NoError(t, noAddress.Validate())

	tests := []struct {
		name    string
		mutate  func(*CreateCustomerInput)
		wantErr error
	}{
		{"missing name", func(in *CreateCustomerInput) { in.Name = "  " }, ErrCustomerNameRequired},
		{"missing mobile", func(in *CreateCustomerInput) { in.Mobile = "" }, ErrCustomerMobileRequired},
		{"missing loan number", func(in *CreateCustomerInput) { in.LoanNo = "" }, ErrCustomerLoanNoRequired},
		{"zero loan amount", func(in *CreateCustomerInput) { in.LoanAmount = 0 }, ErrLoanAmountInvalid},
		{"negative loan amount", func(in *CreateCustomerInput) { in.LoanAmount = -5 }, ErrLoanAmountInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := in.Validate()
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateCustomerInput_Validate_ReportsAllFields(t *testing.T) {
	err := CreateCustomerInput{}.Validate()
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))

	fields := make([]string, len(verrs))
	for i, fe := range verrs {
		fields[i] = fe.Field
	}
	assert.Equal(t, []string{"name", "mobile", "loanNo", "loanAmount"}, fields)
}

func TestCreateCustomerInput_Normalize(t *testing.T) {
	in := CreateCustomerInput{Name: " Ravi ", Address: " Pune\n", Mobile: " 987 ", LoanNo: "\tLN-1 ", LoanAmount: 10}.Normalize()
	assert.Equal(t, CreateCustomerInput{Name: "Ravi", Address: "Pune", Mobile: "987", LoanNo: "LN-1", LoanAmount: 10}, in)
}

func TestCreatePaymentInput_Validate(t *testing.T) {
	assert.NoError(t, CreatePaymentInput{CustomerID: 1, Amount: 1}.Validate())
	assert.ErrorIs(t, CreatePaymentInput{CustomerID: 1, Amount: 0}.Validate(), ErrPaymentAmountInvalid)
	assert.ErrorIs(t, CreatePaymentInput{CustomerID: 1, Amount: -10}.Validate(), ErrPaymentAmountInvalid)
	assert.ErrorIs(t, CreatePaymentInput{Amount: 10}.Validate(), ErrCustomerIDRequired)
}

func TestSummarize(t *testing.T) {
	c := Customer{ID: 7, Name: "Ravi", LoanAmount: 10000}
	p := []Payment{
		paymentOn(1, 3000, 2025, time.January, 3),
		paymentOn(2, 2000, 2025, time.January, 20),
		paymentOn(3, 1000, 2025, time.February, 1),
	}

	s := Summarize(c, p)

	assert.Equal(t, "Ravi", s.Customer)
	assert.Equal(t, int64(10000), s.LoanAmount)
	assert.Equal(t, int64(6000), s.TotalPaid)
	assert.Equal(t, int64(4000), s.Remaining)
	assert.Equal(t, MonthlyTotals{
		{2025, time.January}:  5000,
		{2025, time.February}: 1000,
	}, s.MonthlyTotals)
}
