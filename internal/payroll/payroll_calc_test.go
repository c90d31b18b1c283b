package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate_HourlyExample(t *testing.T) {
	gross := GrossPay(SalaryTypeHourly, 25, 8+8+7.5)
	assert.Equal(t, 587.50, gross)

	b := Calculate(gross, DefaultRates())
	assert.Equal(t, 88.13, b.Tax)
	assert.Equal(t, 29.38, b.Insurance)
	assert.Equal(t, 0.0, b.Other)
	assert.Equal(t, 117.51, b.Total)
	assert.Equal(t, 469.99, b.Net)
}

func TestGrossPay_MonthlyIgnoresHours(t *testing.T) {
	assert.Equal(t, 5000.0, GrossPay(SalaryTypeMonthly, 5000, 0))
	assert.Equal(t, 5000.0, GrossPay(SalaryTypeMonthly, 5000, 172))
	assert.Equal(t, 0.0, GrossPay(SalaryTypeHourly, 30, 0))
}

func TestCalculate_BalancesToTheCent(t *testing.T) {
	cases := []struct {
		gross float64
		rates Rates
	}{
		{5000, DefaultRates()},
		{1234.57, Rates{TaxRate: 12.5, InsuranceRate: 3.3, OtherDeductions: 10.01}},
		{0.07, DefaultRates()},
		{99999.99, Rates{TaxRate: 33, InsuranceRate: 7.25, OtherDeductions: 150}},
	}

	for _, tc := range cases {
		b := Calculate(tc.gross, tc.rates)
		assert.InDelta(t, b.Total, b.Tax+b.Insurance+b.Other, 0.0001)
		assert.InDelta(t, b.Gross, b.Total+b.Net, 0.0001)
	}
}

func TestRates_Defaults(t *testing.T) {
	tax := 10.0
	r := ProcessPayrollRequest{TaxRate: &tax}.Rates()
	assert.Equal(t, 10.0, r.TaxRate)
	assert.Equal(t, DefaultInsuranceRate, r.InsuranceRate)
	assert.Equal(t, 0.0, r.OtherDeductions)
}
