package payroll

import "go-payroll/internal/shared/money"

const (
	SalaryTypeMonthly = "monthly"
	SalaryTypeHourly  = "hourly"

	DefaultTaxRate       = 15.0
	DefaultInsuranceRate = 5.0
)

type Rates struct {
	TaxRate         float64
	InsuranceRate   float64
	OtherDeductions float64
}

func DefaultRates() Rates {
	return Rates{TaxRate: DefaultTaxRate, InsuranceRate: DefaultInsuranceRate}
}

type Breakdown struct {
	Gross     float64
	Tax       float64
	Insurance float64
	Other     float64
	Total     float64
	Net       float64
}

// GrossPay: monthly dibayar flat, hourly = tarif × total jam dalam periode.
func GrossPay(salaryType string, baseSalary, hours float64) float64 {
	if salaryType == SalaryTypeHourly {
		return money.Round2(baseSalary * hours)
	}
	return money.Round2(baseSalary)
}

// Calculate rounds tax and insurance independently before summing, so
// tax + insurance + other == total and total + net == gross to the cent.
func Calculate(gross float64, r Rates) Breakdown {
	gross = money.Round2(gross)
	tax := money.Percent(gross, r.TaxRate)
	insurance := money.Percent(gross, r.InsuranceRate)
	other := money.Round2(r.OtherDeductions)
	total := money.Round2(tax + insurance + other)
	return Breakdown{
		Gross:     gross,
		Tax:       tax,
		Insurance: insurance,
		Other:     other,
		Total:     total,
		Net:       money.Round2(gross - total),
	}
}
