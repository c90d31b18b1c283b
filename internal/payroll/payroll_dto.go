package payroll

// ProcessPayrollRequest: rate dalam persen, other_deductions dalam nominal.
type ProcessPayrollRequest struct {
	Action            string   `json:"action"`
	StartDate         string   `json:"start_date" binding:"required,ymd"`
	EndDate           string   `json:"end_date" binding:"required,ymd"`
	SelectedEmployees []string `json:"selected_employees" binding:"required,min=1"`
	TaxRate           *float64 `json:"tax_rate" binding:"omitnil,gte=0,lte=100"`
	InsuranceRate     *float64 `json:"insurance_rate" binding:"omitnil,gte=0,lte=100"`
	OtherDeductions   *float64 `json:"other_deductions" binding:"omitnil,gte=0"`
}

func (r ProcessPayrollRequest) Rates() Rates {
	rates := DefaultRates()
	if r.TaxRate != nil {
		rates.TaxRate = *r.TaxRate
	}
	if r.InsuranceRate != nil {
		rates.InsuranceRate = *r.InsuranceRate
	}
	if r.OtherDeductions != nil {
		rates.OtherDeductions = *r.OtherDeductions
	}
	return rates
}

type UpdateStatusRequest struct {
	Action string `json:"action"`
	ID     string `json:"id"`
	Status string `json:"status"`
}

type PayrollResponse struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employee_id"`
	EmployeeName       string  `json:"employee_name"`
	EmployeeCode       string  `json:"employee_code"`
	Department         string  `json:"department,omitempty"`
	Position           string  `json:"position,omitempty"`
	PayPeriod          string  `json:"pay_period"`
	PayPeriodStart     string  `json:"pay_period_start"`
	PayPeriodEnd       string  `json:"pay_period_end"`
	GrossPay           float64 `json:"gross_pay"`
	TaxDeduction       float64 `json:"tax_deduction"`
	InsuranceDeduction float64 `json:"insurance_deduction"`
	OtherDeductions    float64 `json:"other_deductions"`
	Deductions         float64 `json:"deductions"`
	NetPay             float64 `json:"net_pay"`
	Status             string  `json:"status"`
	ProcessedAt        *string `json:"processed_at"`
	CreatedAt          string  `json:"created_at"`
}

type PayrollStats struct {
	MonthlyTotal    float64 `json:"monthly_total"`
	PendingCount    int64   `json:"pending_count"`
	ProcessedCount  int64   `json:"processed_count"`
	AverageSalary   float64 `json:"average_salary"`
	TotalDeductions float64 `json:"total_deductions"`
}

type Payslip struct {
	Filename string
	Content  []byte
}
