package payroll

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusPaid       = "paid"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusPaid:
		return true
	}
	return false
}

// Payroll menyimpan nominal dalam numeric(12,2); semua nilai sudah dibulatkan ke sen.
type Payroll struct {
	ID                 uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID         uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_payroll_employee_period,priority:1"`
	PayPeriodStart     time.Time  `gorm:"column:pay_period_start;type:date;not null;uniqueIndex:uq_payroll_employee_period,priority:2"`
	PayPeriodEnd       time.Time  `gorm:"column:pay_period_end;type:date;not null;uniqueIndex:uq_payroll_employee_period,priority:3;index"`
	GrossPay           float64    `gorm:"column:gross_pay;type:numeric(12,2);not null"`
	TaxDeduction       float64    `gorm:"column:tax_deduction;type:numeric(12,2);not null;default:0"`
	InsuranceDeduction float64    `gorm:"column:insurance_deduction;type:numeric(12,2);not null;default:0"`
	OtherDeductions    float64    `gorm:"column:other_deductions;type:numeric(12,2);not null;default:0"`
	TotalDeductions    float64    `gorm:"column:total_deductions;type:numeric(12,2);not null;default:0"`
	NetPay             float64    `gorm:"column:net_pay;type:numeric(12,2);not null"`
	Status             string     `gorm:"column:status;type:varchar(20);not null;default:pending;index"`
	ProcessedAt        *time.Time `gorm:"column:processed_at"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
}

func (Payroll) TableName() string {
	return "payrolls"
}

// PayrollEmployee adalah kolom employees yang dipakai untuk hitung gaji.
type PayrollEmployee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"column:employee_code"`
	FirstName    string    `gorm:"column:first_name"`
	LastName     string    `gorm:"column:last_name"`
	Department   string    `gorm:"column:department"`
	Position     string    `gorm:"column:position"`
	SalaryType   string    `gorm:"column:salary_type"`
	BaseSalary   float64   `gorm:"column:base_salary"`
	Status       string    `gorm:"column:status"`
}

func (PayrollEmployee) TableName() string {
	return "employees"
}

func (e PayrollEmployee) IsActive() bool {
	return e.Status == "active"
}

type PayrollRow struct {
	Payroll
	EmployeeCode string
	FirstName    string
	LastName     string
	Department   string
	Position     string
}
