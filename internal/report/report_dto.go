package report

import "time"

const (
	TypePayroll    = "payroll"
	TypeAttendance = "attendance"
	TypeEmployees  = "employees"
)

type ReportRequest struct {
	Type  string `form:"type" binding:"required"`
	Start string `form:"start" binding:"omitempty,ymd"`
	End   string `form:"end" binding:"omitempty,ymd"`
}

// Report adalah workbook yang siap diunduh.
type Report struct {
	Filename string
	Content  []byte
}

type PayrollRow struct {
	EmployeeCode       string
	FirstName          string
	LastName           string
	Department         string
	PayPeriodStart     time.Time
	PayPeriodEnd       time.Time
	GrossPay           float64
	TaxDeduction       float64
	InsuranceDeduction float64
	OtherDeductions    float64
	TotalDeductions    float64
	NetPay             float64
	Status             string
	ProcessedAt        *time.Time
}

type AttendanceRow struct {
	EmployeeCode string
	FirstName    string
	LastName     string
	Department   string
	WorkDate     time.Time
	ClockIn      *time.Time
	ClockOut     *time.Time
	HoursWorked  *float64
	Status       string
}

type EmployeeRow struct {
	EmployeeCode string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Department   string
	Position     string
	HireDate     time.Time
	SalaryType   string
	BaseSalary   float64
	Status       string
}
