package dashboard

import "time"

// DashboardStats memakai key camelCase karena dikonsumsi langsung oleh widget dashboard.
type DashboardStats struct {
	TotalEmployees   int64               `json:"totalEmployees"`
	MonthlyPayroll   float64             `json:"monthlyPayroll"`
	TotalPayroll     float64             `json:"totalPayroll"`
	PendingPayrolls  int64               `json:"pendingPayrolls"`
	PresentToday     int64               `json:"presentToday"`
	AverageSalary    float64             `json:"averageSalary"`
	TotalDeductions  float64             `json:"totalDeductions"`
	AttendanceRate   float64             `json:"attendanceRate"`
	Departments      []DepartmentSummary `json:"departments"`
	RecentActivities []Activity          `json:"recentActivities"`
	PayrollTrends    []TrendPoint        `json:"payrollTrends"`
	SystemHealth     SystemHealth        `json:"systemHealth"`
}

type DepartmentSummary struct {
	Name          string  `json:"name"`
	Employees     int64   `json:"employees"`
	AverageSalary float64 `json:"average_salary"`
}

type Activity struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Icon        string    `json:"icon"`
}

type TrendPoint struct {
	Month  string  `json:"month"`
	Period string  `json:"period"`
	Amount float64 `json:"amount"`
}

type SystemHealth struct {
	Database string `json:"database"`
	API      string `json:"api"`
}

type QuickStats struct {
	Today   TodayStats   `json:"today"`
	Month   MonthStats   `json:"month"`
	Overall OverallStats `json:"overall"`
}

type TodayStats struct {
	Present      int64 `json:"present"`
	Late         int64 `json:"late"`
	NewEmployees int64 `json:"new_employees"`
}

type MonthStats struct {
	PayrollTotal      float64 `json:"payroll_total"`
	EmployeesAdded    int64   `json:"employees_added"`
	PayrollsProcessed int64   `json:"payrolls_processed"`
}

type OverallStats struct {
	TotalEmployees   int64 `json:"total_employees"`
	TotalDepartments int64 `json:"total_departments"`
	PendingPayrolls  int64 `json:"pending_payrolls"`
}
