package employee

type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_id" binding:"omitempty,max=20"`
	FirstName    string  `json:"first_name" binding:"required,max=50"`
	LastName     string  `json:"last_name" binding:"required,max=50"`
	Email        string  `json:"email" binding:"required,email,max=100"`
	Phone        string  `json:"phone" binding:"omitempty,max=20"`
	Department   string  `json:"department" binding:"required,max=50"`
	Position     string  `json:"position" binding:"required,max=100"`
	HireDate     string  `json:"hire_date" binding:"required,ymd"`
	SalaryType   string  `json:"salary_type" binding:"required,oneof=monthly hourly"`
	BaseSalary   float64 `json:"base_salary" binding:"required,gt=0"`
	Status       string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

// UpdateEmployeeRequest adalah patch: hanya field non-nil yang diubah.
type UpdateEmployeeRequest struct {
	ID           string   `json:"id" binding:"required,uuid"`
	EmployeeCode *string  `json:"employee_id" binding:"omitnil,min=1,max=20"`
	FirstName    *string  `json:"first_name" binding:"omitnil,min=1,max=50"`
	LastName     *string  `json:"last_name" binding:"omitnil,min=1,max=50"`
	Email        *string  `json:"email" binding:"omitnil,email,max=100"`
	Phone        *string  `json:"phone" binding:"omitempty,max=20"`
	Department   *string  `json:"department" binding:"omitnil,min=1,max=50"`
	Position     *string  `json:"position" binding:"omitnil,min=1,max=100"`
	HireDate     *string  `json:"hire_date" binding:"omitnil,ymd"`
	SalaryType   *string  `json:"salary_type" binding:"omitnil,oneof=monthly hourly"`
	BaseSalary   *float64 `json:"base_salary" binding:"omitnil,gt=0"`
	Status       *string  `json:"status" binding:"omitnil,oneof=active inactive"`
}

func (r UpdateEmployeeRequest) IsEmpty() bool {
	return r.EmployeeCode == nil && r.FirstName == nil && r.LastName == nil &&
		r.Email == nil && r.Phone == nil && r.Department == nil &&
		r.Position == nil && r.HireDate == nil && r.SalaryType == nil &&
		r.BaseSalary == nil && r.Status == nil
}

type DeleteEmployeeRequest struct {
	ID string `json:"id" binding:"required,uuid"`
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Department   string  `json:"department"`
	Position     string  `json:"position"`
	HireDate     string  `json:"hire_date"`
	SalaryType   string  `json:"salary_type"`
	BaseSalary   float64 `json:"base_salary"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type DeleteResult struct {
	Deactivated bool
}

func (r DeleteResult) Message() string {
	if r.Deactivated {
		return "Employee deactivated (has attendance/payroll records)"
	}
	return "Employee deleted successfully"
}

type DepartmentBreakdown struct {
	Department    string  `json:"department"`
	Count         int64   `json:"count"`
	AverageSalary float64 `json:"average_salary"`
}

type EmployeeStats struct {
	Total                int64                 `json:"total"`
	Active               int64                 `json:"active"`
	Departments          int64                 `json:"departments"`
	AverageSalary        float64               `json:"average_salary"`
	DepartmentsBreakdown []DepartmentBreakdown `json:"departments_breakdown"`
}
