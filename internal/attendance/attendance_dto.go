package attendance

type ClockRequest struct {
	Action     string `json:"action"`
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
}

type MarkAbsentRequest struct {
	Action     string `json:"action"`
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"omitempty,ymd"`
}

// UpdateAttendanceRequest: patch manual oleh HR. clock_in/clock_out berformat HH:MM[:SS]
// dan selalu dianggap jam pada tanggal record tersebut.
type UpdateAttendanceRequest struct {
	ID       string  `json:"id" binding:"required,uuid"`
	ClockIn  *string `json:"clock_in" binding:"omitnil,clock"`
	ClockOut *string `json:"clock_out" binding:"omitnil,clock"`
	Status   *string `json:"status" binding:"omitnil,oneof=present absent late"`
	Notes    *string `json:"notes" binding:"omitnil,max=1000"`
}

func (r UpdateAttendanceRequest) IsEmpty() bool {
	return r.ClockIn == nil && r.ClockOut == nil && r.Status == nil && r.Notes == nil
}

type ListFilter struct {
	Date string
}

type AttendanceResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name,omitempty"`
	EmployeeCode string   `json:"employee_code,omitempty"`
	Department   string   `json:"department,omitempty"`
	Date         string   `json:"date"`
	ClockIn      *string  `json:"clock_in"`
	ClockOut     *string  `json:"clock_out"`
	HoursWorked  *float64 `json:"hours_worked"`
	Status       string   `json:"status"`
	Notes        *string  `json:"notes"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

type DepartmentAttendance struct {
	Department string  `json:"department"`
	Present    int64   `json:"present"`
	Total      int64   `json:"total"`
	Rate       float64 `json:"rate"`
}

type AttendanceStats struct {
	PresentToday        int64                  `json:"present_today"`
	LateToday           int64                  `json:"late_today"`
	TotalEmployees      int64                  `json:"total_employees"`
	AbsentToday         int64                  `json:"absent_today"`
	AttendanceRate      float64                `json:"attendance_rate"`
	AverageHoursMonth   float64                `json:"average_hours_month"`
	DepartmentBreakdown []DepartmentAttendance `json:"department_breakdown"`
}
