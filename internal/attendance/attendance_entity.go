package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"
)

type Attendance struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID  uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date,priority:1"`
	WorkDate    time.Time  `gorm:"column:work_date;type:date;not null;uniqueIndex:uq_attendance_employee_date,priority:2;index"`
	ClockIn     *time.Time `gorm:"column:clock_in"`
	ClockOut    *time.Time `gorm:"column:clock_out"`
	HoursWorked *float64   `gorm:"column:hours_worked;type:numeric(6,2)"`
	Status      string     `gorm:"column:status;type:varchar(10);not null;default:present"`
	Notes       *string    `gorm:"column:notes;type:text"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// EmployeeRef adalah potongan tabel employees yang dibutuhkan modul attendance.
type EmployeeRef struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"column:employee_code"`
	FirstName    string    `gorm:"column:first_name"`
	LastName     string    `gorm:"column:last_name"`
	Department   string    `gorm:"column:department"`
	Status       string    `gorm:"column:status"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

func (e EmployeeRef) IsActive() bool {
	return e.Status == "active"
}

// AttendanceRow adalah hasil join attendances + employees untuk listing.
type AttendanceRow struct {
	Attendance
	EmployeeCode string
	FirstName    string
	LastName     string
	Department   string
}
