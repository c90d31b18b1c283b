package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	SalaryTypeMonthly = "monthly"
	SalaryTypeHourly  = "hourly"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"size:20;not null;uniqueIndex:uq_employees_employee_code"`
	FirstName    string    `gorm:"size:50;not null"`
	LastName     string    `gorm:"size:50;not null"`
	Email        string    `gorm:"size:100;not null;uniqueIndex:uq_employees_email"`
	Phone        string    `gorm:"size:20"`
	Department   string    `gorm:"size:50;not null;index"`
	Position     string    `gorm:"size:100;not null"`
	HireDate     time.Time `gorm:"type:date;not null"`
	SalaryType   string    `gorm:"size:10;not null;default:monthly"`
	BaseSalary   float64   `gorm:"type:numeric(12,2);not null"`
	Status       string    `gorm:"size:10;not null;default:active;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Employee) TableName() string {
	return "employees"
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}
