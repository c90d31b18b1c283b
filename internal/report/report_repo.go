package report

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	PayrollRows(ctx context.Context, start, end time.Time) ([]PayrollRow, error)
	AttendanceRows(ctx context.Context, start, end time.Time) ([]AttendanceRow, error)
	EmployeeRows(ctx context.Context) ([]EmployeeRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// PayrollRows memfilter berdasarkan pay_period_end, inklusif di kedua ujung.
func (r *repository) PayrollRows(ctx context.Context, start, end time.Time) ([]PayrollRow, error) {
	var rows []PayrollRow
	err := r.db.WithContext(ctx).
		Table("payrolls AS p").
		Select("e.employee_code, e.first_name, e.last_name, e.department, " +
			"p.pay_period_start, p.pay_period_end, p.gross_pay, p.tax_deduction, p.insurance_deduction, " +
			"p.other_deductions, p.total_deductions, p.net_pay, p.status, p.processed_at").
		Joins("JOIN employees e ON e.id = p.employee_id").
		Where("p.pay_period_end >= ? AND p.pay_period_end <= ?", start, end).
		Order("p.pay_period_end DESC, e.employee_code ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) AttendanceRows(ctx context.Context, start, end time.Time) ([]AttendanceRow, error) {
	var rows []AttendanceRow
	err := r.db.WithContext(ctx).
		Table("attendances AS a").
		Select("e.employee_code, e.first_name, e.last_name, e.department, " +
			"a.work_date, a.clock_in, a.clock_out, a.hours_worked, a.status").
		Joins("JOIN employees e ON e.id = a.employee_id").
		Where("a.work_date >= ? AND a.work_date <= ?", start, end).
		Order("a.work_date DESC, e.employee_code ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) EmployeeRows(ctx context.Context) ([]EmployeeRow, error) {
	var rows []EmployeeRow
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("employee_code, first_name, last_name, email, phone, department, position, " +
			"hire_date, salary_type, base_salary, status").
		Order("employee_code ASC").
		Scan(&rows).Error
	return rows, err
}
