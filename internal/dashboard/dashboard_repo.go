package dashboard

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const (
	statusActive  = "active"
	statusPending = "pending"
	statusPresent = "present"
	statusLate    = "late"
)

// DateRange adalah rentang setengah terbuka [From, To).
type DateRange struct {
	From time.Time
	To   time.Time
}

type PayrollSums struct {
	Net        float64
	Deductions float64
}

type EmployeeActivity struct {
	FirstName string
	LastName  string
	CreatedAt time.Time
}

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	CountActiveEmployees(ctx context.Context) (int64, error)
	CountDepartments(ctx context.Context) (int64, error)
	AverageSalary(ctx context.Context) (float64, error)
	DepartmentSummary(ctx context.Context) ([]DepartmentSummary, error)
	CountEmployeesCreated(ctx context.Context, r DateRange) (int64, error)
	RecentEmployees(ctx context.Context, since time.Time, limit int) ([]EmployeeActivity, error)

	// SumPayroll menjumlahkan berdasarkan pay_period_end; nil berarti semua periode.
	SumPayroll(ctx context.Context, r *DateRange) (PayrollSums, error)
	CountPayrollsByStatus(ctx context.Context, status string) (int64, error)
	CountPayrollsCreated(ctx context.Context, r DateRange) (int64, error)
	PayrollCreatedTimes(ctx context.Context, since time.Time) ([]time.Time, error)

	CountAttendance(ctx context.Context, day time.Time, statuses ...string) (int64, error)
	AttendanceDates(ctx context.Context, since time.Time) ([]time.Time, error)

	Ping(ctx context.Context) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) employees(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("employees")
}

func (r *repository) payrolls(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("payrolls")
}

func (r *repository) attendances(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("attendances")
}

func (r *repository) CountActiveEmployees(ctx context.Context) (int64, error) {
	var n int64
	err := r.employees(ctx).Where("status = ?", statusActive).Count(&n).Error
	return n, err
}

func (r *repository) CountDepartments(ctx context.Context) (int64, error) {
	var n int64
	err := r.employees(ctx).
		Where("status = ?", statusActive).
		Distinct("department").
		Count(&n).Error
	return n, err
}

func (r *repository) AverageSalary(ctx context.Context) (float64, error) {
	var avg float64
	err := r.employees(ctx).
		Select("COALESCE(AVG(base_salary), 0)").
		Where("status = ?", statusActive).
		Scan(&avg).Error
	return avg, err
}

func (r *repository) DepartmentSummary(ctx context.Context) ([]DepartmentSummary, error) {
	rows := []DepartmentSummary{}
	err := r.employees(ctx).
		Select("department AS name, COUNT(*) AS employees, AVG(base_salary) AS average_salary").
		Where("status = ?", statusActive).
		Group("department").
		Order("employees DESC, name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) CountEmployeesCreated(ctx context.Context, rg DateRange) (int64, error) {
	var n int64
	err := r.employees(ctx).
		Where("created_at >= ? AND created_at < ?", rg.From, rg.To).
		Count(&n).Error
	return n, err
}

func (r *repository) RecentEmployees(ctx context.Context, since time.Time, limit int) ([]EmployeeActivity, error) {
	var rows []EmployeeActivity
	err := r.employees(ctx).
		Select("first_name, last_name, created_at").
		Where("created_at >= ?", since).
		Order("created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) SumPayroll(ctx context.Context, rg *DateRange) (PayrollSums, error) {
	var sums PayrollSums
	q := r.payrolls(ctx).
		Select("COALESCE(SUM(net_pay), 0) AS net, COALESCE(SUM(total_deductions), 0) AS deductions")
	if rg != nil {
		q = q.Where("pay_period_end >= ? AND pay_period_end < ?", rg.From, rg.To)
	}
	err := q.Scan(&sums).Error
	return sums, err
}

func (r *repository) CountPayrollsByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.payrolls(ctx).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *repository) CountPayrollsCreated(ctx context.Context, rg DateRange) (int64, error) {
	var n int64
	err := r.payrolls(ctx).
		Where("created_at >= ? AND created_at < ?", rg.From, rg.To).
		Count(&n).Error
	return n, err
}

// PayrollCreatedTimes: pengelompokan per hari dilakukan di service karena DATE() beda antar database.
func (r *repository) PayrollCreatedTimes(ctx context.Context, since time.Time) ([]time.Time, error) {
	var times []time.Time
	err := r.payrolls(ctx).
		Where("created_at >= ?", since).
		Order("created_at DESC").
		Pluck("created_at", &times).Error
	return times, err
}

func (r *repository) CountAttendance(ctx context.Context, day time.Time, statuses ...string) (int64, error) {
	var n int64
	q := r.attendances(ctx).Where("work_date = ?", day)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	err := q.Count(&n).Error
	return n, err
}

func (r *repository) AttendanceDates(ctx context.Context, since time.Time) ([]time.Time, error) {
	var dates []time.Time
	err := r.attendances(ctx).
		Where("work_date >= ?", since).
		Order("work_date DESC").
		Pluck("work_date", &dates).Error
	return dates, err
}

func (r *repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
