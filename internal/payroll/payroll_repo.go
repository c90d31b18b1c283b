package payroll

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindEmployee(ctx context.Context, employeeID string) (*PayrollEmployee, error)
	ExistsForPeriod(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	SumHours(ctx context.Context, employeeID string, start, end time.Time) (float64, error)
	Create(ctx context.Context, p *Payroll) error
	FindByID(ctx context.Context, id string) (*Payroll, error)
	FindRowByID(ctx context.Context, id string) (*PayrollRow, error)
	FindAll(ctx context.Context) ([]PayrollRow, error)
	Update(ctx context.Context, p *Payroll) error
	Delete(ctx context.Context, id string) error
	GetStats(ctx context.Context, monthStart, monthEnd time.Time) (PayrollStats, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) FindEmployee(ctx context.Context, employeeID string) (*PayrollEmployee, error) {
	var emp PayrollEmployee
	if err := r.db.WithContext(ctx).First(&emp, "id = ?", employeeID).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

// ExistsForPeriod hanya mencocokkan (start, end) persis, bukan overlap.
func (r *repository) ExistsForPeriod(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Where("employee_id = ? AND pay_period_start = ? AND pay_period_end = ?", employeeID, start, end).
		Count(&count).Error
	return count > 0, err
}

// SumHours menjumlah hours_worked dalam [start, end] inklusif; NULL dihitung 0.
func (r *repository) SumHours(ctx context.Context, employeeID string, start, end time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Table("attendances").
		Select("COALESCE(SUM(hours_worked), 0)").
		Where("employee_id = ? AND work_date >= ? AND work_date <= ?", employeeID, start, end).
		Scan(&total).Error
	return total, err
}

func (r *repository) Create(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var p Payroll
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("payrolls AS p").
		Select("p.*, e.employee_code, e.first_name, e.last_name, e.department, e.position").
		Joins("JOIN employees e ON e.id = p.employee_id")
}

func (r *repository) FindRowByID(ctx context.Context, id string) (*PayrollRow, error) {
	var rows []PayrollRow
	if err := r.joined(ctx).Where("p.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *repository) FindAll(ctx context.Context) ([]PayrollRow, error) {
	var rows []PayrollRow
	err := r.joined(ctx).
		Order("p.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Payroll{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetStats: bulan berjalan ditentukan dari pay_period_end dalam [monthStart, monthEnd).
func (r *repository) GetStats(ctx context.Context, monthStart, monthEnd time.Time) (PayrollStats, error) {
	var stats PayrollStats
	db := r.db.WithContext(ctx)

	inMonth := func() *gorm.DB {
		return db.Model(&Payroll{}).Where("pay_period_end >= ? AND pay_period_end < ?", monthStart, monthEnd)
	}

	if err := inMonth().
		Select("COALESCE(SUM(net_pay), 0)").
		Scan(&stats.MonthlyTotal).Error; err != nil {
		return stats, err
	}
	if err := inMonth().
		Select("COALESCE(SUM(total_deductions), 0)").
		Scan(&stats.TotalDeductions).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&Payroll{}).
		Where("status = ?", StatusPending).
		Count(&stats.PendingCount).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&Payroll{}).
		Where("status = ?", StatusPaid).
		Count(&stats.ProcessedCount).Error; err != nil {
		return stats, err
	}
	err := db.Model(&Payroll{}).
		Select("COALESCE(AVG(gross_pay), 0)").
		Scan(&stats.AverageSalary).Error

	return stats, err
}
