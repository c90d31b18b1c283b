package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	ExistsByCode(ctx context.Context, code, excludeID string) (bool, error)
	ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error)
	CountHistory(ctx context.Context, id string) (int64, error)
	Update(ctx context.Context, empl *Employee) error
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	GetStats(ctx context.Context) (EmployeeStats, error)
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) ExistsByCode(ctx context.Context, code, excludeID string) (bool, error) {
	return r.exists(ctx, "employee_code = ?", code, excludeID)
}

func (r *repository) ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error) {
	return r.exists(ctx, "email = ?", email, excludeID)
}

func (r *repository) exists(ctx context.Context, cond string, value any, excludeID string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&Employee{}).Where(cond, value)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// CountHistory menghitung baris attendance + payroll milik employee.
func (r *repository) CountHistory(ctx context.Context, id string) (int64, error) {
	var attendanceCount, payrollCount int64

	if err := r.db.WithContext(ctx).
		Table("attendances").
		Where("employee_id = ?", id).
		Count(&attendanceCount).Error; err != nil {
		return 0, err
	}

	if err := r.db.WithContext(ctx).
		Table("payrolls").
		Where("employee_id = ?", id).
		Count(&payrollCount).Error; err != nil {
		return 0, err
	}

	return attendanceCount + payrollCount, nil
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) Deactivate(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Update("status", StatusInactive)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) GetStats(ctx context.Context) (EmployeeStats, error) {
	var stats EmployeeStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&Employee{}).Count(&stats.Total).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&Employee{}).
		Where("status = ?", StatusActive).
		Count(&stats.Active).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&Employee{}).
		Distinct("department").
		Count(&stats.Departments).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&Employee{}).
		Select("COALESCE(AVG(base_salary), 0)").
		Where("status = ?", StatusActive).
		Scan(&stats.AverageSalary).Error; err != nil {
		return stats, err
	}

	stats.DepartmentsBreakdown = []DepartmentBreakdown{}
	err := db.Model(&Employee{}).
		Select("department, COUNT(*) AS count, AVG(base_salary) AS average_salary").
		Where("status = ?", StatusActive).
		Group("department").
		Order("count DESC, department ASC").
		Scan(&stats.DepartmentsBreakdown).Error

	return stats, err
}
