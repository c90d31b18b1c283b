package attendance

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindEmployee(ctx context.Context, employeeID string) (*EmployeeRef, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	FindByID(ctx context.Context, id string) (*Attendance, error)
	FindRowByID(ctx context.Context, id string) (*AttendanceRow, error)
	FindAll(ctx context.Context, date *time.Time) ([]AttendanceRow, error)
	Create(ctx context.Context, att *Attendance) error
	Update(ctx context.Context, att *Attendance) error
	GetStats(ctx context.Context, today, monthStart, monthEnd time.Time) (AttendanceStats, error)
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

func (r *repository) FindEmployee(ctx context.Context, employeeID string) (*EmployeeRef, error) {
	var emp EmployeeRef
	err := r.db.WithContext(ctx).First(&emp, "id = ?", employeeID).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	var att Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND work_date = ?", employeeID, date).
		First(&att).Error
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Attendance, error) {
	var att Attendance
	err := r.db.WithContext(ctx).First(&att, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *repository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("attendances AS a").
		Select("a.*, e.employee_code, e.first_name, e.last_name, e.department").
		Joins("JOIN employees e ON e.id = a.employee_id")
}

func (r *repository) FindRowByID(ctx context.Context, id string) (*AttendanceRow, error) {
	var rows []AttendanceRow
	err := r.joined(ctx).
		Where("a.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

// FindAll mengembalikan data terbaru dulu; date opsional.
func (r *repository) FindAll(ctx context.Context, date *time.Time) ([]AttendanceRow, error) {
	q := r.joined(ctx)
	if date != nil {
		q = q.Where("a.work_date = ?", *date)
	}

	var rows []AttendanceRow
	err := q.Order("a.work_date DESC, a.clock_in DESC, a.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) Create(ctx context.Context, att *Attendance) error {
	return r.db.WithContext(ctx).Create(att).Error
}

func (r *repository) Update(ctx context.Context, att *Attendance) error {
	return r.db.WithContext(ctx).Save(att).Error
}

// GetStats: range tanggal dihitung di Go supaya query tetap portable.
func (r *repository) GetStats(ctx context.Context, today, monthStart, monthEnd time.Time) (AttendanceStats, error) {
	var stats AttendanceStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&Attendance{}).
		Where("work_date = ? AND status IN ?", today, []string{StatusPresent, StatusLate}).
		Count(&stats.PresentToday).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&Attendance{}).
		Where("work_date = ? AND status = ?", today, StatusLate).
		Count(&stats.LateToday).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&EmployeeRef{}).
		Where("status = ?", "active").
		Count(&stats.TotalEmployees).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&Attendance{}).
		Select("COALESCE(AVG(hours_worked), 0)").
		Where("hours_worked IS NOT NULL AND work_date >= ? AND work_date < ?", monthStart, monthEnd).
		Scan(&stats.AverageHoursMonth).Error; err != nil {
		return stats, err
	}

	stats.DepartmentBreakdown = []DepartmentAttendance{}
	err := db.Table("employees AS e").
		Select("e.department AS department, COUNT(a.id) AS present, COUNT(DISTINCT e.id) AS total").
		Joins("LEFT JOIN attendances a ON a.employee_id = e.id AND a.work_date = ? AND a.status IN ?",
			today, []string{StatusPresent, StatusLate}).
		Where("e.status = ?", "active").
		Group("e.department").
		Order("e.department ASC").
		Scan(&stats.DepartmentBreakdown).Error

	return stats, err
}
