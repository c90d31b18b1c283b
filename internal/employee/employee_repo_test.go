package employee

import (
	"context"
	"testing"
	"time"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) (*gorm.DB, Repository) {
	t.Helper()
	db := testdb.Open(t, &Employee{})
	assert.NoError(t, db.Exec(`CREATE TABLE attendances (id TEXT PRIMARY KEY, employee_id TEXT)`).Error)
	assert.NoError(t, db.Exec(`CREATE TABLE payrolls (id TEXT PRIMARY KEY, employee_id TEXT)`).Error)
	return db, NewRepository(db)
}

func seedEmployee(t *testing.T, repo Repository, code, email, dept string, salary float64, status string) *Employee {
	t.Helper()
	e := &Employee{
		ID:           uuid.New(),
		EmployeeCode: code,
		FirstName:    "First",
		LastName:     code,
		Email:        email,
		Department:   dept,
		Position:     "Staff",
		HireDate:     time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		SalaryType:   SalaryTypeMonthly,
		BaseSalary:   salary,
		Status:       status,
	}
	assert.NoError(t, repo.Create(context.Background(), e))
	return e
}

func TestRepository_CRUDAndUniqueness(t *testing.T) {
	_, repo := setupRepo(t)
	ctx := context.Background()

	e := seedEmployee(t, repo, "EMP001", "john@company.com", "IT", 5000, StatusActive)

	got, err := repo.FindByID(ctx, e.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, "EMP001", got.EmployeeCode)
	assert.Equal(t, "2023-01-15", got.HireDate.Format("2006-01-02"))

	exists, err := repo.ExistsByEmail(ctx, "john@company.com", "")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "john@company.com", e.ID.String())
	assert.NoError(t, err)
	assert.False(t, exists)

	dup := &Employee{ID: uuid.New(), EmployeeCode: "EMP002", Email: "john@company.com", Department: "IT", Position: "x", HireDate: time.Now(), SalaryType: SalaryTypeMonthly, BaseSalary: 1, Status: StatusActive}
	err = repo.Create(ctx, dup)
	assert.ErrorIs(t, mapRepositoryError(err), employeeerrors.ErrEmailAlreadyExists)

	dup.Email = "other@company.com"
	dup.EmployeeCode = "EMP001"
	err = repo.Create(ctx, dup)
	assert.ErrorIs(t, mapRepositoryError(err), employeeerrors.ErrEmployeeCodeAlreadyExists)

	_, err = repo.FindByID(ctx, uuid.NewString())
	assert.ErrorIs(t, mapRepositoryError(err), employeeerrors.ErrEmployeeNotFound)
}

func TestRepository_HistoryDeactivateDelete(t *testing.T) {
	db, repo := setupRepo(t)
	ctx := context.Background()

	withHistory := seedEmployee(t, repo, "EMP001", "a@company.com", "IT", 5000, StatusActive)
	clean := seedEmployee(t, repo, "EMP002", "b@company.com", "HR", 4000, StatusActive)

	assert.NoError(t, db.Exec(`INSERT INTO attendances (id, employee_id) VALUES (?, ?)`, uuid.NewString(), withHistory.ID.String()).Error)
	assert.NoError(t, db.Exec(`INSERT INTO payrolls (id, employee_id) VALUES (?, ?)`, uuid.NewString(), withHistory.ID.String()).Error)

	n, err := repo.CountHistory(ctx, withHistory.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.CountHistory(ctx, clean.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)

	assert.NoError(t, repo.Deactivate(ctx, withHistory.ID.String()))
	got, _ := repo.FindByID(ctx, withHistory.ID.String())
	assert.Equal(t, StatusInactive, got.Status)

	assert.NoError(t, repo.Delete(ctx, clean.ID.String()))
	_, err = repo.FindByID(ctx, clean.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, clean.ID.String()), gorm.ErrRecordNotFound)
}

func TestRepository_GetStats(t *testing.T) {
	_, repo := setupRepo(t)
	ctx := context.Background()

	seedEmployee(t, repo, "EMP001", "a@company.com", "IT", 6000, StatusActive)
	seedEmployee(t, repo, "EMP002", "b@company.com", "IT", 4000, StatusActive)
	seedEmployee(t, repo, "EMP003", "c@company.com", "HR", 5000, StatusActive)
	seedEmployee(t, repo, "EMP004", "d@company.com", "Finance", 9000, StatusInactive)

	stats, err := repo.GetStats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(3), stats.Active)
	assert.Equal(t, int64(3), stats.Departments)
	assert.InDelta(t, 5000.0, stats.AverageSalary, 0.001)

	assert.Len(t, stats.DepartmentsBreakdown, 2)
	assert.Equal(t, "IT", stats.DepartmentsBreakdown[0].Department)
	assert.Equal(t, int64(2), stats.DepartmentsBreakdown[0].Count)
	assert.InDelta(t, 5000.0, stats.DepartmentsBreakdown[0].AverageSalary, 0.001)
}
