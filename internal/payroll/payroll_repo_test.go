package payroll

import (
	"context"
	"testing"
	"time"

	"go-payroll/internal/employee"
	"go-payroll/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// attendances dibuat manual supaya paket ini tidak bergantung pada paket attendance.
func setupRepo(t *testing.T) (*gorm.DB, Repository) {
	t.Helper()
	db := testdb.Open(t, &employee.Employee{}, &Payroll{})
	assert.NoError(t, db.Exec(`CREATE TABLE attendances (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		work_date DATE NOT NULL,
		hours_worked NUMERIC
	)`).Error)
	return db, NewRepository(db)
}

func seedEmployee(t *testing.T, db *gorm.DB, code string) uuid.UUID {
	t.Helper()
	e := &employee.Employee{
		ID:           uuid.New(),
		EmployeeCode: code,
		FirstName:    "Jane",
		LastName:     code,
		Email:        code + "@company.com",
		Department:   "Finance",
		Position:     "Analyst",
		HireDate:     time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
		SalaryType:   employee.SalaryTypeHourly,
		BaseSalary:   25,
		Status:       employee.StatusActive,
	}
	assert.NoError(t, db.Create(e).Error)
	return e.ID
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRepository_SumHours(t *testing.T) {
	db, repo := setupRepo(t)
	ctx := context.Background()
	emp := seedEmployee(t, db, "EMP001")

	insert := func(d time.Time, hours any) {
		assert.NoError(t, db.Exec(`INSERT INTO attendances (id, employee_id, work_date, hours_worked) VALUES (?, ?, ?, ?)`,
			uuid.NewString(), emp.String(), d, hours).Error)
	}
	insert(date(2024, 3, 1), 8)
	insert(date(2024, 3, 15), 8)
	insert(date(2024, 3, 31), 7.5)
	insert(date(2024, 3, 20), nil)
	insert(date(2024, 4, 1), 9)

	total, err := repo.SumHours(ctx, emp.String(), date(2024, 3, 1), date(2024, 3, 31))
	assert.NoError(t, err)
	assert.InDelta(t, 23.5, total, 0.0001)

	total, err = repo.SumHours(ctx, uuid.NewString(), date(2024, 3, 1), date(2024, 3, 31))
	assert.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestRepository_PeriodUniquenessAndRows(t *testing.T) {
	db, repo := setupRepo(t)
	ctx := context.Background()
	emp := seedEmployee(t, db, "EMP001")

	p := &Payroll{
		ID: uuid.New(), EmployeeID: emp,
		PayPeriodStart: date(2024, 3, 1), PayPeriodEnd: date(2024, 3, 31),
		GrossPay: 587.5, TaxDeduction: 88.13, InsuranceDeduction: 29.38, TotalDeductions: 117.51, NetPay: 469.99,
		Status: StatusPending,
	}
	assert.NoError(t, repo.Create(ctx, p))

	exists, err := repo.ExistsForPeriod(ctx, emp.String(), date(2024, 3, 1), date(2024, 3, 31))
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsForPeriod(ctx, emp.String(), date(2024, 3, 2), date(2024, 3, 31))
	assert.NoError(t, err)
	assert.False(t, exists)

	dup := *p
	dup.ID = uuid.New()
	err = repo.Create(ctx, &dup)
	assert.True(t, isDuplicatePeriod(err))

	row, err := repo.FindRowByID(ctx, p.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, "EMP001", row.EmployeeCode)
	assert.Equal(t, "Finance", row.Department)
	assert.Equal(t, 469.99, row.NetPay)

	rows, err := repo.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)

	assert.NoError(t, repo.Delete(ctx, p.ID.String()))
	assert.ErrorIs(t, repo.Delete(ctx, p.ID.String()), gorm.ErrRecordNotFound)
}

func TestRepository_GetStats(t *testing.T) {
	db, repo := setupRepo(t)
	ctx := context.Background()
	emp := seedEmployee(t, db, "EMP001")

	mk := func(start, end time.Time, gross, deductions float64, status string) {
		assert.NoError(t, repo.Create(ctx, &Payroll{
			ID: uuid.New(), EmployeeID: emp, PayPeriodStart: start, PayPeriodEnd: end,
			GrossPay: gross, TotalDeductions: deductions, NetPay: gross - deductions, Status: status,
		}))
	}
	mk(date(2024, 3, 1), date(2024, 3, 15), 1000, 200, StatusPending)
	mk(date(2024, 3, 16), date(2024, 3, 31), 2000, 400, StatusPaid)
	mk(date(2024, 2, 1), date(2024, 2, 29), 3000, 600, StatusPaid)

	stats, err := repo.GetStats(ctx, date(2024, 3, 1), date(2024, 4, 1))
	assert.NoError(t, err)
	assert.InDelta(t, 2400.0, stats.MonthlyTotal, 0.001)
	assert.InDelta(t, 600.0, stats.TotalDeductions, 0.001)
	assert.Equal(t, int64(1), stats.PendingCount)
	assert.Equal(t, int64(2), stats.ProcessedCount)
	assert.InDelta(t, 2000.0, stats.AverageSalary, 0.001)
}
