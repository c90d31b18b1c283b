package dashboard

import (
	"context"
	"testing"
	"time"

	"go-payroll/internal/attendance"
	"go-payroll/internal/employee"
	"go-payroll/internal/payroll"
	"go-payroll/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func seedEmployee(t *testing.T, db *gorm.DB, code, dept, status string, salary float64, createdAt time.Time) uuid.UUID {
	t.Helper()
	e := &employee.Employee{
		ID:           uuid.New(),
		EmployeeCode: code,
		FirstName:    "First",
		LastName:     code,
		Email:        code + "@company.com",
		Department:   dept,
		Position:     "Staff",
		HireDate:     utcDate(2023, 1, 1),
		SalaryType:   employee.SalaryTypeMonthly,
		BaseSalary:   salary,
		Status:       status,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	assert.NoError(t, db.Create(e).Error)
	return e.ID
}

func seedPayroll(t *testing.T, db *gorm.DB, emp uuid.UUID, end time.Time, net, deductions float64, status string, createdAt time.Time) {
	t.Helper()
	p := &payroll.Payroll{
		ID:              uuid.New(),
		EmployeeID:      emp,
		PayPeriodStart:  time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC),
		PayPeriodEnd:    end,
		GrossPay:        net + deductions,
		TotalDeductions: deductions,
		NetPay:          net,
		Status:          status,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
	assert.NoError(t, db.Create(p).Error)
}

func seedAttendance(t *testing.T, db *gorm.DB, emp uuid.UUID, day time.Time, status string) {
	t.Helper()
	a := &attendance.Attendance{
		ID:         uuid.New(),
		EmployeeID: emp,
		WorkDate:   day,
		Status:     status,
	}
	assert.NoError(t, db.Create(a).Error)
}

func TestRepository_Aggregates(t *testing.T) {
	db := testdb.Open(t, &employee.Employee{}, &attendance.Attendance{}, &payroll.Payroll{})
	repo := NewRepository(db)
	ctx := context.Background()

	old := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	recent := time.Date(2024, 3, 30, 9, 0, 0, 0, time.UTC)

	e1 := seedEmployee(t, db, "EMP001", "Engineering", employee.StatusActive, 6000, old)
	e2 := seedEmployee(t, db, "EMP002", "Engineering", employee.StatusActive, 4000, recent)
	e3 := seedEmployee(t, db, "EMP003", "Finance", employee.StatusActive, 3000, old)
	seedEmployee(t, db, "EMP004", "Finance", employee.StatusInactive, 9000, old)

	n, err := repo.CountActiveEmployees(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = repo.CountDepartments(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)

	avg, err := repo.AverageSalary(ctx)
	assert.NoError(t, err)
	assert.InDelta(t, 4333.33, avg, 0.01)

	summary, err := repo.DepartmentSummary(ctx)
	assert.NoError(t, err)
	if assert.Len(t, summary, 2) {
		assert.Equal(t, "Engineering", summary[0].Name)
		assert.Equal(t, int64(2), summary[0].Employees)
		assert.InDelta(t, 5000, summary[0].AverageSalary, 0.001)
		assert.Equal(t, "Finance", summary[1].Name)
	}

	n, err = repo.CountEmployeesCreated(ctx, DateRange{From: utcDate(2024, 3, 1), To: utcDate(2024, 4, 1)})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	emps, err := repo.RecentEmployees(ctx, utcDate(2024, 3, 24), 3)
	assert.NoError(t, err)
	if assert.Len(t, emps, 1) {
		assert.Equal(t, "EMP002", emps[0].LastName)
		assert.True(t, emps[0].CreatedAt.Equal(recent))
	}

	seedPayroll(t, db, e1, utcDate(2024, 3, 31), 5000, 1000, payroll.StatusPaid, recent)
	seedPayroll(t, db, e2, utcDate(2024, 3, 31), 3000.5, 600, payroll.StatusPending, recent)
	seedPayroll(t, db, e1, utcDate(2024, 2, 29), 4000, 800, payroll.StatusPending, old)

	march := DateRange{From: utcDate(2024, 3, 1), To: utcDate(2024, 4, 1)}
	sums, err := repo.SumPayroll(ctx, &march)
	assert.NoError(t, err)
	assert.InDelta(t, 8000.5, sums.Net, 0.001)
	assert.InDelta(t, 1600, sums.Deductions, 0.001)

	sums, err = repo.SumPayroll(ctx, nil)
	assert.NoError(t, err)
	assert.InDelta(t, 12000.5, sums.Net, 0.001)

	empty := DateRange{From: utcDate(2023, 1, 1), To: utcDate(2023, 2, 1)}
	sums, err = repo.SumPayroll(ctx, &empty)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, sums.Net)

	n, err = repo.CountPayrollsByStatus(ctx, payroll.StatusPending)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.CountPayrollsCreated(ctx, march)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)

	times, err := repo.PayrollCreatedTimes(ctx, utcDate(2024, 3, 24))
	assert.NoError(t, err)
	assert.Len(t, times, 2)

	today := utcDate(2024, 3, 31)
	seedAttendance(t, db, e1, today, attendance.StatusPresent)
	seedAttendance(t, db, e2, today, attendance.StatusLate)
	seedAttendance(t, db, e3, today, attendance.StatusAbsent)
	seedAttendance(t, db, e1, utcDate(2024, 3, 29), attendance.StatusPresent)
	seedAttendance(t, db, e1, utcDate(2024, 3, 20), attendance.StatusPresent)

	n, err = repo.CountAttendance(ctx, today, statusPresent, statusLate)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.CountAttendance(ctx, today)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)

	dates, err := repo.AttendanceDates(ctx, utcDate(2024, 3, 28))
	assert.NoError(t, err)
	if assert.Len(t, dates, 4) {
		assert.True(t, dates[0].Equal(today))
		assert.True(t, dates[3].Equal(utcDate(2024, 3, 29)))
	}

	assert.NoError(t, repo.Ping(ctx))
}

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
