package payroll_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/bootstrap"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/testdb"

	payrollMock "go-payroll/internal/payroll/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

var (
	fixedNow    = time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)
	periodStart = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	periodEnd   = time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
)

type serviceDeps struct {
	sqlMock sqlmock.Sqlmock
	service payroll.Service
	repo    *payrollMock.MockRepository
	audit   *observer.ObservedLogs

	saved map[string]payroll.Payroll
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock := testdb.NewMock(t)
	repo := payrollMock.NewMockRepository(ctrl)
	core, logs := observer.New(zap.InfoLevel)

	svc := payroll.NewService(db, repo, payroll.Options{
		Audit: bootstrap.NewStdoutAuditLogger(zap.New(core)),
		Now:   func() time.Time { return fixedNow },
	})

	return &serviceDeps{
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		audit:   logs,
		saved:   map[string]payroll.Payroll{},
	}
}

func (d *serviceDeps) auditActions() []string {
	var actions []string
	for _, e := range d.audit.All() {
		actions = append(actions, e.ContextMap()["action"].(string))
	}
	return actions
}

func (d *serviceDeps) capture(ctx context.Context, p *payroll.Payroll) error {
	d.saved[p.ID.String()] = *p
	return nil
}

// expectReload membaca ulang record yang tersimpan lewat capture.
func (d *serviceDeps) expectReload(times int) {
	d.repo.EXPECT().
		FindRowByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id string) (*payroll.PayrollRow, error) {
			p, ok := d.saved[id]
			if !ok {
				return nil, gorm.ErrRecordNotFound
			}
			return &payroll.PayrollRow{Payroll: p, FirstName: "Jane", LastName: "Roe", EmployeeCode: "EMP"}, nil
		}).
		Times(times)
}

func newEmployee(salaryType string, base float64, status string) *payroll.PayrollEmployee {
	return &payroll.PayrollEmployee{ID: uuid.New(), EmployeeCode: "EMP", FirstName: "Jane", LastName: "Roe", SalaryType: salaryType, BaseSalary: base, Status: status}
}

func processReq(ids ...string) payroll.ProcessPayrollRequest {
	return payroll.ProcessPayrollRequest{StartDate: "2024-03-01", EndDate: "2024-03-31", SelectedEmployees: ids}
}

func TestPayrollService_Process(t *testing.T) {
	ctx := context.Background()

	t.Run("hourly employee example", func(t *testing.T) {
		deps := setupServiceTest(t)
		emp := newEmployee(payroll.SalaryTypeHourly, 25, "active")
		id := emp.ID.String()

		testdb.ExpectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindEmployee(ctx, id).Return(emp, nil)
		deps.repo.EXPECT().ExistsForPeriod(ctx, id, periodStart, periodEnd).Return(false, nil)
		deps.repo.EXPECT().SumHours(ctx, id, periodStart, periodEnd).Return(23.5, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(deps.capture)
		deps.expectReload(1)

		res, err := deps.service.Process(ctx, processReq(id))

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		p := res[0]
		assert.Equal(t, 587.50, p.GrossPay)
		assert.Equal(t, 88.13, p.TaxDeduction)
		assert.Equal(t, 29.38, p.InsuranceDeduction)
		assert.Equal(t, 117.51, p.Deductions)
		assert.Equal(t, 469.99, p.NetPay)
		assert.Equal(t, payroll.StatusPending, p.Status)
		assert.Equal(t, "2024-03-01 to 2024-03-31", p.PayPeriod)
		assert.Equal(t, "Jane Roe", p.EmployeeName)
		assert.Equal(t, []string{"PAYROLL_PROCESSED"}, deps.auditActions())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("monthly employee gets flat base salary with custom rates", func(t *testing.T) {
		deps := setupServiceTest(t)
		emp := newEmployee(payroll.SalaryTypeMonthly, 5000, "active")
		id := emp.ID.String()

		tax, ins, other := 10.0, 2.0, 50.0
		req := processReq(id)
		req.TaxRate, req.InsuranceRate, req.OtherDeductions = &tax, &ins, &other

		testdb.ExpectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindEmployee(ctx, id).Return(emp, nil)
		deps.repo.EXPECT().ExistsForPeriod(ctx, id, periodStart, periodEnd).Return(false, nil)
		deps.repo.EXPECT().SumHours(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(deps.capture)
		deps.expectReload(1)

		res, err := deps.service.Process(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, 5000.0, res[0].GrossPay)
		assert.Equal(t, 500.0, res[0].TaxDeduction)
		assert.Equal(t, 100.0, res[0].InsuranceDeduction)
		assert.Equal(t, 50.0, res[0].OtherDeductions)
		assert.Equal(t, 650.0, res[0].Deductions)
		assert.Equal(t, 4350.0, res[0].NetPay)
	})

	t.Run("skips missing inactive and invalid employees", func(t *testing.T) {
		deps := setupServiceTest(t)
		active := newEmployee(payroll.SalaryTypeMonthly, 3000, "active")
		inactive := newEmployee(payroll.SalaryTypeMonthly, 3000, "inactive")
		missing := uuid.NewString()

		// invalid uuid tidak membuka transaksi
		for range 3 {
			testdb.ExpectTx(deps.sqlMock, true)
		}
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).Times(3)
		deps.repo.EXPECT().FindEmployee(ctx, active.ID.String()).Return(active, nil)
		deps.repo.EXPECT().FindEmployee(ctx, inactive.ID.String()).Return(inactive, nil)
		deps.repo.EXPECT().FindEmployee(ctx, missing).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().ExistsForPeriod(ctx, active.ID.String(), periodStart, periodEnd).Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(deps.capture).Times(1)
		deps.expectReload(1)

		res, err := deps.service.Process(ctx, processReq(active.ID.String(), inactive.ID.String(), missing, "not-a-uuid"))

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, active.ID.String(), res[0].EmployeeID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("existing period is skipped", func(t *testing.T) {
		deps := setupServiceTest(t)
		emp := newEmployee(payroll.SalaryTypeMonthly, 3000, "active")
		id := emp.ID.String()

		testdb.ExpectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindEmployee(ctx, id).Return(emp, nil)
		deps.repo.EXPECT().ExistsForPeriod(ctx, id, periodStart, periodEnd).Return(true, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		res, err := deps.service.Process(ctx, processReq(id))
		assert.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("shifted overlapping period is checked by exact bounds", func(t *testing.T) {
		deps := setupServiceTest(t)
		emp := newEmployee(payroll.SalaryTypeMonthly, 3000, "active")
		id := emp.ID.String()
		shiftedStart := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

		testdb.ExpectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindEmployee(ctx, id).Return(emp, nil)
		deps.repo.EXPECT().ExistsForPeriod(ctx, id, shiftedStart, periodEnd).Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(deps.capture)
		deps.expectReload(1)

		shifted := processReq(id)
		shifted.StartDate = "2024-03-02"
		res, err := deps.service.Process(ctx, shifted)

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "2024-03-02", res[0].PayPeriodStart)
	})

	t.Run("unique violation on insert is a skip", func(t *testing.T) {
		deps := setupServiceTest(t)
		emp := newEmployee(payroll.SalaryTypeMonthly, 3000, "active")
		id := emp.ID.String()

		testdb.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindEmployee(ctx, id).Return(emp, nil)
		deps.repo.EXPECT().ExistsForPeriod(ctx, id, periodStart, periodEnd).Return(false, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New(`ERROR: duplicate key value violates unique constraint "uq_payroll_employee_period" (SQLSTATE 23505)`))

		res, err := deps.service.Process(ctx, processReq(id))
		assert.NoError(t, err)
		assert.Empty(t, res)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("end before start", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := processReq(uuid.NewString())
		req.StartDate, req.EndDate = "2024-03-31", "2024-03-01"

		_, err := deps.service.Process(ctx, req)
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidDateRange)
	})
}

func pendingPayroll(status string) *payroll.Payroll {
	return &payroll.Payroll{
		ID: uuid.New(), EmployeeID: uuid.New(),
		PayPeriodStart: periodStart,
		PayPeriodEnd:   periodEnd,
		GrossPay:       1000, TaxDeduction: 150, InsuranceDeduction: 50, TotalDeductions: 200, NetPay: 800,
		Status: status,
	}
}

func TestPayrollService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("processing leaves processed_at empty", func(t *testing.T) {
		deps := setupServiceTest(t)
		rec := pendingPayroll(payroll.StatusPending)
		id := rec.ID.String()

		testdb.ExpectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(rec, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(deps.capture)
		deps.expectReload(1)

		resp, err := deps.service.UpdateStatus(ctx, id, payroll.StatusProcessing)

		assert.NoError(t, err)
		assert.Equal(t, payroll.StatusProcessing, resp.Status)
		assert.Nil(t, resp.ProcessedAt)
		assert.Empty(t, deps.auditActions())
	})

	t.Run("paid stamps processed_at", func(t *testing.T) {
		deps := setupServiceTest(t)
		rec := pendingPayroll(payroll.StatusProcessing)
		id := rec.ID.String()

		testdb.ExpectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(rec, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(deps.capture)
		deps.expectReload(1)

		resp, err := deps.service.UpdateStatus(ctx, id, payroll.StatusPaid)

		assert.NoError(t, err)
		assert.Equal(t, payroll.StatusPaid, resp.Status)
		assert.Equal(t, "2024-03-31T12:00:00Z", *resp.ProcessedAt)
		assert.Equal(t, []string{"PAYROLL_PAID"}, deps.auditActions())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid status", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.UpdateStatus(ctx, uuid.NewString(), "cancelled")
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidStatus)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()

		testdb.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.UpdateStatus(ctx, id, payroll.StatusPaid)
		assert.ErrorIs(t, err, payrollerrors.ErrPayrollNotFound)
	})
}

func TestPayrollService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("paid record is kept", func(t *testing.T) {
		deps := setupServiceTest(t)
		rec := pendingPayroll(payroll.StatusPaid)
		id := rec.ID.String()

		testdb.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(rec, nil)
		deps.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		err := deps.service.Delete(ctx, id)

		assert.ErrorIs(t, err, payrollerrors.ErrCannotDeletePaid)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("pending record is deleted", func(t *testing.T) {
		deps := setupServiceTest(t)
		rec := pendingPayroll(payroll.StatusPending)
		id := rec.ID.String()

		testdb.ExpectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(rec, nil)
		deps.repo.EXPECT().Delete(ctx, id).Return(nil)

		assert.NoError(t, deps.service.Delete(ctx, id))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		assert.ErrorIs(t, deps.service.Delete(ctx, "abc"), payrollerrors.ErrPayrollNotFound)
	})
}

func TestPayrollService_GetStats(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	deps.repo.EXPECT().
		GetStats(ctx, periodStart, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)).
		Return(payroll.PayrollStats{MonthlyTotal: 4200, PendingCount: 2}, nil)

	stats, err := deps.service.GetStats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 4200.0, stats.MonthlyTotal)
	assert.Equal(t, int64(2), stats.PendingCount)
}

func TestPayrollService_Payslip(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	rec := pendingPayroll(payroll.StatusPending)
	deps.saved[rec.ID.String()] = *rec
	deps.expectReload(1)

	slip, err := deps.service.Payslip(ctx, rec.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, "payslip-EMP-2024-03-31.pdf", slip.Filename)
	assert.True(t, len(slip.Content) > 0)
	assert.Equal(t, "%PDF-1.4", string(slip.Content[:8]))
	assert.Contains(t, string(slip.Content), "(Employee: Jane Roe \\(EMP\\)) Tj")
	assert.Contains(t, string(slip.Content), "%%EOF")
}
