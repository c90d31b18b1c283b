package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	reporterrors "go-payroll/internal/report/errors"

	"go.uber.org/zap"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04:05"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, req ReportRequest) (Report, error)
}

type Options struct {
	Location *time.Location
	Now      func() time.Time
}

type service struct {
	repo   Repository
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{repo: repo, loc: opts.Location, now: opts.Now, logger: l}
}

func (s *service) Generate(ctx context.Context, req ReportRequest) (Report, error) {
	kind := strings.ToLower(strings.TrimSpace(req.Type))

	var (
		sh   sheet
		name string
		err  error
	)
	switch kind {
	case TypePayroll, TypeAttendance:
		start, end, rerr := s.resolveRange(req.Start, req.End)
		if rerr != nil {
			return Report{}, rerr
		}
		name = fmt.Sprintf("%s-report-%s_%s.xlsx", kind, start.Format(dateLayout), end.Format(dateLayout))
		if kind == TypePayroll {
			sh, err = s.payrollSheet(ctx, start, end)
		} else {
			sh, err = s.attendanceSheet(ctx, start, end)
		}
	case TypeEmployees:
		name = fmt.Sprintf("employees-report-%s.xlsx", s.now().In(s.loc).Format(dateLayout))
		sh, err = s.employeeSheet(ctx)
	default:
		return Report{}, reporterrors.ErrInvalidReportType
	}
	if err != nil {
		s.logger.Error("load report rows failed", zap.String("type", kind), zap.Error(err))
		return Report{}, err
	}

	content, err := sh.render()
	if err != nil {
		s.logger.Error("render workbook failed", zap.String("type", kind), zap.Error(err))
		return Report{}, err
	}

	s.logger.Info("report generated",
		zap.String("type", kind),
		zap.Int("rows", len(sh.rows)),
		zap.Int("bytes", len(content)),
	)
	return Report{Filename: name, Content: content}, nil
}

// resolveRange: tanpa start/end dipakai bulan berjalan; kalau hanya salah satu
// diisi, ujung lainnya mengikuti bulan dari tanggal yang diisi.
func (s *service) resolveRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	if startStr != "" {
		t, err := time.Parse(dateLayout, startStr)
		if err != nil {
			return start, end, reporterrors.ErrInvalidDateFormat
		}
		start = t
	}
	if endStr != "" {
		t, err := time.Parse(dateLayout, endStr)
		if err != nil {
			return start, end, reporterrors.ErrInvalidDateFormat
		}
		end = t
	}

	switch {
	case start.IsZero() && end.IsZero():
		y, m, _ := s.now().In(s.loc).Date()
		start = time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, -1)
	case end.IsZero():
		end = time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
	case start.IsZero():
		start = time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	}

	if end.Before(start) {
		return start, end, reporterrors.ErrInvalidDateRange
	}
	return start, end, nil
}

func (s *service) payrollSheet(ctx context.Context, start, end time.Time) (sheet, error) {
	rows, err := s.repo.PayrollRows(ctx, start, end)
	if err != nil {
		return sheet{}, err
	}

	sh := sheet{
		name: "Payroll",
		columns: []column{
			{header: "Employee Code", width: 15},
			{header: "Employee Name", width: 25},
			{header: "Department", width: 18},
			{header: "Pay Period", width: 26},
			{header: "Gross Pay", width: 14, money: true},
			{header: "Tax", width: 12, money: true},
			{header: "Insurance", width: 12, money: true},
			{header: "Other Deductions", width: 16, money: true},
			{header: "Total Deductions", width: 16, money: true},
			{header: "Net Pay", width: 14, money: true},
			{header: "Status", width: 12},
			{header: "Processed At", width: 20},
		},
		rows: make([][]any, 0, len(rows)),
	}
	for _, r := range rows {
		sh.rows = append(sh.rows, []any{
			r.EmployeeCode,
			r.FirstName + " " + r.LastName,
			r.Department,
			r.PayPeriodStart.Format(dateLayout) + " to " + r.PayPeriodEnd.Format(dateLayout),
			r.GrossPay,
			r.TaxDeduction,
			r.InsuranceDeduction,
			r.OtherDeductions,
			r.TotalDeductions,
			r.NetPay,
			r.Status,
			s.formatTimestamp(r.ProcessedAt),
		})
	}
	return sh, nil
}

func (s *service) attendanceSheet(ctx context.Context, start, end time.Time) (sheet, error) {
	rows, err := s.repo.AttendanceRows(ctx, start, end)
	if err != nil {
		return sheet{}, err
	}

	sh := sheet{
		name: "Attendance",
		columns: []column{
			{header: "Date", width: 12},
			{header: "Employee Code", width: 15},
			{header: "Employee Name", width: 25},
			{header: "Department", width: 18},
			{header: "Clock In", width: 10},
			{header: "Clock Out", width: 10},
			{header: "Hours Worked", width: 13},
			{header: "Status", width: 10},
		},
		rows: make([][]any, 0, len(rows)),
	}
	for _, r := range rows {
		var hours any = ""
		if r.HoursWorked != nil {
			hours = *r.HoursWorked
		}
		sh.rows = append(sh.rows, []any{
			r.WorkDate.UTC().Format(dateLayout),
			r.EmployeeCode,
			r.FirstName + " " + r.LastName,
			r.Department,
			s.formatClock(r.ClockIn),
			s.formatClock(r.ClockOut),
			hours,
			r.Status,
		})
	}
	return sh, nil
}

func (s *service) employeeSheet(ctx context.Context) (sheet, error) {
	rows, err := s.repo.EmployeeRows(ctx)
	if err != nil {
		return sheet{}, err
	}

	sh := sheet{
		name: "Employees",
		columns: []column{
			{header: "Employee Code", width: 15},
			{header: "First Name", width: 15},
			{header: "Last Name", width: 15},
			{header: "Email", width: 28},
			{header: "Phone", width: 15},
			{header: "Department", width: 18},
			{header: "Position", width: 22},
			{header: "Hire Date", width: 12},
			{header: "Salary Type", width: 12},
			{header: "Base Salary", width: 14, money: true},
			{header: "Status", width: 10},
		},
		rows: make([][]any, 0, len(rows)),
	}
	for _, r := range rows {
		sh.rows = append(sh.rows, []any{
			r.EmployeeCode,
			r.FirstName,
			r.LastName,
			r.Email,
			r.Phone,
			r.Department,
			r.Position,
			r.HireDate.UTC().Format(dateLayout),
			r.SalaryType,
			r.BaseSalary,
			r.Status,
		})
	}
	return sh, nil
}

func (s *service) formatClock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.In(s.loc).Format(clockLayout)
}

func (s *service) formatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.In(s.loc).Format(dateLayout + " " + clockLayout)
}
