package payroll

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-payroll/internal/bootstrap"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/dberr"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Process(ctx context.Context, req ProcessPayrollRequest) ([]PayrollResponse, error)
	GetAll(ctx context.Context) ([]PayrollResponse, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	GetStats(ctx context.Context) (PayrollStats, error)
	UpdateStatus(ctx context.Context, id, status string) (PayrollResponse, error)
	Delete(ctx context.Context, id string) error
	Payslip(ctx context.Context, id string) (Payslip, error)
}

type Options struct {
	Audit bootstrap.AuditLogger
	Now   func() time.Time
}

type service struct {
	db     *gorm.DB
	repo   Repository
	audit  bootstrap.AuditLogger
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	if opts.Audit == nil {
		opts.Audit = bootstrap.NopAuditLogger{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		db:     db,
		repo:   repo,
		audit:  opts.Audit,
		now:    opts.Now,
		logger: l,
	}
}

func parseDate(v string) (time.Time, error) {
	d, err := time.Parse(apperror.DateLayout, v)
	if err != nil {
		return time.Time{}, payrollerrors.ErrInvalidDateFormat
	}
	return d, nil
}

// Process menghitung payroll per employee dalam transaksi masing-masing.
// Employee yang tidak ada, nonaktif, atau sudah punya record untuk periode
// yang sama persis dilewati tanpa error.
func (s *service) Process(ctx context.Context, req ProcessPayrollRequest) ([]PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, payrollerrors.ErrInvalidDateRange
	}

	rates := req.Rates()
	s.logger.Debug("process payroll requested",
		zap.String("request_id", rid),
		zap.String("start", req.StartDate),
		zap.String("end", req.EndDate),
		zap.Int("employees", len(req.SelectedEmployees)),
		zap.Float64("tax_rate", rates.TaxRate),
		zap.Float64("insurance_rate", rates.InsuranceRate),
	)

	created := make([]string, 0, len(req.SelectedEmployees))
	for _, employeeID := range req.SelectedEmployees {
		id, skipped, err := s.processOne(ctx, employeeID, start, end, rates)
		if err != nil {
			s.logger.Error("process payroll employee failed",
				zap.String("request_id", rid),
				zap.String("employee_id", employeeID),
				zap.Error(err),
			)
			continue
		}
		if skipped != "" {
			s.logger.Debug("process payroll employee skipped",
				zap.String("employee_id", employeeID),
				zap.String("reason", skipped),
			)
			continue
		}
		created = append(created, id)
	}

	res := make([]PayrollResponse, 0, len(created))
	for _, id := range created {
		row, err := s.repo.FindRowByID(ctx, id)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		res = append(res, mapToResponse(*row))
	}

	s.logger.Info("process payroll success",
		zap.String("request_id", rid),
		zap.Int("requested", len(req.SelectedEmployees)),
		zap.Int("created", len(res)),
	)
	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "PAYROLL_PROCESSED",
		Message: "Payroll processed",
		Meta: map[string]any{
			"start_date": req.StartDate,
			"end_date":   req.EndDate,
			"requested":  len(req.SelectedEmployees),
			"created":    len(res),
		},
	})
	return res, nil
}

func (s *service) processOne(ctx context.Context, employeeID string, start, end time.Time, rates Rates) (string, string, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return "", "invalid id", nil
	}

	var (
		id     string
		reason string
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		emp, err := qtx.FindEmployee(ctx, employeeID)
		if err != nil {
			if dberr.IsNotFound(err) {
				reason = "employee not found"
				return nil
			}
			return err
		}
		if !emp.IsActive() {
			reason = "employee inactive"
			return nil
		}

		exists, err := qtx.ExistsForPeriod(ctx, employeeID, start, end)
		if err != nil {
			return err
		}
		if exists {
			reason = "duplicate period"
			return nil
		}

		var hours float64
		if emp.SalaryType == SalaryTypeHourly {
			hours, err = qtx.SumHours(ctx, employeeID, start, end)
			if err != nil {
				return err
			}
		}

		b := Calculate(GrossPay(emp.SalaryType, emp.BaseSalary, hours), rates)
		p := &Payroll{
			ID:                 uuid.New(),
			EmployeeID:         emp.ID,
			PayPeriodStart:     start,
			PayPeriodEnd:       end,
			GrossPay:           b.Gross,
			TaxDeduction:       b.Tax,
			InsuranceDeduction: b.Insurance,
			OtherDeductions:    b.Other,
			TotalDeductions:    b.Total,
			NetPay:             b.Net,
			Status:             StatusPending,
		}
		if err := qtx.Create(ctx, p); err != nil {
			return err
		}
		id = p.ID.String()
		return nil
	})
	if err != nil {
		// request paralel untuk periode yang sama: constraint yang menolak
		if isDuplicatePeriod(err) {
			return "", "duplicate period", nil
		}
		return "", "", err
	}
	return id, reason, nil
}

func (s *service) GetAll(ctx context.Context) ([]PayrollResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all payroll failed", zap.Error(err))
		return nil, err
	}
	res := make([]PayrollResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
	}
	row, err := s.repo.FindRowByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) GetStats(ctx context.Context) (PayrollStats, error) {
	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	stats, err := s.repo.GetStats(ctx, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		s.logger.Error("get payroll stats failed", zap.Error(err))
		return PayrollStats{}, err
	}
	return stats, nil
}

// UpdateStatus: pending|processing|paid bebas berpindah; paid mencatat processed_at.
func (s *service) UpdateStatus(ctx context.Context, id, status string) (PayrollResponse, error) {
	if !IsValidStatus(status) {
		return PayrollResponse{}, payrollerrors.ErrInvalidStatus
	}
	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		p, err := qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		p.Status = status
		if status == StatusPaid {
			at := s.now().UTC()
			p.ProcessedAt = &at
		}
		return mapRepositoryError(qtx.Update(ctx, p))
	})
	if err != nil {
		s.logger.Warn("update payroll status failed", zap.String("payroll_id", id), zap.Error(err))
		return PayrollResponse{}, err
	}

	s.logger.Info("update payroll status success",
		zap.String("payroll_id", id),
		zap.String("status", status),
	)
	if status == StatusPaid {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "PAYROLL_PAID",
			Message: "Payroll marked as paid",
			Meta:    map[string]any{"payroll_id": id},
		})
	}
	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return payrollerrors.ErrPayrollNotFound
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		p, err := qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if p.Status == StatusPaid {
			return payrollerrors.ErrCannotDeletePaid
		}
		return mapRepositoryError(qtx.Delete(ctx, id))
	})
	if err != nil {
		s.logger.Warn("delete payroll failed", zap.String("payroll_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete payroll success", zap.String("payroll_id", id))
	return nil
}

func (s *service) Payslip(ctx context.Context, id string) (Payslip, error) {
	resp, err := s.GetByID(ctx, id)
	if err != nil {
		return Payslip{}, err
	}

	content := buildPayslipPDF(payslipLines(resp))

	code := resp.EmployeeCode
	if code == "" {
		code = resp.EmployeeID
	}
	return Payslip{
		Filename: fmt.Sprintf("payslip-%s-%s.pdf", code, resp.PayPeriodEnd),
		Content:  content,
	}, nil
}

func mapToResponse(row PayrollRow) PayrollResponse {
	start := row.PayPeriodStart.Format(apperror.DateLayout)
	end := row.PayPeriodEnd.Format(apperror.DateLayout)

	var processedAt *string
	if row.ProcessedAt != nil {
		v := row.ProcessedAt.UTC().Format(time.RFC3339)
		processedAt = &v
	}

	return PayrollResponse{
		ID:                 row.ID.String(),
		EmployeeID:         row.EmployeeID.String(),
		EmployeeName:       strings.TrimSpace(row.FirstName + " " + row.LastName),
		EmployeeCode:       row.EmployeeCode,
		Department:         row.Department,
		Position:           row.Position,
		PayPeriod:          start + " to " + end,
		PayPeriodStart:     start,
		PayPeriodEnd:       end,
		GrossPay:           row.GrossPay,
		TaxDeduction:       row.TaxDeduction,
		InsuranceDeduction: row.InsuranceDeduction,
		OtherDeductions:    row.OtherDeductions,
		Deductions:         row.TotalDeductions,
		NetPay:             row.NetPay,
		Status:             row.Status,
		ProcessedAt:        processedAt,
		CreatedAt:          row.CreatedAt.UTC().Format(time.RFC3339),
	}
}
