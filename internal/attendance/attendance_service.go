package attendance

import (
	"context"
	"strings"
	"time"

	attendanceerrors "go-payroll/internal/attendance/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/dberr"
	"go-payroll/internal/shared/money"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const clockLayout = "15:04:05"

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, employeeID string) (AttendanceResponse, error)
	ClockOut(ctx context.Context, employeeID string) (AttendanceResponse, error)
	MarkAbsent(ctx context.Context, req MarkAbsentRequest) (AttendanceResponse, error)
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]AttendanceResponse, error)
	GetStats(ctx context.Context) (AttendanceStats, error)
}

type Options struct {
	Location   *time.Location
	LateCutoff time.Duration
	Now        func() time.Time
}

type service struct {
	db     *gorm.DB
	repo   Repository
	loc    *time.Location
	cutoff time.Duration
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.LateCutoff == 0 {
		opts.LateCutoff = DefaultLateCutoff
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		db:     db,
		repo:   repo,
		loc:    opts.Location,
		cutoff: opts.LateCutoff,
		now:    opts.Now,
		logger: l,
	}
}

func (s *service) localNow() time.Time {
	return s.now().In(s.loc).Truncate(time.Second)
}

func (s *service) activeEmployee(ctx context.Context, repo Repository, employeeID string) (*EmployeeRef, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, attendanceerrors.ErrEmployeeNotFoundOrInactive
	}
	emp, err := repo.FindEmployee(ctx, employeeID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, attendanceerrors.ErrEmployeeNotFoundOrInactive
		}
		return nil, err
	}
	if !emp.IsActive() {
		return nil, attendanceerrors.ErrEmployeeNotFoundOrInactive
	}
	return emp, nil
}

func (s *service) ClockIn(ctx context.Context, employeeID string) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	now := s.localNow()
	date := WorkDate(now)

	s.logger.Debug("clock in requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Time("at", now),
	)

	var id uuid.UUID
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if _, err := s.activeEmployee(ctx, qtx, employeeID); err != nil {
			return err
		}

		existing, err := qtx.FindByEmployeeAndDate(ctx, employeeID, date)
		if err != nil && !dberr.IsNotFound(err) {
			return err
		}

		status := DeriveStatus(now, s.cutoff)

		if existing == nil {
			att := &Attendance{
				ID:         uuid.New(),
				EmployeeID: uuid.MustParse(employeeID),
				WorkDate:   date,
				ClockIn:    &now,
				Status:     status,
			}
			if err := qtx.Create(ctx, att); err != nil {
				s.logger.Warn("clock in persist failed", zap.Error(err))
				return mapRepositoryError(err)
			}
			id = att.ID
			return nil
		}

		if existing.ClockIn != nil {
			if existing.ClockOut != nil {
				return attendanceerrors.ErrAlreadyCompleted
			}
			return attendanceerrors.ErrAlreadyClockedIn
		}

		// record tanpa clock_in (mis. sudah ditandai absent) diisi di tempat
		existing.ClockIn = &now
		existing.Status = status
		if err := qtx.Update(ctx, existing); err != nil {
			return mapRepositoryError(err)
		}
		id = existing.ID
		return nil
	})
	if err != nil {
		s.logger.Warn("clock in failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("clock in success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("attendance_id", id.String()),
	)
	return s.load(ctx, id.String())
}

func (s *service) ClockOut(ctx context.Context, employeeID string) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	now := s.localNow()
	date := WorkDate(now)

	s.logger.Debug("clock out requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)

	if _, err := uuid.Parse(employeeID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrNoClockIn
	}

	var id uuid.UUID
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		att, err := qtx.FindByEmployeeAndDate(ctx, employeeID, date)
		if err != nil {
			if dberr.IsNotFound(err) {
				return attendanceerrors.ErrNoClockIn
			}
			return err
		}
		if att.ClockIn == nil {
			return attendanceerrors.ErrNoClockIn
		}
		if att.ClockOut != nil {
			return attendanceerrors.ErrAlreadyClockedOut
		}

		hours, err := HoursWorked(*att.ClockIn, now)
		if err != nil {
			return err
		}

		att.ClockOut = &now
		att.HoursWorked = &hours
		if err := qtx.Update(ctx, att); err != nil {
			return mapRepositoryError(err)
		}
		id = att.ID
		return nil
	})
	if err != nil {
		s.logger.Warn("clock out failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("clock out success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("attendance_id", id.String()),
	)
	return s.load(ctx, id.String())
}

// MarkAbsent membuat record absent atau menimpa status record yang ada.
// Jam masuk/keluar tidak disentuh.
func (s *service) MarkAbsent(ctx context.Context, req MarkAbsentRequest) (AttendanceResponse, error) {
	date := WorkDate(s.localNow())
	if req.Date != "" {
		d, err := time.Parse(apperror.DateLayout, req.Date)
		if err != nil {
			return AttendanceResponse{}, attendanceerrors.ErrInvalidDate
		}
		date = d
	}

	var id uuid.UUID
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if _, err := s.activeEmployee(ctx, qtx, req.EmployeeID); err != nil {
			return err
		}

		existing, err := qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, date)
		if err != nil && !dberr.IsNotFound(err) {
			return err
		}

		if existing != nil {
			existing.Status = StatusAbsent
			id = existing.ID
			return mapRepositoryError(qtx.Update(ctx, existing))
		}

		att := &Attendance{
			ID:         uuid.New(),
			EmployeeID: uuid.MustParse(req.EmployeeID),
			WorkDate:   date,
			Status:     StatusAbsent,
		}
		id = att.ID
		return mapRepositoryError(qtx.Create(ctx, att))
	})
	if err != nil {
		s.logger.Warn("mark absent failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("mark absent success",
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", date.Format(apperror.DateLayout)),
	)
	return s.load(ctx, id.String())
}

// Update: status tidak pernah diturunkan ulang dari jam; hours_worked hanya
// dihitung ulang kalau kedua jam terisi setelah patch.
func (s *service) Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error) {
	s.logger.Debug("update attendance requested", zap.String("attendance_id", req.ID))

	if req.IsEmpty() {
		return AttendanceResponse{}, apperror.ErrNoFieldsToUpdate
	}

	var clockIn, clockOut *time.Duration
	if req.ClockIn != nil {
		d, ok := apperror.ParseClock(*req.ClockIn)
		if !ok {
			return AttendanceResponse{}, apperror.InvalidField("Clock In")
		}
		clockIn = &d
	}
	if req.ClockOut != nil {
		d, ok := apperror.ParseClock(*req.ClockOut)
		if !ok {
			return AttendanceResponse{}, apperror.InvalidField("Clock Out")
		}
		clockOut = &d
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		att, err := qtx.FindByID(ctx, req.ID)
		if err != nil {
			return mapRepositoryError(err)
		}

		if clockIn != nil {
			t := AtClock(att.WorkDate, *clockIn, s.loc)
			att.ClockIn = &t
		}
		if clockOut != nil {
			t := AtClock(att.WorkDate, *clockOut, s.loc)
			att.ClockOut = &t
		}
		if req.Status != nil {
			att.Status = *req.Status
		}
		if req.Notes != nil {
			notes := strings.TrimSpace(*req.Notes)
			att.Notes = &notes
		}

		if att.ClockIn != nil && att.ClockOut != nil {
			hours, err := HoursWorked(*att.ClockIn, *att.ClockOut)
			if err != nil {
				return err
			}
			att.HoursWorked = &hours
		}

		return mapRepositoryError(qtx.Update(ctx, att))
	})
	if err != nil {
		s.logger.Warn("update attendance failed", zap.String("attendance_id", req.ID), zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("update attendance success", zap.String("attendance_id", req.ID))
	return s.load(ctx, req.ID)
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]AttendanceResponse, error) {
	var date *time.Time
	if filter.Date != "" {
		d, err := time.Parse(apperror.DateLayout, filter.Date)
		if err != nil {
			return nil, attendanceerrors.ErrInvalidDate
		}
		date = &d
	}

	rows, err := s.repo.FindAll(ctx, date)
	if err != nil {
		s.logger.Error("get attendance failed", zap.Error(err))
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, row := range rows {
		res[i] = s.mapToResponse(row)
	}
	return res, nil
}

func (s *service) GetStats(ctx context.Context) (AttendanceStats, error) {
	now := s.localNow()
	today := WorkDate(now)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	stats, err := s.repo.GetStats(ctx, today, monthStart, monthEnd)
	if err != nil {
		s.logger.Error("get attendance stats failed", zap.Error(err))
		return AttendanceStats{}, err
	}

	stats.AbsentToday = max(stats.TotalEmployees-stats.PresentToday, 0)
	stats.AttendanceRate = AttendanceRate(stats.PresentToday, stats.TotalEmployees)
	stats.AverageHoursMonth = money.Round1(stats.AverageHoursMonth)
	for i := range stats.DepartmentBreakdown {
		d := &stats.DepartmentBreakdown[i]
		d.Rate = AttendanceRate(d.Present, d.Total)
	}
	return stats, nil
}

// AttendanceRate = hadir ÷ total × 100, satu desimal; 0 kalau total 0.
func AttendanceRate(present, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return money.Round1(float64(present) / float64(total) * 100)
}

func (s *service) load(ctx context.Context, id string) (AttendanceResponse, error) {
	row, err := s.repo.FindRowByID(ctx, id)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	return s.mapToResponse(*row), nil
}

func (s *service) formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.In(s.loc).Format(clockLayout)
	return &v
}

func (s *service) mapToResponse(row AttendanceRow) AttendanceResponse {
	name := strings.TrimSpace(row.FirstName + " " + row.LastName)
	return AttendanceResponse{
		ID:           row.ID.String(),
		EmployeeID:   row.EmployeeID.String(),
		EmployeeName: name,
		EmployeeCode: row.EmployeeCode,
		Department:   row.Department,
		Date:         row.WorkDate.Format(apperror.DateLayout),
		ClockIn:      s.formatClock(row.ClockIn),
		ClockOut:     s.formatClock(row.ClockOut),
		HoursWorked:  row.HoursWorked,
		Status:       row.Status,
		Notes:        row.Notes,
		CreatedAt:    row.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    row.UpdatedAt.Format(time.RFC3339),
	}
}
