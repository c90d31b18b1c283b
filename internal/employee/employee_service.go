package employee

import (
	"context"
	"strings"
	"time"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) (DeleteResult, error)
	GetStats(ctx context.Context) (EmployeeStats, error)
}

type service struct {
	db      *gorm.DB
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("employee_code", req.EmployeeCode),
	)

	hireDate, err := time.Parse(apperror.DateLayout, req.HireDate)
	if err != nil {
		s.logger.Warn("create employee invalid hire_date", zap.String("hire_date", req.HireDate), zap.Error(err))
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	empl := &Employee{
		ID:           uuid.New(),
		EmployeeCode: strings.TrimSpace(req.EmployeeCode),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        strings.TrimSpace(req.Phone),
		Department:   strings.TrimSpace(req.Department),
		Position:     strings.TrimSpace(req.Position),
		HireDate:     hireDate,
		SalaryType:   req.SalaryType,
		BaseSalary:   req.BaseSalary,
		Status:       status,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if empl.EmployeeCode == "" {
			nextVal, err := s.counter.WithTx(tx).GetNextValue(ctx, counter.EmployeeCode)
			if err != nil {
				s.logger.Error("create employee generate code failed", zap.Error(err))
				return err
			}
			empl.EmployeeCode = counter.FormatEmployeeCode(nextVal)
		}

		exists, err := qtx.ExistsByCode(ctx, empl.EmployeeCode, "")
		if err != nil {
			return err
		}
		if exists {
			return employeeerrors.ErrEmployeeCodeAlreadyExists
		}

		exists, err = qtx.ExistsByEmail(ctx, empl.Email, "")
		if err != nil {
			return err
		}
		if exists {
			return employeeerrors.ErrEmailAlreadyExists
		}

		// unique constraint tetap jadi jaring terakhir kalau ada request paralel
		if err := qtx.Create(ctx, empl); err != nil {
			s.logger.Error("create employee persist failed", zap.Error(err))
			return mapRepositoryError(err)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("create employee failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_code", empl.EmployeeCode),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Debug("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", req.ID))

	if req.IsEmpty() {
		return EmployeeResponse{}, apperror.ErrNoFieldsToUpdate
	}

	var hireDate *time.Time
	if req.HireDate != nil {
		d, err := time.Parse(apperror.DateLayout, *req.HireDate)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
		}
		hireDate = &d
	}

	var updated Employee
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err := qtx.FindByID(ctx, req.ID)
		if err != nil {
			return mapRepositoryError(err)
		}

		if req.EmployeeCode != nil {
			code := strings.TrimSpace(*req.EmployeeCode)
			if code != empl.EmployeeCode {
				exists, err := qtx.ExistsByCode(ctx, code, req.ID)
				if err != nil {
					return err
				}
				if exists {
					return employeeerrors.ErrEmployeeCodeAlreadyExists
				}
			}
			empl.EmployeeCode = code
		}

		if req.Email != nil {
			email := strings.ToLower(strings.TrimSpace(*req.Email))
			if email != empl.Email {
				exists, err := qtx.ExistsByEmail(ctx, email, req.ID)
				if err != nil {
					return err
				}
				if exists {
					return employeeerrors.ErrEmailAlreadyExists
				}
			}
			empl.Email = email
		}

		applyPatch(empl, req, hireDate)

		if err := qtx.Update(ctx, empl); err != nil {
			s.logger.Error("update employee persist failed", zap.Error(err))
			return mapRepositoryError(err)
		}
		updated = *empl
		return nil
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", req.ID))

	return mapToResponse(updated), nil
}

// Delete: hard delete kalau belum punya histori, selain itu cukup dinonaktifkan.
func (s *service) Delete(ctx context.Context, id string) (DeleteResult, error) {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	var result DeleteResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if _, err := qtx.FindByID(ctx, id); err != nil {
			return mapRepositoryError(err)
		}

		history, err := qtx.CountHistory(ctx, id)
		if err != nil {
			s.logger.Error("delete employee count history failed", zap.Error(err))
			return err
		}

		if history > 0 {
			result.Deactivated = true
			return mapRepositoryError(qtx.Deactivate(ctx, id))
		}
		return mapRepositoryError(qtx.Delete(ctx, id))
	})
	if err != nil {
		return DeleteResult{}, err
	}

	s.logger.Info("delete employee success",
		zap.String("employee_id", id),
		zap.Bool("deactivated", result.Deactivated),
	)
	return result, nil
}

func (s *service) GetStats(ctx context.Context) (EmployeeStats, error) {
	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		s.logger.Error("get employee stats failed", zap.Error(err))
		return EmployeeStats{}, err
	}
	return stats, nil
}

func applyPatch(empl *Employee, req UpdateEmployeeRequest, hireDate *time.Time) {
	if req.FirstName != nil {
		empl.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		empl.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		empl.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Department != nil {
		empl.Department = strings.TrimSpace(*req.Department)
	}
	if req.Position != nil {
		empl.Position = strings.TrimSpace(*req.Position)
	}
	if hireDate != nil {
		empl.HireDate = *hireDate
	}
	if req.SalaryType != nil {
		empl.SalaryType = *req.SalaryType
	}
	if req.BaseSalary != nil {
		empl.BaseSalary = *req.BaseSalary
	}
	if req.Status != nil {
		empl.Status = *req.Status
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           empl.ID.String(),
		EmployeeCode: empl.EmployeeCode,
		FirstName:    empl.FirstName,
		LastName:     empl.LastName,
		Name:         empl.FullName(),
		Email:        empl.Email,
		Phone:        empl.Phone,
		Department:   empl.Department,
		Position:     empl.Position,
		HireDate:     empl.HireDate.Format(apperror.DateLayout),
		SalaryType:   empl.SalaryType,
		BaseSalary:   empl.BaseSalary,
		Status:       empl.Status,
		CreatedAt:    empl.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    empl.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
