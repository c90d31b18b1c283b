package employee

import (
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if dberr.IsNotFound(err) {
		return employeeerrors.ErrEmployeeNotFound
	}

	// Postgres melaporkan nama constraint, SQLite melaporkan tabel.kolom
	if dberr.IsUniqueViolation(err, "uq_employees_employee_code", "employees.employee_code") {
		return employeeerrors.ErrEmployeeCodeAlreadyExists
	}
	if dberr.IsUniqueViolation(err, "uq_employees_email", "employees.email") {
		return employeeerrors.ErrEmailAlreadyExists
	}

	return err
}
