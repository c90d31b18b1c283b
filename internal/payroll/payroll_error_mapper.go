package payroll

import (
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if dberr.IsNotFound(err) {
		return payrollerrors.ErrPayrollNotFound
	}
	return err
}

func isDuplicatePeriod(err error) bool {
	return dberr.IsUniqueViolation(err, "uq_payroll_employee_period", "payrolls.employee_id")
}
