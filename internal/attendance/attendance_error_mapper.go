package attendance

import (
	attendanceerrors "go-payroll/internal/attendance/errors"
	"go-payroll/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if dberr.IsNotFound(err) {
		return attendanceerrors.ErrAttendanceNotFound
	}

	// dua clock-in paralel: constraint (employee_id, work_date) yang menolak
	if dberr.IsUniqueViolation(err, "uq_attendance_employee_date", "attendances.employee_id") {
		return attendanceerrors.ErrAlreadyClockedIn
	}

	return err
}
