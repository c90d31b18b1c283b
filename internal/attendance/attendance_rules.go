package attendance

import (
	"time"

	attendanceerrors "go-payroll/internal/attendance/errors"
	"go-payroll/internal/shared/money"
)

// DefaultLateCutoff adalah batas jam masuk; lewat satu detik sudah dihitung late.
const DefaultLateCutoff = 9 * time.Hour

// timeOfDay returns the offset from local midnight at second precision.
func timeOfDay(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
}

// DeriveStatus: late jika jam lokal clock-in > cutoff, selain itu present.
func DeriveStatus(clockIn time.Time, cutoff time.Duration) string {
	if timeOfDay(clockIn) > cutoff {
		return StatusLate
	}
	return StatusPresent
}

// HoursWorked = detik(clock_out - clock_in) / 3600, dibulatkan 2 desimal.
// Shift lintas tengah malam tidak didukung: clock_out sebelum clock_in ditolak.
func HoursWorked(clockIn, clockOut time.Time) (float64, error) {
	in := clockIn.Truncate(time.Second)
	out := clockOut.Truncate(time.Second)
	if out.Before(in) {
		return 0, attendanceerrors.ErrClockOutBeforeClockIn
	}
	seconds := out.Unix() - in.Unix()
	return money.Round2(float64(seconds) / 3600), nil
}

// WorkDate normalises a local timestamp to its calendar date (UTC midnight),
// the representation used for the work_date column.
func WorkDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AtClock places a wall-clock offset on the record's calendar date in loc.
func AtClock(workDate time.Time, clock time.Duration, loc *time.Location) time.Time {
	y, m, d := workDate.Date()
	h := int(clock / time.Hour)
	mi := int(clock % time.Hour / time.Minute)
	sec := int(clock % time.Minute / time.Second)
	return time.Date(y, m, d, h, mi, sec, 0, loc)
}
