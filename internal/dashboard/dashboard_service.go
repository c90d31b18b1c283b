package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go-payroll/internal/attendance"
	"go-payroll/internal/shared/money"

	"go.uber.org/zap"
)

const (
	maxActivities      = 10
	activitiesPerKind  = 3
	trendMonths        = 6
	activityWindowDays = 7
	attendanceWindow   = 3

	healthOnline  = "online"
	healthError   = "error"
	healthRunning = "running"
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	GetStats(ctx context.Context) (DashboardStats, error)
	GetQuickStats(ctx context.Context) (QuickStats, error)
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
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{repo: repo, loc: opts.Location, now: opts.Now, logger: l}
}

// timeframe menyimpan titik-titik waktu yang dipakai satu request.
type timeframe struct {
	now        time.Time
	today      time.Time // tanggal kalender (UTC midnight), sama dengan kolom work_date
	dayStart   time.Time // awal hari lokal, untuk kolom timestamp
	monthStart time.Time // awal bulan lokal, untuk kolom timestamp
	period     DateRange // bulan berjalan untuk kolom date (pay_period_end)
}

func (s *service) timeframe() timeframe {
	now := s.now().In(s.loc)
	y, m, d := now.Date()
	today := attendance.WorkDate(now)
	periodStart := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	return timeframe{
		now:        now,
		today:      today,
		dayStart:   time.Date(y, m, d, 0, 0, 0, 0, s.loc),
		monthStart: time.Date(y, m, 1, 0, 0, 0, 0, s.loc),
		period:     DateRange{From: periodStart, To: periodStart.AddDate(0, 1, 0)},
	}
}

func (s *service) GetStats(ctx context.Context) (DashboardStats, error) {
	c := s.timeframe()
	var (
		stats DashboardStats
		err   error
	)

	if stats.TotalEmployees, err = s.repo.CountActiveEmployees(ctx); err != nil {
		return s.fail("count employees", err)
	}

	month, err := s.repo.SumPayroll(ctx, &c.period)
	if err != nil {
		return s.fail("sum monthly payroll", err)
	}
	stats.MonthlyPayroll = money.Round2(month.Net)
	stats.TotalDeductions = money.Round2(month.Deductions)

	all, err := s.repo.SumPayroll(ctx, nil)
	if err != nil {
		return s.fail("sum total payroll", err)
	}
	stats.TotalPayroll = money.Round2(all.Net)

	if stats.PendingPayrolls, err = s.repo.CountPayrollsByStatus(ctx, statusPending); err != nil {
		return s.fail("count pending payrolls", err)
	}
	if stats.PresentToday, err = s.repo.CountAttendance(ctx, c.today, statusPresent, statusLate); err != nil {
		return s.fail("count present today", err)
	}

	avg, err := s.repo.AverageSalary(ctx)
	if err != nil {
		return s.fail("average salary", err)
	}
	stats.AverageSalary = money.Round2(avg)
	stats.AttendanceRate = attendance.AttendanceRate(stats.PresentToday, stats.TotalEmployees)

	if stats.Departments, err = s.repo.DepartmentSummary(ctx); err != nil {
		return s.fail("department summary", err)
	}
	if stats.Departments == nil {
		stats.Departments = []DepartmentSummary{}
	}
	for i := range stats.Departments {
		stats.Departments[i].AverageSalary = money.Round2(stats.Departments[i].AverageSalary)
	}

	if stats.RecentActivities, err = s.recentActivities(ctx, c); err != nil {
		return s.fail("recent activities", err)
	}
	if stats.PayrollTrends, err = s.payrollTrends(ctx, c); err != nil {
		return s.fail("payroll trends", err)
	}

	stats.SystemHealth = SystemHealth{Database: healthOnline, API: healthRunning}
	if err := s.repo.Ping(ctx); err != nil {
		s.logger.Warn("database ping failed", zap.Error(err))
		stats.SystemHealth.Database = healthError
	}

	return stats, nil
}

func (s *service) fail(step string, err error) (DashboardStats, error) {
	s.logger.Error("dashboard stats failed", zap.String("step", step), zap.Error(err))
	return DashboardStats{}, err
}

// recentActivities menggabungkan tiga sumber aktivitas, terbaru dulu, maksimal sepuluh.
func (s *service) recentActivities(ctx context.Context, c timeframe) ([]Activity, error) {
	activities := []Activity{}
	since := c.now.AddDate(0, 0, -activityWindowDays).UTC()

	emps, err := s.repo.RecentEmployees(ctx, since, activitiesPerKind)
	if err != nil {
		return nil, err
	}
	for _, e := range emps {
		activities = append(activities, Activity{
			Type:        "Employee Added",
			Description: e.FirstName + " " + e.LastName + " joined the company",
			Timestamp:   e.CreatedAt.In(s.loc),
			Icon:        "👥",
		})
	}

	created, err := s.repo.PayrollCreatedTimes(ctx, since)
	if err != nil {
		return nil, err
	}
	for _, b := range s.groupByDay(created, true) {
		activities = append(activities, Activity{
			Type:        "Payroll Processed",
			Description: fmt.Sprintf("Processed payroll for %d employees", b.count),
			Timestamp:   b.latest,
			Icon:        "💰",
		})
	}

	dates, err := s.repo.AttendanceDates(ctx, c.today.AddDate(0, 0, -attendanceWindow))
	if err != nil {
		return nil, err
	}
	for _, b := range s.groupByDay(dates, false) {
		activities = append(activities, Activity{
			Type:        "Attendance Recorded",
			Description: fmt.Sprintf("%d employees recorded attendance", b.count),
			Timestamp:   b.latest,
			Icon:        "⏰",
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if len(activities) > maxActivities {
		activities = activities[:maxActivities]
	}
	return activities, nil
}

type dayBucket struct {
	day    string
	count  int
	latest time.Time
}

// groupByDay: instant=true berarti timestamp (dikelompokkan per hari lokal),
// false berarti tanggal kalender yang ditampilkan sebagai tengah malam lokal.
func (s *service) groupByDay(values []time.Time, instant bool) []dayBucket {
	idx := map[string]int{}
	var buckets []dayBucket
	for _, v := range values {
		var t time.Time
		if instant {
			t = v.In(s.loc)
		} else {
			y, m, d := v.UTC().Date()
			t = time.Date(y, m, d, 0, 0, 0, 0, s.loc)
		}
		key := t.Format(time.DateOnly)
		i, ok := idx[key]
		if !ok {
			idx[key] = len(buckets)
			buckets = append(buckets, dayBucket{day: key, latest: t})
			i = len(buckets) - 1
		}
		buckets[i].count++
		if t.After(buckets[i].latest) {
			buckets[i].latest = t
		}
	}

	sort.Slice(buckets, func(i, j int) bool { return buckets[i].day > buckets[j].day })
	if len(buckets) > activitiesPerKind {
		buckets = buckets[:activitiesPerKind]
	}
	return buckets
}

// payrollTrends: enam bulan terakhir termasuk bulan berjalan, yang terlama dulu.
func (s *service) payrollTrends(ctx context.Context, c timeframe) ([]TrendPoint, error) {
	trends := make([]TrendPoint, 0, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		start := c.period.From.AddDate(0, -i, 0)
		rg := DateRange{From: start, To: start.AddDate(0, 1, 0)}
		sums, err := s.repo.SumPayroll(ctx, &rg)
		if err != nil {
			return nil, err
		}
		trends = append(trends, TrendPoint{
			Month:  start.Format("Jan"),
			Period: start.Format("2006-01"),
			Amount: money.Round2(sums.Net),
		})
	}
	return trends, nil
}

func (s *service) GetQuickStats(ctx context.Context) (QuickStats, error) {
	c := s.timeframe()
	var (
		q   QuickStats
		err error
	)
	fail := func(step string, err error) (QuickStats, error) {
		s.logger.Error("dashboard quick stats failed", zap.String("step", step), zap.Error(err))
		return QuickStats{}, err
	}

	if q.Today.Present, err = s.repo.CountAttendance(ctx, c.today, statusPresent, statusLate); err != nil {
		return fail("present today", err)
	}
	if q.Today.Late, err = s.repo.CountAttendance(ctx, c.today, statusLate); err != nil {
		return fail("late today", err)
	}
	today := DateRange{From: c.dayStart.UTC(), To: c.dayStart.AddDate(0, 0, 1).UTC()}
	if q.Today.NewEmployees, err = s.repo.CountEmployeesCreated(ctx, today); err != nil {
		return fail("new employees today", err)
	}

	sums, err := s.repo.SumPayroll(ctx, &c.period)
	if err != nil {
		return fail("payroll this month", err)
	}
	q.Month.PayrollTotal = money.Round2(sums.Net)
	month := DateRange{From: c.monthStart.UTC(), To: c.monthStart.AddDate(0, 1, 0).UTC()}
	if q.Month.EmployeesAdded, err = s.repo.CountEmployeesCreated(ctx, month); err != nil {
		return fail("employees added this month", err)
	}
	if q.Month.PayrollsProcessed, err = s.repo.CountPayrollsCreated(ctx, month); err != nil {
		return fail("payrolls processed this month", err)
	}

	if q.Overall.TotalEmployees, err = s.repo.CountActiveEmployees(ctx); err != nil {
		return fail("total employees", err)
	}
	if q.Overall.TotalDepartments, err = s.repo.CountDepartments(ctx); err != nil {
		return fail("total departments", err)
	}
	if q.Overall.PendingPayrolls, err = s.repo.CountPayrollsByStatus(ctx, statusPending); err != nil {
		return fail("pending payrolls", err)
	}
	return q, nil
}
