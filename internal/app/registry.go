package app

import (
	"context"
	"net/http"
	"time"

	"go-payroll/internal/attendance"
	"go-payroll/internal/auth"
	"go-payroll/internal/bootstrap"
	"go-payroll/internal/config"
	"go-payroll/internal/dashboard"
	"go-payroll/internal/employee"
	"go-payroll/internal/middleware"
	"go-payroll/internal/payroll"
	"go-payroll/internal/report"
	"go-payroll/internal/session"
	"go-payroll/internal/shared/counter"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Dependencies struct {
	DB           *gorm.DB
	SessionStore session.Store
	Audit        bootstrap.AuditLogger
	Logger       *zap.Logger
}

// NewRouter memasang middleware global lalu mendaftarkan semua modul.
func NewRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.L()
	}
	if deps.Audit == nil {
		deps.Audit = bootstrap.NopAuditLogger{}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	if !cfg.IsProduction() {
		router.Use(gin.Logger())
	}

	tokens := session.NewTokenIssuer(cfg.Session.Secret)
	router.Use(
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.LoadSession(middleware.SessionConfig{
			Store:      deps.SessionStore,
			Tokens:     tokens,
			CookieName: cfg.Session.CookieName,
			Logger:     logger,
		}),
		middleware.ContextLogger(logger),
	)

	registerHealth(router, deps.DB)
	registerModules(router, cfg, deps, tokens)
	return router
}

func registerModules(router gin.IRouter, cfg *config.Config, deps Dependencies, tokens *session.TokenIssuer) {
	db, logger := deps.DB, deps.Logger

	// --- Repositories ---
	authRepo := auth.NewRepository(db)
	employeeRepo := employee.NewRepository(db)
	counterRepo := counter.NewRepository(db)
	attendanceRepo := attendance.NewRepository(db)
	payrollRepo := payroll.NewRepository(db)
	dashboardRepo := dashboard.NewRepository(db)
	reportRepo := report.NewRepository(db)

	// --- Services ---
	authService := auth.NewService(authRepo, auth.Options{
		Store:  deps.SessionStore,
		Tokens: tokens,
		TTL:    cfg.Session.TTL,
		Audit:  deps.Audit,
	}, logger)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, logger)
	attendanceService := attendance.NewService(db, attendanceRepo, attendance.Options{
		Location:   cfg.Attendance.Location,
		LateCutoff: cfg.Attendance.LateCutoff,
	}, logger)
	payrollService := payroll.NewService(db, payrollRepo, payroll.Options{Audit: deps.Audit}, logger)
	dashboardService := dashboard.NewService(dashboardRepo, dashboard.Options{Location: cfg.Attendance.Location}, logger)
	reportService := report.NewService(reportRepo, report.Options{Location: cfg.Attendance.Location}, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, auth.CookieConfig{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.Secure,
		TTL:    cfg.Session.TTL,
	}, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	payrollHandler := payroll.NewHandler(payrollService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)
	reportHandler := report.NewHandler(reportService, logger)

	// --- Routes Registration ---
	loginLimiter := middleware.RateLimitByIP(cfg.Server.LoginRatePerSec, cfg.Server.LoginRateBurst, http.MethodPost)
	auth.RegisterRoutes(router, authHandler, loginLimiter)
	employee.RegisterRoutes(router, employeeHandler)
	attendance.RegisterRoutes(router, attendanceHandler)
	payroll.RegisterRoutes(router, payrollHandler)
	dashboard.RegisterRoutes(router, dashboardHandler)
	report.RegisterRoutes(router, reportHandler)
}

func registerHealth(router gin.IRouter, db *gorm.DB) {
	router.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := "online"
		code := http.StatusOK
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			status = "error"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, response.ApiEnvelope{
			Success: code == http.StatusOK,
			Data:    gin.H{"database": status, "api": "running"},
		})
	})
}
