package app

import (
	"go-payroll/internal/bootstrap"
	"go-payroll/internal/config"
	"go-payroll/internal/session"
	"go-payroll/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	Audit  bootstrap.AuditLogger

	db     *gorm.DB
	rdb    *redis.Client
	logger *zap.Logger
}

// BuildApp membuka koneksi database + redis lalu merakit router.
func BuildApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	db, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis, cfg.Database.MaxRetries)
	if err != nil {
		closeDB(db, logger)
		return nil, err
	}
	logger.Info("redis connection established")

	audit := bootstrap.NewStdoutAuditLogger(logger)
	router := NewRouter(cfg, Dependencies{
		DB:           db,
		SessionStore: session.NewRedisStore(rdb),
		Audit:        audit,
		Logger:       logger,
	})

	return &App{
		Config: cfg,
		Router: router,
		Audit:  audit,
		db:     db,
		rdb:    rdb,
		logger: logger,
	}, nil
}

func (a *App) Close() {
	if err := a.rdb.Close(); err != nil {
		a.logger.Warn("close redis failed", zap.Error(err))
	}
	closeDB(a.db, a.logger)
}

func closeDB(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn("close database failed", zap.Error(err))
	}
}
