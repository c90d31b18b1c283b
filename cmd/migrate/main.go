package main

import (
	"context"
	"fmt"
	"os"

	"go-payroll/internal/auth"
	"go-payroll/internal/config"
	"go-payroll/internal/migration"
	"go-payroll/internal/shared/connection"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const usage = "usage: migrate [up|down|status|seed]"

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	if err := run(cmd, logger); err != nil {
		logger.Fatal("migrate failed", zap.String("command", cmd), zap.Error(err))
	}
}

func run(cmd string, logger *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	switch cmd {
	case "up":
		if err := migration.Up(sqlDB); err != nil {
			return err
		}
		logger.Info("migrations applied")
		return seedAdmin(cfg, auth.NewRepository(db), logger)
	case "down":
		return migration.Down(sqlDB)
	case "status":
		return migration.Status(sqlDB)
	case "seed":
		return seedAdmin(cfg, auth.NewRepository(db), logger)
	default:
		return fmt.Errorf("unknown command %q, %s", cmd, usage)
	}
}

// seedAdmin membuat akun admin default kalau belum ada.
func seedAdmin(cfg *config.Config, repo auth.Repository, logger *zap.Logger) error {
	svc := auth.NewService(repo, auth.Options{}, logger)
	created, err := svc.EnsureAdmin(context.Background(), cfg.Seed.AdminName, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}
	if created {
		logger.Info("default admin created", zap.String("email", cfg.Seed.AdminEmail))
	} else {
		logger.Info("default admin already exists", zap.String("email", cfg.Seed.AdminEmail))
	}
	return nil
}
