package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "time/tzdata"

	"golang.org/x/time/rate"
)

type Config struct {
	Env        string
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Session    SessionConfig
	Attendance AttendanceConfig
	CORS       CORSConfig
	Seed       SeedConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	LoginRatePerSec rate.Limit
	LoginRateBurst  int
}

type DatabaseConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
	MaxRetries int
}

// DSN returns a PostgreSQL connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.DBName, c.Port, c.SSLMode,
	)
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret     string
	TTL        time.Duration
	CookieName string
	Secure     bool
}

type AttendanceConfig struct {
	Location   *time.Location
	LateCutoff time.Duration // offset dari tengah malam waktu lokal
}

type CORSConfig struct {
	AllowOrigins []string // kosong = semua origin
}

type SeedConfig struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load membaca konfigurasi dari environment. godotenv.Load() dipanggil di main
// sebelum fungsi ini.
func Load() (*Config, error) {
	loc, err := time.LoadLocation(getEnv("APP_TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}

	cutoff, err := parseClock(getEnv("LATE_CUTOFF", "09:00:00"))
	if err != nil {
		return nil, fmt.Errorf("invalid LATE_CUTOFF: %w", err)
	}

	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	env := getEnv("APP_ENV", "development")
	secret := getEnv("SESSION_SECRET", "")
	if secret == "" {
		if env == "production" {
			return nil, fmt.Errorf("SESSION_SECRET is required in production")
		}
		secret = "dev-session-secret"
	}

	return &Config{
		Env: env,
		Server: ServerConfig{
			Port:            getEnv("PORT", "3000"),
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			LoginRatePerSec: rate.Limit(getEnvFloat("LOGIN_RATE_LIMIT", 0.2)),
			LoginRateBurst:  getEnvInt("LOGIN_RATE_BURST", 5),
		},
		Database: DatabaseConfig{
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", "postgres"),
			DBName:     getEnv("DB_NAME", "payroll_system"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			MaxRetries: getEnvInt("DB_MAX_RETRIES", 5),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			Secret:     secret,
			TTL:        sessionTTL,
			CookieName: getEnv("SESSION_COOKIE", "payroll_session"),
			Secure:     env == "production",
		},
		Attendance: AttendanceConfig{
			Location:   loc,
			LateCutoff: cutoff,
		},
		CORS: CORSConfig{
			AllowOrigins: splitCSV(getEnv("CORS_ORIGINS", "")),
		},
		Seed: SeedConfig{
			AdminName:     getEnv("SEED_ADMIN_NAME", "System Administrator"),
			AdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@payroll.com"),
			AdminPassword: getEnv("SEED_ADMIN_PASSWORD", "admin123"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return defaultValue
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}
