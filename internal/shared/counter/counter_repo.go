package counter

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

const EmployeeCode = "employee_code"

type Counter struct {
	Name      string `gorm:"primaryKey;size:64"`
	LastValue int64  `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

func (Counter) TableName() string {
	return "counters"
}

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	GetNextValue(ctx context.Context, name string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) GetNextValue(ctx context.Context, name string) (int64, error) {
	var nextValue int64

	// UPSERT + increment atomik supaya dua request paralel tidak dapat nomor yang sama
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO counters (name, last_value, updated_at)
		VALUES (?, 1, ?)
		ON CONFLICT (name) DO UPDATE
		SET last_value = counters.last_value + 1, updated_at = excluded.updated_at
		RETURNING last_value
	`, name, time.Now().UTC()).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}

// FormatEmployeeCode renders a sequence value as EMP-000123.
func FormatEmployeeCode(v int64) string {
	return fmt.Sprintf("EMP-%06d", v)
}
