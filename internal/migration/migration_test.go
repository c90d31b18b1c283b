package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(embedMigrations, "migrations")
	assert.NoError(t, err)
	assert.Len(t, entries, 5)

	for _, e := range entries {
		body, err := fs.ReadFile(embedMigrations, "migrations/"+e.Name())
		assert.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", e.Name())
		assert.Contains(t, string(body), "-- +goose Down", e.Name())
	}

	payrolls, _ := fs.ReadFile(embedMigrations, "migrations/00004_create_payrolls.sql")
	assert.True(t, strings.Contains(string(payrolls), "uq_payroll_employee_period"))
}
