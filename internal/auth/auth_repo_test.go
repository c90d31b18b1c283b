package auth

import (
	"context"
	"testing"

	"go-payroll/internal/shared/dberr"
	"go-payroll/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestRepository(t *testing.T) {
	db := testdb.Open(t, &User{})
	repo := NewRepository(db)
	ctx := context.Background()

	u := &User{ID: uuid.New(), Name: "Admin", Email: "admin@payroll.com", Password: "hash", Role: RoleAdmin}
	assert.NoError(t, repo.Create(ctx, u))

	got, err := repo.FindByEmail(ctx, "admin@payroll.com")
	assert.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	exists, err := repo.ExistsByEmail(ctx, "admin@payroll.com")
	assert.NoError(t, err)
	assert.True(t, exists)

	dup := &User{ID: uuid.New(), Name: "Dup", Email: "admin@payroll.com", Password: "hash", Role: RoleHR}
	err = repo.Create(ctx, dup)
	assert.True(t, dberr.IsUniqueViolation(err, "uq_users_email", "users.email"))

	assert.NoError(t, repo.UpdatePassword(ctx, u.ID.String(), "new-hash"))
	got, err = repo.FindByID(ctx, u.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, "new-hash", got.Password)

	assert.ErrorIs(t, repo.UpdatePassword(ctx, uuid.NewString(), "x"), gorm.ErrRecordNotFound)
	assert.NoError(t, repo.Touch(ctx, u.ID.String()))

	users, err := repo.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 1)
}
