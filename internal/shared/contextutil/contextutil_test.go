package contextutil_test

import (
	"context"
	"testing"

	"go-payroll/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPrincipal(t *testing.T) {
	ctx := context.Background()
	_, ok := contextutil.GetPrincipal(ctx)
	assert.False(t, ok)

	ctx = contextutil.WithPrincipal(ctx, contextutil.Principal{UserID: "u-1", Role: "hr"})
	p, ok := contextutil.GetPrincipal(ctx)
	assert.True(t, ok)
	assert.True(t, p.HasRole("admin", "hr"))
	assert.False(t, p.HasRole("admin"))
	assert.Equal(t, "u-1", contextutil.GetUserID(ctx))
}

func TestMetadataAndLogger(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	ctx = contextutil.WithPrincipal(ctx, contextutil.Principal{UserID: "u-2", Role: "admin"})

	md := contextutil.ExtractMetadata(ctx)
	assert.Equal(t, "rid-1", md.RequestID)
	assert.Equal(t, "u-2", md.UserID)
	assert.Equal(t, "admin", md.Role)

	assert.NotNil(t, contextutil.GetLogger(ctx, nil))

	l := zap.NewExample()
	assert.Same(t, l, contextutil.GetLogger(contextutil.WithLogger(ctx, l), nil))
}
