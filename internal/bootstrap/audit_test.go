package bootstrap

import (
	"context"
	"testing"
	"time"

	"go-payroll/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewStdoutAuditLogger(zap.New(core))
	l.now = func() time.Time { return time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC) }

	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	ctx = contextutil.WithPrincipal(ctx, contextutil.Principal{UserID: "u1", Role: "hr"})

	l.Log(ctx, AuditLog{Action: "PAYROLL_PROCESSED", Message: "payroll run", Meta: map[string]any{"count": 2}})

	entries := logs.All()
	assert.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "audit", entries[0].LoggerName)
	assert.Equal(t, "PAYROLL_PROCESSED", fields["action"])
	assert.Equal(t, "rid-1", fields["request_id"])
	assert.Equal(t, "u1", fields["actor_id"])
	assert.Equal(t, "hr", fields["actor_role"])
	assert.Equal(t, "2024-03-04T10:00:00Z", fields["timestamp"])
}

func TestNopAuditLogger(t *testing.T) {
	var l AuditLogger = NopAuditLogger{}
	l.Log(context.Background(), AuditLog{Action: "X"})
}
