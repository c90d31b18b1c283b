package bootstrap

import "context"

// AuditLog adalah satu kejadian penting (login, payroll diproses/dibayar, shutdown).
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

// NopAuditLogger dipakai di test dan saat audit tidak dikonfigurasi.
type NopAuditLogger struct{}

func (NopAuditLogger) Log(context.Context, AuditLog) {}
