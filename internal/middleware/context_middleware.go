package middleware

import (
	"go-payroll/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger memasang logger per-request (request_id + user_id) ke context.
// Dipasang setelah RequestID dan LoadSession.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		rid := contextutil.GetRequestID(ctx)
		if rid == "" {
			rid = uuid.New().String()
			ctx = contextutil.WithRequestID(ctx, rid)
			c.Header("X-Request-ID", rid)
		}

		md := contextutil.ExtractMetadata(ctx)
		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("user_id", md.UserID),
			zap.String("role", md.Role),
		)

		// Service/Repo cukup ambil logger via contextutil tanpa tahu Gin
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
