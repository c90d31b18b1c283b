package attendance

import (
	"net/http"

	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

// mark_absent dicek di handler karena berbagi endpoint POST dengan clock_in/clock_out.
func RegisterRoutes(r gin.IRouter, handler *Handler) {
	attendance := r.Group("/attendance")
	attendance.OPTIONS("", func(c *gin.Context) { c.Status(http.StatusOK) })

	attendance.Use(middleware.AuthMiddleware())
	{
		attendance.GET("", handler.Get)
		attendance.POST("", handler.Post)
		attendance.PUT("", middleware.RoleMiddleware("admin", "hr"), handler.Update)
	}
}
