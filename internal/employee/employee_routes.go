package employee

import (
	"net/http"

	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *Handler) {
	employees := r.Group("/employees")
	employees.OPTIONS("", func(c *gin.Context) { c.Status(http.StatusOK) })

	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", handler.Get)
		employees.POST("", middleware.RoleMiddleware("admin", "hr"), handler.Create)
		employees.PUT("", middleware.RoleMiddleware("admin", "hr"), handler.Update)
		employees.DELETE("", middleware.RoleMiddleware("admin", "hr"), handler.Delete)
	}
}
