package payroll

import (
	"net/http"

	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *Handler) {
	payroll := r.Group("/payroll")
	payroll.OPTIONS("", func(c *gin.Context) { c.Status(http.StatusOK) })

	payroll.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware("admin", "hr"))
	{
		payroll.GET("", handler.Get)
		payroll.POST("", handler.Post)
		payroll.PUT("", handler.Update)
		payroll.DELETE("", handler.Delete)
	}
}
