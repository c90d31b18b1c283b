package report

import (
	"net/http"

	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *Handler) {
	reports := r.Group("/reports")
	reports.OPTIONS("", func(c *gin.Context) { c.Status(http.StatusOK) })

	reports.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware("admin", "hr"))
	reports.GET("", handler.Get)
}
