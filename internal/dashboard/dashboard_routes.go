package dashboard

import (
	"net/http"

	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *Handler) {
	dashboard := r.Group("/dashboard")
	dashboard.OPTIONS("", func(c *gin.Context) { c.Status(http.StatusOK) })

	dashboard.Use(middleware.AuthMiddleware())
	dashboard.GET("", handler.Get)
}
