package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Endpoint /auth tidak memakai AuthMiddleware: login dan check harus bisa
// diakses tanpa session. Action yang butuh login dicek di handler/service.
func RegisterRoutes(r gin.IRouter, handler *Handler, postGuards ...gin.HandlerFunc) {
	auth := r.Group("/auth")
	auth.OPTIONS("", func(c *gin.Context) { c.Status(http.StatusOK) })

	auth.GET("", handler.Get)
	auth.POST("", append(postGuards, handler.Post)...)
}
