package response

import (
	"github.com/gin-gonic/gin"
)

// ApiEnvelope adalah bentuk tunggal semua response JSON:
// {success, data?, message?, count?}
type ApiEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, ApiEnvelope{
		Success: true,
		Data:    data,
	})
}

// SuccessList menyertakan count, dipakai oleh endpoint list.
func SuccessList[T any](c *gin.Context, status int, data []T) {
	if data == nil {
		data = []T{}
	}
	n := len(data)
	c.JSON(status, ApiEnvelope{
		Success: true,
		Data:    data,
		Count:   &n,
	})
}

func SuccessMessage(c *gin.Context, status int, message string, data any) {
	c.JSON(status, ApiEnvelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ApiEnvelope{
		Success: false,
		Message: message,
	})
}

// AbortError sama dengan Error tapi menghentikan chain middleware.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ApiEnvelope{
		Success: false,
		Message: message,
	})
}

func SuccessListMessage[T any](c *gin.Context, status int, message string, data []T) {
	if data == nil {
		data = []T{}
	}
	n := len(data)
	c.JSON(status, ApiEnvelope{
		Success: true,
		Data:    data,
		Message: message,
		Count:   &n,
	})
}
