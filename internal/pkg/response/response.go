package response

import "github.com/gin-gonic/gin"

// Error codes shared by every handler.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeConflict   = "CONFLICT"
	CodeInternal   = "INTERNAL_ERROR"
)

// JSON writes payload as-is. Endpoints with a fixed public contract use it directly.
func JSON(c *gin.Context, statusCode int, payload gin.H) {
	c.JSON(statusCode, payload)
}

func Success(c *gin.Context, statusCode int, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"code":    code,
		"error":   message,
	})
}

// ErrorWithFields lets a handler attach extra top-level keys (details, saved, ...)
// next to the standard error envelope.
func ErrorWithFields(c *gin.Context, statusCode int, code string, message string, fields gin.H) {
	body := gin.H{
		"success": false,
		"code":    code,
		"error":   message,
	}
	for k, v := range fields {
		if _, reserved := body[k]; reserved {
			continue
		}
		body[k] = v
	}
	c.JSON(statusCode, body)
}
