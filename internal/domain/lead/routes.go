package lead

import "github.com/gin-gonic/gin"

// RegisterRoutes registers public lead routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/lead", handler.CaptureLead)
}
