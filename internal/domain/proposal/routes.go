package proposal

import "github.com/gin-gonic/gin"

// RegisterRoutes registers public proposal routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/proposta", handler.SubmitProposal)
}
