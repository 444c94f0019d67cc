package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

const readyTimeout = 2 * time.Second

type Handler struct {
	service string
	store   Pinger
}

func NewHandler(service string, store Pinger) *Handler {
	return &Handler{service: service, store: store}
}

// Health handles GET /api/health. It never touches the database or mailer.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "service": h.service})
}

// Ready handles GET /api/ready.
func (h *Handler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "service": h.service, "database": "down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "service": h.service, "database": "up"})
}
