package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dnfapi/internal/domain/health"
	"dnfapi/internal/domain/lead"
	"dnfapi/internal/domain/proposal"
	"dnfapi/internal/middleware"
	"dnfapi/internal/pkg/metrics"
)

// Deps is everything the router needs. main builds it once; nothing here is
// a package-level singleton.
type Deps struct {
	ServiceName   string
	ExposeDetails bool
	AllowOrigins  []string
	MetricsToken  string
	MetricsIPs    []string

	Leads     *lead.Service
	Proposals *proposal.Service
	Store     health.Pinger
	Metrics   *metrics.Manager
	Log       *slog.Logger
}

// NewRouter wires middleware and every route under /api.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		middleware.ErrorLogger(d.Log, d.ExposeDetails),
		middleware.Metrics(d.Metrics),
		middleware.CORS(d.AllowOrigins),
	)

	r.GET("/metrics",
		middleware.InternalTokenAuth(d.MetricsToken, d.MetricsIPs, d.Log),
		gin.WrapH(d.Metrics.Handler()),
	)

	api := r.Group("/api")
	{
		health.RegisterRoutes(api, health.NewHandler(d.ServiceName, d.Store))
		lead.RegisterRoutes(api, lead.NewHandler(d.Leads, d.ExposeDetails, d.Metrics, d.Log))
		proposal.RegisterRoutes(api, proposal.NewHandler(d.Proposals, d.ExposeDetails, d.Metrics, d.Log))
	}

	return r
}

type Server struct {
	httpServer *http.Server
}

func New(addr string, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.httpServer.Serve(ln)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
