package lead

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"dnfapi/internal/pkg/metrics"
	"dnfapi/internal/pkg/response"
	"dnfapi/internal/pkg/validator"
)

const (
	msgMissingFields = "Nome e email são obrigatórios"
	msgInternal      = "Erro ao processar solicitação. Tente novamente."
)

// Handler handles lead HTTP requests
type Handler struct {
	service       *Service
	exposeDetails bool
	metrics       metrics.Recorder
	log           *slog.Logger
}

// NewHandler creates lead handler. exposeDetails adds the underlying error
// text to 500 responses.
func NewHandler(service *Service, exposeDetails bool, rec metrics.Recorder, log *slog.Logger) *Handler {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Handler{
		service:       service,
		exposeDetails: exposeDetails,
		metrics:       rec,
		log:           log,
	}
}

// CaptureLead handles POST /api/lead
func (h *Handler) CaptureLead(c *gin.Context) {
	var req CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.Submission("lead", metrics.OutcomeInvalid)
		response.Error(c, http.StatusBadRequest, response.CodeValidation, msgMissingFields)
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		h.metrics.Submission("lead", metrics.OutcomeInvalid)
		response.Error(c, http.StatusBadRequest, response.CodeValidation, msgMissingFields)
		return
	}

	res, err := h.service.Capture(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("lead capture failed",
			"request_id", c.GetString("request_id"),
			"saved", res.Saved,
			"error", err,
		)
		_ = c.Error(err)

		outcome := metrics.OutcomeError
		if res.Saved {
			outcome = metrics.OutcomeEmailError
		}
		h.metrics.Submission("lead", outcome)

		fields := gin.H{"saved": res.Saved, "emailed": res.Emailed}
		if h.exposeDetails {
			fields["details"] = err.Error()
		}
		response.ErrorWithFields(c, http.StatusInternalServerError, response.CodeInternal, msgInternal, fields)
		return
	}

	h.metrics.Submission("lead", metrics.OutcomeOK)
	response.Success(c, http.StatusOK, gin.H{"saved": res.Saved, "emailed": res.Emailed})
}
