package proposal

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"dnfapi/internal/pkg/metrics"
	"dnfapi/internal/pkg/response"
	"dnfapi/internal/pkg/validator"
)

const (
	CodeProposalExists = "PROPOSAL_EXISTS"

	msgMissingFields = "Nome, email e telefone são obrigatórios"
	msgExists        = "Você já solicitou uma proposta. Nossa equipe entrará em contato em breve!"
	msgInternal      = "Erro ao processar solicitação. Tente novamente."
	msgCreated       = "Proposta cadastrada com sucesso!"
)

type Handler struct {
	service       *Service
	exposeDetails bool
	metrics       metrics.Recorder
	log           *slog.Logger
}

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

// SubmitProposal handles POST /api/proposta
func (h *Handler) SubmitProposal(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.Submission("proposta", metrics.OutcomeInvalid)
		response.Error(c, http.StatusBadRequest, response.CodeValidation, msgMissingFields)
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		h.metrics.Submission("proposta", metrics.OutcomeInvalid)
		response.Error(c, http.StatusBadRequest, response.CodeValidation, msgMissingFields)
		return
	}

	if _, err := h.service.Submit(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, ErrAlreadyRequested):
			h.metrics.Submission("proposta", metrics.OutcomeConflict)
			response.Error(c, http.StatusConflict, CodeProposalExists, msgExists)
		default:
			h.log.Error("proposal submit failed",
				"request_id", c.GetString("request_id"),
				"error", err,
			)
			_ = c.Error(err)
			h.metrics.Submission("proposta", metrics.OutcomeError)

			fields := gin.H{}
			if h.exposeDetails {
				fields["details"] = err.Error()
			}
			response.ErrorWithFields(c, http.StatusInternalServerError, response.CodeInternal, msgInternal, fields)
		}
		return
	}

	h.metrics.Submission("proposta", metrics.OutcomeOK)
	response.Success(c, http.StatusOK, gin.H{"message": msgCreated})
}
