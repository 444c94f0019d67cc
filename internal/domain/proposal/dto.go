package proposal

// SubmitRequest is the body of POST /api/proposta.
type SubmitRequest struct {
	Name    string `json:"nome" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"telefone" validate:"required"`
	Company string `json:"empresa"`
	Message string `json:"mensagem"`
}
