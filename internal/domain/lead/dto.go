package lead

// CaptureRequest is the body of POST /api/lead.
type CaptureRequest struct {
	Name    string `json:"nome" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Company string `json:"empresa"`
}

// CaptureResult reports how far a capture got. Saved can be true even when
// the call failed: the row is kept if the email step fails afterwards.
type CaptureResult struct {
	Saved   bool `json:"saved"`
	Emailed bool `json:"emailed"`
}
