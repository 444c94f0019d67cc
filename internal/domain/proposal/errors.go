package proposal

import "errors"

var (
	ErrAlreadyRequested = errors.New("proposal already requested for this email")
	ErrSaveFailed       = errors.New("failed to save proposal")
)
