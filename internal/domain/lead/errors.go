package lead

import "errors"

var (
	ErrSaveFailed       = errors.New("failed to save lead")
	ErrAssetUnavailable = errors.New("lead asset unavailable")
	ErrEmailFailed      = errors.New("failed to email lead")
)
