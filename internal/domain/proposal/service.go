package proposal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dnfapi/internal/database"
)

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Submit stores a proposal request. A second request for the same email
// fails with ErrAlreadyRequested; the first row is left untouched.
func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (*Proposal, error) {
	p := &Proposal{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Message: req.Message,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, database.ErrConflict) {
			return nil, ErrAlreadyRequested
		}
		return nil, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	s.log.Info("proposal saved", "proposal_id", p.ID)
	return p, nil
}
