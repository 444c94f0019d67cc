package lead

import (
	"context"
	"fmt"
	"log/slog"

	"dnfapi/internal/pkg/asset"
	"dnfapi/internal/pkg/mailer"
)

// Service handles lead capture: save, then email the guide.
type Service struct {
	repo   Repository
	assets asset.Reader
	sender mailer.Sender
	from   string
	log    *slog.Logger
}

// NewService creates lead service. from is the sender address of the
// confirmation email.
func NewService(repo Repository, assets asset.Reader, sender mailer.Sender, from string, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		assets: assets,
		sender: sender,
		from:   from,
		log:    log,
	}
}

// Capture stores the lead and sends the guide by email. The saved row is
// not rolled back when a later step fails; the result says how far it got.
func (s *Service) Capture(ctx context.Context, req *CaptureRequest) (*CaptureResult, error) {
	res := &CaptureResult{}

	lead := &Lead{
		Name:     req.Name,
		Email:    req.Email,
		Company:  req.Company,
		Resource: ResourceGuideNR1,
	}
	if err := s.repo.Create(ctx, lead); err != nil {
		return res, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	res.Saved = true
	s.log.Info("lead saved", "lead_id", lead.ID, "resource", lead.Resource)

	pdf, err := s.assets.Read(ctx)
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrAssetUnavailable, err)
	}

	html, err := renderEmail(req.Name)
	if err != nil {
		return res, fmt.Errorf("%w: render: %w", ErrEmailFailed, err)
	}

	msg := &mailer.Message{
		From:    s.from,
		To:      req.Email,
		Subject: emailSubject,
		HTML:    html,
		Attachments: []mailer.Attachment{
			{Filename: attachmentName, Content: asset.EncodeBase64(pdf)},
		},
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		return res, fmt.Errorf("%w: %w", ErrEmailFailed, err)
	}
	res.Emailed = true

	return res, nil
}
