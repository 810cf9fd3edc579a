// Package email dispatches exported documents through a transactional
// email provider over its HTTP API. Provider failures are folded into a
// small set of categorized errors so the client can present actionable
// messages instead of raw provider responses.
package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/billforge/billforge/internal/config"
	"github.com/billforge/billforge/internal/export"
	"github.com/billforge/billforge/internal/profiles"
	"resty.dev/v3"
)

// System defines the email dispatch operations.
type System interface {
	Handler() *Handler
	Send(ctx context.Context, userID string, msg Message) (*Receipt, error)
}

type system struct {
	cfg      *config.EmailConfig
	exporter export.System
	profiles profiles.System
	client   *resty.Client
	logger   *slog.Logger
}

// New creates the email system. The provider client carries the configured
// timeout and API key on every request.
func New(cfg *config.EmailConfig, exporter export.System, profileSys profiles.System, logger *slog.Logger) System {
	client := resty.New().
		SetBaseURL(cfg.ProviderURL).
		SetTimeout(cfg.TimeoutDuration()).
		SetAuthToken(cfg.APIKey)

	return &system{
		cfg:      cfg,
		exporter: exporter,
		profiles: profileSys,
		client:   client,
		logger:   logger.With("system", "email"),
	}
}

// Handler creates the HTTP handler for email operations.
func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

type providerRequest struct {
	RecipientEmail     string `json:"recipientEmail"`
	RecipientName      string `json:"recipientName"`
	AttachmentData     string `json:"attachmentData"`
	SenderBusinessName string `json:"senderBusinessName"`
	DocumentNumber     string `json:"documentNumber"`
	DocumentKind       string `json:"documentKind"`
}

type providerResponse struct {
	ID string `json:"id"`
}

// Send exports the message's document inline and posts it to the provider.
// Under sandbox mode the recipient is replaced with the configured sandbox
// recipient; without one, dispatch is refused.
func (s *system) Send(ctx context.Context, userID string, msg Message) (*Receipt, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	if s.cfg.ProviderURL == "" || s.cfg.APIKey == "" {
		return nil, ErrMisconfigured
	}

	recipient := msg.To
	if s.cfg.Sandbox {
		if s.cfg.SandboxRecipient == "" {
			return nil, ErrSandboxRestricted
		}
		recipient = s.cfg.SandboxRecipient
	}

	senderName, err := s.senderBusinessName(ctx, userID)
	if err != nil {
		return nil, err
	}

	result, err := s.exporter.Export(ctx, userID, msg.Document, export.DestinationInline)
	if err != nil {
		return nil, fmt.Errorf("export attachment: %w", err)
	}

	// The cap applies to the base64 payload the provider receives, which is
	// roughly 4/3 the raw PDF size.
	if int64(len(result.Data)) > s.cfg.MaxAttachmentSizeBytes() {
		return nil, ErrAttachmentTooLarge
	}

	payload := providerRequest{
		RecipientEmail:     recipient,
		RecipientName:      msg.RecipientName,
		AttachmentData:     result.Data,
		SenderBusinessName: senderName,
		DocumentNumber:     msg.Document.Number,
		DocumentKind:       string(msg.Document.Kind),
	}

	var out providerResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&out).
		Post("/messages")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	if !resp.IsSuccess() {
		return nil, s.mapProviderError(resp)
	}

	s.logger.Info("message dispatched",
		"user_id", userID,
		"to", recipient,
		"message_id", out.ID,
		"filename", result.Filename,
		"sandbox", s.cfg.Sandbox)

	return &Receipt{
		MessageID: out.ID,
		To:        recipient,
		Filename:  result.Filename,
	}, nil
}

// senderBusinessName resolves the sender identity from the user's profile.
// Users without a profile send with an empty business name.
func (s *system) senderBusinessName(ctx context.Context, userID string) (string, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, profiles.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("load sender profile: %w", err)
	}
	return profile.BusinessName, nil
}

func (s *system) mapProviderError(resp *resty.Response) error {
	body := resp.String()

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrMisconfigured, body)
	case http.StatusForbidden:
		if strings.Contains(strings.ToLower(body), "sandbox") {
			return fmt.Errorf("%w: %s", ErrSandboxRestricted, body)
		}
		return fmt.Errorf("%w: %s", ErrMisconfigured, body)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrAttachmentTooLarge, body)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrMalformedAttachment, body)
	default:
		return fmt.Errorf("%w: status %d: %s", ErrDeliveryFailed, resp.StatusCode(), body)
	}
}
