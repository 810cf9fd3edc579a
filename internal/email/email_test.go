package email_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/billforge/billforge/internal/config"
	"github.com/billforge/billforge/internal/documents"
	"github.com/billforge/billforge/internal/email"
	"github.com/billforge/billforge/internal/export"
	"github.com/billforge/billforge/internal/profiles"
)

// fakeExporter returns a canned inline export without touching previews
// or storage.
type fakeExporter struct {
	pdf []byte
	err error
}

func (f *fakeExporter) Handler() *export.Handler { return nil }

func (f *fakeExporter) Export(ctx context.Context, userID string, doc documents.Document, dest export.Destination) (*export.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &export.Result{
		Filename:  doc.Filename(),
		Pages:     1,
		SizeBytes: int64(len(f.pdf)),
		Data:      "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(f.pdf),
	}, nil
}

// fakeProfiles serves a single business profile for any user, or reports
// no profile when empty.
type fakeProfiles struct {
	businessName string
}

func (f *fakeProfiles) Handler() *profiles.Handler { return nil }

func (f *fakeProfiles) Get(ctx context.Context, userID string) (*profiles.Profile, error) {
	if f.businessName == "" {
		return nil, profiles.ErrNotFound
	}
	return &profiles.Profile{UserID: userID, BusinessName: f.businessName}, nil
}

func (f *fakeProfiles) Upsert(ctx context.Context, userID string, cmd profiles.UpsertProfileCommand) (*profiles.Profile, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeProfiles) Delete(ctx context.Context, userID string) error {
	return errors.New("not implemented")
}

type capturedRequest struct {
	RecipientEmail     string `json:"recipientEmail"`
	RecipientName      string `json:"recipientName"`
	AttachmentData     string `json:"attachmentData"`
	SenderBusinessName string `json:"senderBusinessName"`
	DocumentNumber     string `json:"documentNumber"`
	DocumentKind       string `json:"documentKind"`
}

type providerStub struct {
	mu       sync.Mutex
	status   int
	body     string
	captured *capturedRequest
}

func (p *providerStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req capturedRequest
		json.NewDecoder(r.Body).Decode(&req)

		p.mu.Lock()
		p.captured = &req
		p.mu.Unlock()

		w.WriteHeader(p.status)
		w.Write([]byte(p.body))
	}
}

func (p *providerStub) request() *capturedRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.captured
}

func newSystem(t *testing.T, providerURL string, mutate func(*config.EmailConfig)) email.System {
	t.Helper()

	cfg := &config.EmailConfig{
		ProviderURL:       providerURL,
		APIKey:            "test-key",
		MaxAttachmentSize: "10MB",
		Timeout:           "5s",
	}
	if mutate != nil {
		mutate(cfg)
	}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("cfg.Finalize: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return email.New(
		cfg,
		&fakeExporter{pdf: []byte("%PDF-1.7 test")},
		&fakeProfiles{businessName: "Acme Consulting LLC"},
		logger,
	)
}

func message() email.Message {
	return email.Message{
		To:            "client@example.com",
		RecipientName: "Globex Corporation",
		Document: documents.Document{
			Kind:      documents.KindInvoice,
			Number:    "INV-001",
			IssueDate: "2026-01-15",
			Currency:  "USD",
			Presentation: documents.PresentationSettings{
				Theme: documents.ThemeClassic,
			},
		},
	}
}

func TestSendSuccess(t *testing.T) {
	stub := &providerStub{status: http.StatusOK, body: `{"id":"msg-123"}`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	sys := newSystem(t, srv.URL, nil)

	receipt, err := sys.Send(context.Background(), "alice", message())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if receipt.MessageID != "msg-123" {
		t.Errorf("MessageID = %q, want msg-123", receipt.MessageID)
	}
	if receipt.To != "client@example.com" {
		t.Errorf("To = %q, want client@example.com", receipt.To)
	}
	if receipt.Filename != "invoice-INV-001.pdf" {
		t.Errorf("Filename = %q, want invoice-INV-001.pdf", receipt.Filename)
	}

	req := stub.request()
	if req == nil {
		t.Fatal("provider received no request")
	}
	if req.RecipientEmail != "client@example.com" {
		t.Errorf("recipientEmail = %q, want client@example.com", req.RecipientEmail)
	}
	if req.RecipientName != "Globex Corporation" {
		t.Errorf("recipientName = %q, want Globex Corporation", req.RecipientName)
	}
	if req.SenderBusinessName != "Acme Consulting LLC" {
		t.Errorf("senderBusinessName = %q, want Acme Consulting LLC", req.SenderBusinessName)
	}
	if req.DocumentNumber != "INV-001" || req.DocumentKind != "invoice" {
		t.Errorf("document = %s/%s, want INV-001/invoice", req.DocumentNumber, req.DocumentKind)
	}

	const prefix = "data:application/pdf;base64,"
	if !strings.HasPrefix(req.AttachmentData, prefix) {
		t.Fatalf("attachmentData prefix = %q", req.AttachmentData)
	}
	content, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(req.AttachmentData, prefix))
	if err != nil {
		t.Fatalf("decode attachment: %v", err)
	}
	if string(content) != "%PDF-1.7 test" {
		t.Errorf("attachment bytes = %q", content)
	}
}

func TestSendWithoutProfile(t *testing.T) {
	stub := &providerStub{status: http.StatusOK, body: `{"id":"msg-5"}`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	cfg := &config.EmailConfig{
		ProviderURL:       srv.URL,
		APIKey:            "test-key",
		MaxAttachmentSize: "10MB",
		Timeout:           "5s",
	}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("cfg.Finalize: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sys := email.New(cfg, &fakeExporter{pdf: []byte("%PDF-1.7")}, &fakeProfiles{}, logger)

	if _, err := sys.Send(context.Background(), "alice", message()); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if got := stub.request().SenderBusinessName; got != "" {
		t.Errorf("senderBusinessName = %q, want empty", got)
	}
}

func TestSendSandboxRewritesRecipient(t *testing.T) {
	stub := &providerStub{status: http.StatusOK, body: `{"id":"msg-9"}`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	sys := newSystem(t, srv.URL, func(cfg *config.EmailConfig) {
		cfg.Sandbox = true
		cfg.SandboxRecipient = "dev@example.com"
	})

	receipt, err := sys.Send(context.Background(), "alice", message())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if receipt.To != "dev@example.com" {
		t.Errorf("To = %q, want dev@example.com", receipt.To)
	}
	if got := stub.request().RecipientEmail; got != "dev@example.com" {
		t.Errorf("provider recipient = %q, want dev@example.com", got)
	}
}

func TestSendSandboxWithoutRecipient(t *testing.T) {
	sys := newSystem(t, "http://provider.invalid", func(cfg *config.EmailConfig) {
		cfg.Sandbox = true
	})

	_, err := sys.Send(context.Background(), "alice", message())
	if !errors.Is(err, email.ErrSandboxRestricted) {
		t.Fatalf("Send = %v, want ErrSandboxRestricted", err)
	}
}

func TestSendWithoutProviderConfig(t *testing.T) {
	sys := newSystem(t, "http://provider.invalid", func(cfg *config.EmailConfig) {
		cfg.APIKey = ""
	})

	_, err := sys.Send(context.Background(), "alice", message())
	if !errors.Is(err, email.ErrMisconfigured) {
		t.Fatalf("Send = %v, want ErrMisconfigured", err)
	}
}

func TestSendAttachmentTooLarge(t *testing.T) {
	sys := newSystem(t, "http://provider.invalid", func(cfg *config.EmailConfig) {
		cfg.MaxAttachmentSize = "10B"
	})

	_, err := sys.Send(context.Background(), "alice", message())
	if !errors.Is(err, email.ErrAttachmentTooLarge) {
		t.Fatalf("Send = %v, want ErrAttachmentTooLarge", err)
	}
}

func TestSendAttachmentCapAppliesToEncodedPayload(t *testing.T) {
	cfg := &config.EmailConfig{
		ProviderURL:       "http://provider.invalid",
		APIKey:            "test-key",
		MaxAttachmentSize: "100B",
		Timeout:           "5s",
	}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("cfg.Finalize: %v", err)
	}

	// 60 raw bytes fit the 100B cap, but the base64 data URL they encode
	// to does not, so the pre-check must reject before dispatch.
	pdf := bytes.Repeat([]byte{'x'}, 60)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sys := email.New(cfg, &fakeExporter{pdf: pdf}, &fakeProfiles{businessName: "Acme"}, logger)

	_, err := sys.Send(context.Background(), "alice", message())
	if !errors.Is(err, email.ErrAttachmentTooLarge) {
		t.Fatalf("Send = %v, want ErrAttachmentTooLarge", err)
	}
}

func TestSendRejectsInvalidMessage(t *testing.T) {
	sys := newSystem(t, "http://provider.invalid", nil)

	msg := message()
	msg.To = "not-an-address"

	_, err := sys.Send(context.Background(), "alice", msg)
	if !errors.Is(err, email.ErrInvalidMessage) {
		t.Fatalf("Send = %v, want ErrInvalidMessage", err)
	}
}

func TestSendProviderErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":"bad key"}`, email.ErrMisconfigured},
		{"forbidden sandbox", http.StatusForbidden, `{"error":"sandbox mode: recipient not allowed"}`, email.ErrSandboxRestricted},
		{"forbidden other", http.StatusForbidden, `{"error":"domain not verified"}`, email.ErrMisconfigured},
		{"payload too large", http.StatusRequestEntityTooLarge, `{"error":"too big"}`, email.ErrAttachmentTooLarge},
		{"unprocessable", http.StatusUnprocessableEntity, `{"error":"bad attachment"}`, email.ErrMalformedAttachment},
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`, email.ErrDeliveryFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &providerStub{status: tt.status, body: tt.body}
			srv := httptest.NewServer(stub.handler())
			defer srv.Close()

			sys := newSystem(t, srv.URL, nil)

			_, err := sys.Send(context.Background(), "alice", message())
			if !errors.Is(err, tt.want) {
				t.Fatalf("Send = %v, want %v", err, tt.want)
			}
		})
	}
}
