package notify

import (
	"context"
	"strings"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"taxi-booking/internal/logging"
	"taxi-booking/internal/message"
	"taxi-booking/internal/models"
)

const (
	sendGridProvider = "sendgrid"
	sendGridSendPath = "/v3/mail/send"
)

// SendGridConfig holds configuration for SendGrid.
type SendGridConfig struct {
	BaseURL string
	APIKey  Credential
	Sender  Recipient
	Admin   Recipient
	// Timeout bounds each send. Zero leaves the caller's context in charge.
	Timeout time.Duration
}

// SendGridSender sends booking notifications via SendGrid. It is the
// alternate provider; the contract matches BrevoNotifier.
type SendGridSender struct {
	host     string
	apiKey   Credential
	sender   Recipient
	admin    Recipient
	timeout  time.Duration
	observer Observer
	logger   *logging.Logger
}

// NewSendGridSender creates a SendGrid notifier. An empty BaseURL means the
// public SendGrid API.
func NewSendGridSender(cfg SendGridConfig, observer Observer, logger *logging.Logger) *SendGridSender {
	if logger == nil {
		logger = logging.Default()
	}
	if observer == nil {
		observer = nopObserver{}
	}
	if cfg.APIKey == nil {
		cfg.APIKey = func() string { return "" }
	}
	return &SendGridSender{
		host:     strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		sender:   cfg.Sender,
		admin:    cfg.Admin,
		timeout:  cfg.Timeout,
		observer: observer,
		logger:   logger.With("provider", sendGridProvider),
	}
}

// Notify sends one message addressed to every recipient.
func (s *SendGridSender) Notify(ctx context.Context, d models.BookingDraft) bool {
	apiKey := s.apiKey()
	if apiKey == "" {
		s.logger.Error("booking notification skipped: missing credential")
		s.observer.ObserveNotify(sendGridProvider, OutcomeMissingCredential, 0)
		return false
	}

	html, err := message.BookingEmailHTML(d)
	if err != nil {
		s.logger.Error("booking notification skipped: render failed", "error", err)
		s.observer.ObserveNotify(sendGridProvider, OutcomeRenderFailure, 0)
		return false
	}

	p := mail.NewPersonalization()
	for _, r := range Recipients(s.admin, d) {
		p.AddTos(mail.NewEmail(r.Name, r.Email))
	}
	msg := mail.NewV3Mail()
	msg.SetFrom(mail.NewEmail(s.sender.Name, s.sender.Email))
	msg.Subject = message.BookingEmailSubject(d)
	msg.AddPersonalizations(p)
	msg.AddContent(mail.NewContent("text/html", html))

	request := sendgrid.GetRequest(apiKey, sendGridSendPath, s.host)
	request.Method = "POST"
	client := &sendgrid.Client{Request: request}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := client.SendWithContext(ctx, msg)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		s.logger.Error("network error during booking notification", "error", err)
		s.observer.ObserveNotify(sendGridProvider, OutcomeTransportFailure, elapsed)
		return false
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Warn("booking notification rejected", "status", resp.StatusCode, "body", resp.Body)
		s.observer.ObserveNotify(sendGridProvider, OutcomeRejected, elapsed)
		return false
	}

	s.logger.Info("booking notification sent", "status", resp.StatusCode, "subject", msg.Subject)
	s.observer.ObserveNotify(sendGridProvider, OutcomeSent, elapsed)
	return true
}

var _ Notifier = (*SendGridSender)(nil)
