package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"taxi-booking/internal/logging"
	"taxi-booking/internal/message"
	"taxi-booking/internal/models"
)

const (
	brevoProvider  = "brevo"
	brevoSendPath  = "/v3/smtp/email"
	defaultBaseURL = "https://api.brevo.com"
)

// BrevoConfig holds configuration for the Brevo transactional email API.
type BrevoConfig struct {
	BaseURL    string
	APIKey     Credential
	Sender     Recipient
	Admin      Recipient
	HTTPClient *http.Client
}

// BrevoNotifier sends booking notifications via Brevo.
type BrevoNotifier struct {
	endpoint string
	apiKey   Credential
	sender   Recipient
	admin    Recipient
	client   *http.Client
	observer Observer
	logger   *logging.Logger
}

type brevoEmail struct {
	Sender      Recipient   `json:"sender"`
	To          []Recipient `json:"to"`
	Subject     string      `json:"subject"`
	HTMLContent string      `json:"htmlContent"`
}

type brevoError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewBrevoNotifier creates a Brevo notifier. observer and logger may be nil.
func NewBrevoNotifier(cfg BrevoConfig, observer Observer, logger *logging.Logger) *BrevoNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	if observer == nil {
		observer = nopObserver{}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.APIKey == nil {
		cfg.APIKey = func() string { return "" }
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &BrevoNotifier{
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + brevoSendPath,
		apiKey:   cfg.APIKey,
		sender:   cfg.Sender,
		admin:    cfg.Admin,
		client:   cfg.HTTPClient,
		observer: observer,
		logger:   logger.With("provider", brevoProvider),
	}
}

// Notify posts one transactional email. It returns true only on a 2xx reply.
func (n *BrevoNotifier) Notify(ctx context.Context, d models.BookingDraft) bool {
	apiKey := n.apiKey()
	if apiKey == "" {
		n.logger.Error("booking notification skipped: missing credential")
		n.observer.ObserveNotify(brevoProvider, OutcomeMissingCredential, 0)
		return false
	}

	html, err := message.BookingEmailHTML(d)
	if err != nil {
		n.logger.Error("booking notification skipped: render failed", "error", err)
		n.observer.ObserveNotify(brevoProvider, OutcomeRenderFailure, 0)
		return false
	}

	payload, err := json.Marshal(brevoEmail{
		Sender:      n.sender,
		To:          Recipients(n.admin, d),
		Subject:     message.BookingEmailSubject(d),
		HTMLContent: html,
	})
	if err != nil {
		n.logger.Error("booking notification skipped: encode failed", "error", err)
		n.observer.ObserveNotify(brevoProvider, OutcomeRenderFailure, 0)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(payload))
	if err != nil {
		n.logger.Error("booking notification failed: build request", "error", err)
		n.observer.ObserveNotify(brevoProvider, OutcomeTransportFailure, 0)
		return false
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", apiKey)
	req.Header.Set("content-type", "application/json")

	start := time.Now()
	resp, err := n.client.Do(req)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		n.logger.Error("network error during booking notification", "error", err)
		n.observer.ObserveNotify(brevoProvider, OutcomeTransportFailure, elapsed)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		var apiErr brevoError
		if err := json.Unmarshal(body, &apiErr); err != nil {
			n.logger.Warn("booking notification rejected", "status", resp.StatusCode, "body", string(body))
		} else {
			n.logger.Warn("booking notification rejected", "status", resp.StatusCode, "code", apiErr.Code, "message", apiErr.Message)
		}
		n.observer.ObserveNotify(brevoProvider, OutcomeRejected, elapsed)
		return false
	}

	n.logger.Info("booking notification sent", "status", resp.StatusCode, "subject", message.BookingEmailSubject(d))
	n.observer.ObserveNotify(brevoProvider, OutcomeSent, elapsed)
	return true
}

var _ Notifier = (*BrevoNotifier)(nil)
