// Package notify delivers booking notifications through a transactional
// email provider. Senders never return errors to their callers: every
// failure is logged and reported as false.
package notify

import (
	"context"
	"strings"

	"taxi-booking/internal/models"
)

// Outcome labels, also used as metric labels.
const (
	OutcomeSent              = "sent"
	OutcomeMissingCredential = "missing_credential"
	OutcomeTransportFailure  = "transport_failure"
	OutcomeRejected          = "provider_rejected"
	OutcomeRenderFailure     = "render_failure"
)

// Notifier sends a booking notification and reports whether the provider
// accepted it.
type Notifier interface {
	Notify(ctx context.Context, draft models.BookingDraft) bool
}

// Credential returns the provider API key at call time.
type Credential func() string

// Recipient is a named email address.
type Recipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Recipients returns the admin address, plus the customer when they left an
// email address.
func Recipients(admin Recipient, d models.BookingDraft) []Recipient {
	to := []Recipient{admin}
	if email := strings.TrimSpace(d.Email); email != "" {
		to = append(to, Recipient{Email: email, Name: d.Name})
	}
	return to
}

// Observer records notification outcomes.
type Observer interface {
	ObserveNotify(provider, outcome string, seconds float64)
}

type nopObserver struct{}

func (nopObserver) ObserveNotify(string, string, float64) {}
