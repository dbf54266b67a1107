// Package wizard implements the two-step ride booking flow: journey details
// first, then contact and vehicle details, then a single notification.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taxi-booking/internal/civil"
	"taxi-booking/internal/message"
	"taxi-booking/internal/models"
)

// State is the wizard's current step.
type State string

const (
	StepJourney State = "journey"
	StepContact State = "contact"
	Submitting  State = "submitting"
	Submitted   State = "submitted"
)

// ZoneNote is appended to the pickup time sent to the notifier.
const ZoneNote = "(IST)"

var (
	ErrJourneyIncomplete = errors.New("please fill in all journey details")
	ErrContactIncomplete = errors.New("please enter your name and phone number")
	ErrUnknownField      = errors.New("unknown field")
	ErrUnknownVehicle    = errors.New("unknown vehicle type")
	ErrInvalidState      = errors.New("action not allowed in current step")
)

// Notifier delivers a submitted booking. The result is only logged.
type Notifier interface {
	Notify(ctx context.Context, draft models.BookingDraft) bool
}

// Wizard holds one visitor's booking draft and step. It is a plain value so
// it can be stored in a session between requests.
type Wizard struct {
	State   State               `json:"state"`
	Draft   models.BookingDraft `json:"draft"`
	MinDate civil.Date          `json:"min_date"`
}

// New returns a wizard at the journey step with date and time seeded from p.
func New(p *civil.Provider) *Wizard {
	w := &Wizard{}
	w.Reset(p)
	return w
}

// Reset discards the draft and starts over with a freshly read clock.
func (w *Wizard) Reset(p *civil.Provider) {
	date, now := p.Now()
	w.State = StepJourney
	w.MinDate = date
	w.Draft = models.BookingDraft{
		Date:        date,
		Time:        now,
		VehicleType: models.VehicleSedan,
	}
}

// Set updates one draft field by its form name.
func (w *Wizard) Set(field, value string) error {
	d := &w.Draft
	switch field {
	case "name":
		d.Name = value
	case "phone":
		d.Phone = value
	case "pickup":
		d.Pickup = value
	case "drop":
		d.Drop = value
	case "date":
		d.Date = civil.Date(value)
	case "time":
		d.Time = civil.Time(value)
	case "email":
		d.Email = value
	case "vehicleType":
		kind, ok := models.ParseVehicleKind(value)
		if !ok {
			return fmt.Errorf("wizard: %w: %q", ErrUnknownVehicle, value)
		}
		d.VehicleType = kind
	default:
		return fmt.Errorf("wizard: %w: %q", ErrUnknownField, field)
	}
	return nil
}

// Next moves from the journey step to the contact step once pickup, drop,
// date and time are all filled in.
func (w *Wizard) Next() error {
	if w.State != StepJourney {
		return fmt.Errorf("wizard: next from %s: %w", w.State, ErrInvalidState)
	}
	d := w.Draft
	if blank(d.Pickup) || blank(d.Drop) || blank(string(d.Date)) || blank(string(d.Time)) {
		return ErrJourneyIncomplete
	}
	w.State = StepContact
	return nil
}

// Back returns to the journey step keeping everything entered so far.
func (w *Wizard) Back() error {
	if w.State != StepContact {
		return fmt.Errorf("wizard: back from %s: %w", w.State, ErrInvalidState)
	}
	w.State = StepJourney
	return nil
}

// Begin checks the contact fields and marks the wizard busy.
func (w *Wizard) Begin() error {
	if w.State != StepContact {
		return fmt.Errorf("wizard: submit from %s: %w", w.State, ErrInvalidState)
	}
	if blank(w.Draft.Name) || blank(w.Draft.Phone) {
		return ErrContactIncomplete
	}
	w.State = Submitting
	return nil
}

// Complete sends the notification and moves to Submitted whatever the
// outcome. The notifier's result is returned for logging only.
func (w *Wizard) Complete(ctx context.Context, n Notifier) bool {
	if w.State != Submitting {
		return false
	}
	draft := w.Draft
	draft.Time = civil.Time(string(draft.Time) + " " + ZoneNote)

	ok := n.Notify(ctx, draft)
	w.State = Submitted
	return ok
}

// Busy reports whether a submission is in flight. It only drives the UI; it
// does not stop a second submission.
func (w *Wizard) Busy() bool {
	return w.State == Submitting
}

// ChatLink is the deep link a customer can use to confirm a submitted
// booking over chat.
func (w *Wizard) ChatLink(number string) (string, error) {
	if w.State != Submitted {
		return "", fmt.Errorf("wizard: chat link from %s: %w", w.State, ErrInvalidState)
	}
	return message.ChatLink(number, message.BookingChatText(w.Draft)), nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
