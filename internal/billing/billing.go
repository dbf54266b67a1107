package billing

import (
	"errors"
	"fmt"
	"strings"

	"taxi-booking/internal/civil"
	"taxi-booking/internal/message"
	"taxi-booking/internal/models"
)

var (
	ErrMissingField = errors.New("required field missing")
	ErrUnknownField = errors.New("unknown field")
)

// Form is a bill request. Its only output is a chat deep link.
type Form struct {
	Draft models.BillRequestDraft `json:"draft"`
}

// New returns a form with the trip date set to today in IST.
func New(p *civil.Provider) *Form {
	return &Form{Draft: models.BillRequestDraft{Date: p.Today()}}
}

// Set updates one draft field by its form name.
func (f *Form) Set(field, value string) error {
	d := &f.Draft
	switch field {
	case "name":
		d.Name = value
	case "phone":
		d.Phone = value
	case "date":
		d.Date = civil.Date(value)
	case "pickup":
		d.Pickup = value
	case "drop":
		d.Drop = value
	case "amount":
		d.Amount = value
	case "vehicleNumber":
		d.VehicleNumber = value
	default:
		return fmt.Errorf("billing: %w: %q", ErrUnknownField, field)
	}
	return nil
}

// Validate reports the first required field that is empty.
func (f *Form) Validate() error {
	d := f.Draft
	required := []struct {
		name  string
		value string
	}{
		{"name", d.Name},
		{"phone", d.Phone},
		{"date", string(d.Date)},
		{"amount", d.Amount},
		{"pickup", d.Pickup},
		{"drop", d.Drop},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("billing: %s: %w", r.name, ErrMissingField)
		}
	}
	return nil
}

// ChatLink validates the form and builds the bill request deep link.
func (f *Form) ChatLink(number string) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}
	return message.ChatLink(number, message.BillChatText(f.Draft)), nil
}
