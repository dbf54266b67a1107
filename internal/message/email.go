package message

import (
	"bytes"
	"fmt"
	"html/template"

	"taxi-booking/internal/models"
)

const bookingEmailTemplate = `
<div style="font-family: sans-serif; color: #1e293b; max-width: 600px; margin: 0 auto; border: 1px solid #f1f5f9; border-radius: 12px; overflow: hidden;">
  <div style="background-color: #FDB813; padding: 30px; text-align: center;">
    <h1 style="margin: 0; font-size: 24px;">New Booking Request</h1>
  </div>
  <div style="padding: 30px;">
    <p>You have a new booking request from the website:</p>
    <table style="width: 100%; border-collapse: collapse; margin-top: 20px;">
      {{- range .Rows}}
      <tr><td style="padding: 8px 0; border-bottom: 1px solid #f1f5f9;"><strong>{{.Label}}:</strong></td><td style="padding: 8px 0; border-bottom: 1px solid #f1f5f9;">{{.Value}}</td></tr>
      {{- end}}
    </table>
    <div style="margin-top: 30px; text-align: center;">
      <a href="tel:{{.Phone}}" style="background-color: #0f172a; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; font-weight: bold;">Call Customer Now</a>
    </div>
  </div>
</div>
`

var bookingEmail = template.Must(template.New("booking_email").Option("missingkey=error").Parse(bookingEmailTemplate))

type emailRow struct {
	Label string
	Value string
}

// BookingEmailSubject is the subject line of the admin notification.
func BookingEmailSubject(d models.BookingDraft) string {
	return fmt.Sprintf("New Ride Booking: %s to %s", d.Pickup, d.Drop)
}

// BookingEmailHTML renders the booking notification body. User-supplied
// values are HTML-escaped.
func BookingEmailHTML(d models.BookingDraft) (string, error) {
	data := struct {
		Rows  []emailRow
		Phone string
	}{
		Rows: []emailRow{
			{"Customer", d.Name},
			{"Phone", d.Phone},
			{"Pickup", d.Pickup},
			{"Drop", d.Drop},
			{"Date/Time", fmt.Sprintf("%s at %s", d.Date, To12Hour(string(d.Time)))},
			{"Vehicle", string(d.VehicleType)},
		},
		Phone: d.Phone,
	}

	var buf bytes.Buffer
	if err := bookingEmail.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("message: render booking email: %w", err)
	}
	return buf.String(), nil
}
