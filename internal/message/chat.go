package message

import (
	"net/url"
	"strings"

	"taxi-booking/internal/models"
)

const (
	chatBaseURL         = "https://wa.me/"
	vehicleNotMentioned = "Not Mentioned"
	billDivider         = "--------------------------------"
)

// BookingChatText is the confirmation a customer sends after booking online.
func BookingChatText(d models.BookingDraft) string {
	lines := []string{
		"*NEW RIDE BOOKING CONFIRMATION*",
		"Name: " + d.Name,
		"Phone: " + d.Phone,
		"Vehicle: " + string(d.VehicleType),
		"From: " + d.Pickup,
		"To: " + d.Drop,
		"Date: " + string(d.Date),
		"Time: " + string(d.Time) + " (IST)",
		"",
		"I just submitted my booking on your website. Please confirm availability.",
	}
	return strings.Join(lines, "\n")
}

// BillChatText asks dispatch to issue a bill for a finished trip.
func BillChatText(d models.BillRequestDraft) string {
	vehicle := strings.TrimSpace(d.VehicleNumber)
	if vehicle == "" {
		vehicle = vehicleNotMentioned
	}
	lines := []string{
		"*BILL REQUEST - Trustyyellowcabs*",
		billDivider,
		"Customer: " + d.Name,
		"Phone: " + d.Phone,
		"Trip Date: " + string(d.Date),
		"Pickup: " + d.Pickup,
		"Drop: " + d.Drop,
		"Vehicle No: " + vehicle,
		"Total Fare: " + d.Amount,
		billDivider,
		"Please generate a bill for the above trip.",
	}
	return strings.Join(lines, "\n")
}

// ChatLink builds a wa.me deep link that opens a chat with number, pre-filled
// with text. Non-digits in number are dropped.
func ChatLink(number, text string) string {
	return chatBaseURL + digitsOnly(number) + "?text=" + EncodeComponent(text)
}

// EncodeComponent percent-encodes s for use as a query value, with spaces
// encoded as %20 rather than '+'.
func EncodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
