package models

import "taxi-booking/internal/civil"

// VehicleKind is one of the fixed vehicle categories a customer can book.
type VehicleKind string

const (
	VehicleSedan          VehicleKind = "Sedan"
	VehicleHatchback      VehicleKind = "Hatchback"
	VehicleSUV            VehicleKind = "SUV"
	VehicleInnovaCrysta   VehicleKind = "Innova Crysta"
	VehicleTempoTraveller VehicleKind = "Tempo Traveller"
)

// VehicleOption pairs a vehicle value with the label shown in the selector.
type VehicleOption struct {
	Value VehicleKind
	Label string
}

// VehicleOptions is the selector order.
var VehicleOptions = []VehicleOption{
	{Value: VehicleSedan, Label: "Sedan (4 seats)"},
	{Value: VehicleHatchback, Label: "Hatchback (4 seats)"},
	{Value: VehicleSUV, Label: "SUV (6-7 seats)"},
	{Value: VehicleInnovaCrysta, Label: "Innova Crysta (7 seats)"},
	{Value: VehicleTempoTraveller, Label: "Tempo Traveller (12+ seats)"},
}

// ParseVehicleKind returns the kind matching s, if any.
func ParseVehicleKind(s string) (VehicleKind, bool) {
	for _, opt := range VehicleOptions {
		if string(opt.Value) == s {
			return opt.Value, true
		}
	}
	return "", false
}

// BookingDraft is the in-progress ride booking collected by the wizard.
type BookingDraft struct {
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	Pickup      string      `json:"pickup"`
	Drop        string      `json:"drop"`
	Date        civil.Date  `json:"date"`
	Time        civil.Time  `json:"time"`
	VehicleType VehicleKind `json:"vehicle_type"`
	Email       string      `json:"email,omitempty"`
}

// BillRequestDraft is a request for an invoice of a completed trip.
type BillRequestDraft struct {
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	Date          civil.Date `json:"date"`
	Pickup        string     `json:"pickup"`
	Drop          string     `json:"drop"`
	Amount        string     `json:"amount"`
	VehicleNumber string     `json:"vehicle_number,omitempty"`
}
