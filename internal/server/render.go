package server

import (
	"bytes"
	"net/http"

	"taxi-booking/internal/billing"
	"taxi-booking/internal/models"
	"taxi-booking/internal/wizard"
)

type bookingPage struct {
	Title     string
	Wizard    *wizard.Wizard
	Vehicles  []models.VehicleOption
	Journey   bool
	Busy      bool
	Submitted bool
	Error     string
}

type billPage struct {
	Title string
	Form  *billing.Form
	Error string
}

func (s *Server) renderBooking(w http.ResponseWriter, status int, wz *wizard.Wizard, errMsg string) {
	s.render(w, status, "book.html", bookingPage{
		Title:     "Book Your Ride",
		Wizard:    wz,
		Vehicles:  models.VehicleOptions,
		Journey:   wz.State == wizard.StepJourney,
		Busy:      wz.Busy(),
		Submitted: wz.State == wizard.Submitted,
		Error:     errMsg,
	})
}

func (s *Server) renderBill(w http.ResponseWriter, status int, f *billing.Form, errMsg string) {
	s.render(w, status, "bill.html", billPage{
		Title: "Request Bill",
		Form:  f,
		Error: errMsg,
	})
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("rendering page", "page", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
