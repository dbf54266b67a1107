package server

import (
	"context"
	"errors"
	"net/http"

	"taxi-booking/internal/wizard"
)

var (
	journeyFields = []string{"pickup", "drop", "date", "time"}
	contactFields = []string{"vehicleType", "name", "phone", "email"}
)

// applyForm copies the posted fields that are present onto a draft.
func applyForm(r *http.Request, set func(field, value string) error, fields []string) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	for _, field := range fields {
		values, ok := r.PostForm[field]
		if !ok || len(values) == 0 {
			continue
		}
		if err := set(field, values[0]); err != nil {
			return err
		}
	}
	return nil
}

// BookingPageHandler renders the wizard's current step.
func (s *Server) BookingPageHandler(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	wz, err := s.loadWizard(r.Context(), id)
	if err != nil {
		s.logger.Error("loading booking draft", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	s.renderBooking(w, http.StatusOK, wz, "")
}

// BookingNextHandler stores the journey details and moves to the contact step.
func (s *Server) BookingNextHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := s.sessionID(w, r)
	wz, err := s.loadWizard(ctx, id)
	if err != nil {
		s.logger.Error("loading booking draft", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if wz.State != wizard.StepJourney {
		http.Redirect(w, r, "/book", http.StatusSeeOther)
		return
	}
	if err := applyForm(r, wz.Set, journeyFields); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	err = wz.Next()
	s.metrics.ObserveTransition("next", err)
	if !s.persistWizard(ctx, w, id, wz) {
		return
	}
	if errors.Is(err, wizard.ErrJourneyIncomplete) {
		s.renderBooking(w, http.StatusUnprocessableEntity, wz, "Please fill in all journey details.")
		return
	}
	http.Redirect(w, r, "/book", http.StatusSeeOther)
}

// BookingBackHandler returns to the journey step keeping the contact input.
func (s *Server) BookingBackHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := s.sessionID(w, r)
	wz, err := s.loadWizard(ctx, id)
	if err != nil {
		s.logger.Error("loading booking draft", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if wz.State != wizard.StepContact {
		http.Redirect(w, r, "/book", http.StatusSeeOther)
		return
	}
	if err := applyForm(r, wz.Set, contactFields); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	s.metrics.ObserveTransition("back", wz.Back())
	if !s.persistWizard(ctx, w, id, wz) {
		return
	}
	http.Redirect(w, r, "/book", http.StatusSeeOther)
}

// BookingSubmitHandler sends the booking notification. The visitor always
// lands on the confirmation page; a failed notification is only logged.
func (s *Server) BookingSubmitHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := s.sessionID(w, r)
	wz, err := s.loadWizard(ctx, id)
	if err != nil {
		s.logger.Error("loading booking draft", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if wz.State != wizard.StepContact {
		http.Redirect(w, r, "/book", http.StatusSeeOther)
		return
	}
	if err := applyForm(r, wz.Set, contactFields); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	if err := wz.Begin(); err != nil {
		s.metrics.ObserveTransition("submit", err)
		if !s.persistWizard(ctx, w, id, wz) {
			return
		}
		s.renderBooking(w, http.StatusUnprocessableEntity, wz, "Please enter your name and phone number.")
		return
	}
	if !s.persistWizard(ctx, w, id, wz) {
		return
	}

	// The notification runs to completion even if the visitor goes away.
	if ok := wz.Complete(context.WithoutCancel(ctx), s.notifier); !ok {
		s.logger.Warn("booking notification failed, confirming to visitor anyway",
			"pickup", wz.Draft.Pickup, "drop", wz.Draft.Drop, "date", wz.Draft.Date)
	}
	s.metrics.ObserveTransition("submit", nil)

	if !s.persistWizard(context.WithoutCancel(ctx), w, id, wz) {
		return
	}
	http.Redirect(w, r, "/book", http.StatusSeeOther)
}

// BookingResetHandler starts a new booking with a freshly read clock.
func (s *Server) BookingResetHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := s.sessionID(w, r)
	wz := wizard.New(s.clock)
	s.metrics.ObserveTransition("reset", nil)
	if !s.persistWizard(ctx, w, id, wz) {
		return
	}
	http.Redirect(w, r, "/book", http.StatusSeeOther)
}

// BookingChatHandler redirects to the chat deep link confirming a submitted
// booking.
func (s *Server) BookingChatHandler(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	wz, err := s.loadWizard(r.Context(), id)
	if err != nil {
		s.logger.Error("loading booking draft", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	link, err := wz.ChatLink(s.whatsAppNumber)
	if err != nil {
		http.Error(w, "No submitted booking to confirm", http.StatusConflict)
		return
	}
	s.metrics.ObserveHandoff("booking")
	http.Redirect(w, r, link, http.StatusSeeOther)
}

func (s *Server) persistWizard(ctx context.Context, w http.ResponseWriter, id string, wz *wizard.Wizard) bool {
	if err := s.saveWizard(ctx, id, wz); err != nil {
		s.logger.Error("saving booking draft", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return false
	}
	return true
}
