package server

import (
	"errors"
	"net/http"

	"taxi-booking/internal/billing"
)

var billFields = []string{"name", "phone", "date", "pickup", "drop", "amount", "vehicleNumber"}

// BillPageHandler renders the bill request form.
func (s *Server) BillPageHandler(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	f, err := s.loadBill(r.Context(), id)
	if err != nil {
		s.logger.Error("loading bill draft", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	s.renderBill(w, http.StatusOK, f, "")
}

// BillSubmitHandler hands the bill request off to chat. No email is sent.
func (s *Server) BillSubmitHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := s.sessionID(w, r)
	f, err := s.loadBill(ctx, id)
	if err != nil {
		s.logger.Error("loading bill draft", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if err := applyForm(r, f.Set, billFields); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	if err := s.saveBill(ctx, id, f); err != nil {
		s.logger.Error("saving bill draft", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	link, err := f.ChatLink(s.whatsAppNumber)
	if errors.Is(err, billing.ErrMissingField) {
		s.renderBill(w, http.StatusUnprocessableEntity, f, "Please fill in all required fields.")
		return
	}
	if err != nil {
		s.logger.Error("building bill chat link", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := s.store.Delete(ctx, billKey(id)); err != nil {
		s.logger.Warn("clearing bill draft", "error", err)
	}
	s.metrics.ObserveHandoff("bill")
	http.Redirect(w, r, link, http.StatusSeeOther)
}
