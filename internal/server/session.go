package server

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"taxi-booking/internal/billing"
	"taxi-booking/internal/wizard"
)

const sessionCookie = "tyc_session"

// sessionID returns the visitor's session id, issuing a cookie on first use.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.sessionTTL.Seconds()),
	})
	return id
}

func wizardKey(id string) string { return "wizard:" + id }
func billKey(id string) string   { return "bill:" + id }

// loadWizard returns the visitor's wizard, or a fresh one seeded from the
// clock when the session has none.
func (s *Server) loadWizard(ctx context.Context, id string) (*wizard.Wizard, error) {
	var w wizard.Wizard
	found, err := s.store.Load(ctx, wizardKey(id), &w)
	if err != nil {
		return nil, err
	}
	if !found {
		return wizard.New(s.clock), nil
	}
	return &w, nil
}

func (s *Server) saveWizard(ctx context.Context, id string, w *wizard.Wizard) error {
	return s.store.Save(ctx, wizardKey(id), w, s.sessionTTL)
}

func (s *Server) loadBill(ctx context.Context, id string) (*billing.Form, error) {
	var f billing.Form
	found, err := s.store.Load(ctx, billKey(id), &f)
	if err != nil {
		return nil, err
	}
	if !found {
		return billing.New(s.clock), nil
	}
	return &f, nil
}

func (s *Server) saveBill(ctx context.Context, id string, f *billing.Form) error {
	return s.store.Save(ctx, billKey(id), f, s.sessionTTL)
}
