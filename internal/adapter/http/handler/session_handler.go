package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/iho/pixdash/internal/adapter/http/dto"
	"github.com/iho/pixdash/internal/adapter/presenter"
	"github.com/iho/pixdash/internal/domain"
	"github.com/iho/pixdash/internal/usecase"
)

// SessionService is the session surface used by SessionHandler.
type SessionService interface {
	Login(ctx context.Context, creds domain.Credentials) error
	Logout(ctx context.Context)
	Register(ctx context.Context, reg domain.Registration) error
	RestoreSession(ctx context.Context) error
	Status() usecase.SessionStatus
}

// ViewState holds the navigation signals raised by the use cases.
type ViewState interface {
	SignedIn()
	Take() presenter.View
}

// SessionHandler handles session-related HTTP requests.
type SessionHandler struct {
	session SessionService
	view    ViewState
	now     func() time.Time
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(session SessionService, view ViewState) *SessionHandler {
	return &SessionHandler{session: session, view: view, now: time.Now}
}

// Login signs in and loads the user's data.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.session.Login(r.Context(), req.ToDomain()); err != nil {
		writeDomainError(w, "login failed", err)
		return
	}

	h.view.SignedIn()
	h.writeStatus(w, http.StatusOK)
}

// Restore signs in with the stored credential.
func (h *SessionHandler) Restore(w http.ResponseWriter, r *http.Request) {
	if err := h.session.RestoreSession(r.Context()); err != nil {
		writeDomainError(w, "session not restored", err)
		return
	}

	h.view.SignedIn()
	h.writeStatus(w, http.StatusOK)
}

// Logout ends the session.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.session.Logout(r.Context())
	h.writeStatus(w, http.StatusOK)
}

// Register creates a user on the server; it does not sign in.
func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.session.Register(r.Context(), req.ToDomain()); err != nil {
		writeDomainError(w, "registration failed", err)
		return
	}

	h.writeStatus(w, http.StatusCreated)
}

// Status returns the session and consumes the pending view signals.
func (h *SessionHandler) Status(w http.ResponseWriter, r *http.Request) {
	h.writeStatus(w, http.StatusOK)
}

func (h *SessionHandler) writeStatus(w http.ResponseWriter, status int) {
	writeJSON(w, status, dto.SessionFromStatus(h.session.Status(), h.view.Take(), h.now()))
}
