package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/pixdash/internal/adapter/http/dto"
	"github.com/iho/pixdash/internal/domain"
)

// NotificationSource lists and dismisses active notifications.
type NotificationSource interface {
	Active() []domain.Notification
	Dismiss(id string) bool
}

// NotificationHandler handles notification HTTP requests.
type NotificationHandler struct {
	notifications NotificationSource
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notifications NotificationSource) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List returns the notifications that have not expired.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.NotificationsFromDomain(h.notifications.Active()))
}

// Dismiss removes a notification before it expires.
func (h *NotificationHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	if !h.notifications.Dismiss(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "notification not found", "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
