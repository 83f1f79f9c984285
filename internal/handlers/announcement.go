package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/edunotice/edunotice-backend/internal/models"
	"github.com/edunotice/edunotice-backend/internal/services"
	"github.com/gorilla/mux"
)

// AnnouncementHandler handles HTTP requests for announcements. The caller
// identity for mutating routes is the teacher_username query parameter.
type AnnouncementHandler struct {
	announcementService *services.AnnouncementService
}

// NewAnnouncementHandler creates a new AnnouncementHandler
func NewAnnouncementHandler(announcementService *services.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Anything unrecognized is an internal error.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		http.Error(w, services.ErrUnauthorized.Error(), http.StatusUnauthorized)
	case errors.Is(err, services.ErrForbidden):
		http.Error(w, services.ErrForbidden.Error(), http.StatusForbidden)
	case errors.Is(err, services.ErrNotFound):
		http.Error(w, services.ErrNotFound.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal error: "+err.Error(), http.StatusInternalServerError)
	}
}

// GetAnnouncements handles GET /announcements. No auth; expired
// announcements are excluded, future-dated ones are not.
func (h *AnnouncementHandler) GetAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcementService.ListActive(r.Context())
	if err != nil {
		http.Error(w, "failed to retrieve announcements: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(announcements)
}

// AddAnnouncement handles POST /announcements/add
func (h *AnnouncementHandler) AddAnnouncement(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Message        string  `json:"message"`
		StartDate      *string `json:"start_date"`
		ExpirationDate string  `json:"expiration_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	identity := r.URL.Query().Get("teacher_username")
	id, err := h.announcementService.Add(r.Context(), identity, body.Message, body.ExpirationDate, body.StartDate)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"id":      id,
		"message": "announcement created",
	})
}

// UpdateAnnouncement handles PUT /announcements/update/{announcementID}.
// Fields absent from the body are left untouched; updated_at is always
// refreshed.
func (h *AnnouncementHandler) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var patch models.AnnouncementPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	identity := r.URL.Query().Get("teacher_username")
	if err := h.announcementService.Update(r.Context(), vars["announcementID"], identity, patch); err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "announcement updated"})
}

// DeleteAnnouncement handles DELETE /announcements/delete/{announcementID}
func (h *AnnouncementHandler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	identity := r.URL.Query().Get("teacher_username")
	if err := h.announcementService.Delete(r.Context(), vars["announcementID"], identity); err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "announcement deleted"})
}
