// Package api exposes HTTP handlers for the enrollment service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"example.com/enrollment/internal/domain"
	"example.com/enrollment/internal/observability"
)

// Handler coordinates HTTP requests with the enrollment engine.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/activities", h.listActivities)
	mux.HandleFunc("/activities/", h.activityAction)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	activities, err := h.service.ListActivities(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	resp := make(map[string]ActivityView, len(activities))
	for name, activity := range activities {
		resp[name] = toActivityView(activity)
	}
	writeJSON(w, http.StatusOK, resp)
}

// activityAction handles /activities/{name}/signup and
// /activities/{name}/unregister. The mux hands the path over already
// percent-decoded, so "Chess%20Club" arrives as "Chess Club".
func (h *Handler) activityAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	slash := strings.LastIndex(rest, "/")
	if slash <= 0 {
		writeError(w, http.StatusNotFound, "not_found", "unknown route")
		return
	}
	name, action := rest[:slash], rest[slash+1:]

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	student := r.URL.Query().Get("email")
	if strings.TrimSpace(student) == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "missing email parameter")
		return
	}

	switch action {
	case "signup":
		h.signup(w, r, name, student)
	case "unregister":
		h.unregister(w, r, name, student)
	default:
		writeError(w, http.StatusNotFound, "not_found", "unknown route")
	}
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request, name, student string) {
	confirmation, err := h.service.Signup(r.Context(), name, student)
	if err != nil {
		observability.RecordEngineRequest("signup", outcomeFor(err))
		writeEnrollmentError(w, err)
		return
	}

	observability.RecordEngineRequest("signup", "success")
	writeJSON(w, http.StatusOK, ConfirmationResponse{Message: confirmation.Message})
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request, name, student string) {
	confirmation, err := h.service.Unregister(r.Context(), name, student)
	if err != nil {
		observability.RecordEngineRequest("unregister", outcomeFor(err))
		writeEnrollmentError(w, err)
		return
	}

	observability.RecordEngineRequest("unregister", "success")
	writeJSON(w, http.StatusOK, ConfirmationResponse{Message: confirmation.Message})
}

func writeEnrollmentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Activity not found")
	case errors.Is(err, domain.ErrAlreadySignedUp):
		writeError(w, http.StatusBadRequest, "conflict", "Student is already signed up")
	case errors.Is(err, domain.ErrNotRegistered):
		writeError(w, http.StatusBadRequest, "conflict", "Student is not registered for this activity")
	default:
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrAlreadySignedUp), errors.Is(err, domain.ErrNotRegistered):
		return "conflict"
	default:
		return "error"
	}
}

// ActivityView exposes the catalog entry served to clients.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// ConfirmationResponse is the body for successful signup and unregister.
type ConfirmationResponse struct {
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toActivityView(activity domain.Activity) ActivityView {
	return ActivityView{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    activity.Participants,
	}
}
