package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kestrelbay/wildscope/backend/internal/model/conversation"
	conversationService "github.com/kestrelbay/wildscope/backend/internal/service/conversation"
)

// ConversationService exposes session lifecycle operations.
type ConversationService interface {
	StartSession(ctx context.Context) (conversation.Session, error)
	Snapshot(ctx context.Context, sessionID string) (conversation.Session, error)
}

// Handler serves session creation and inspection.
type Handler struct {
	conversations ConversationService
}

func New(conversations ConversationService) *Handler {
	return &Handler{conversations: conversations}
}

// RegisterRoutes mounts the session endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreate)
	r.Get("/session/{sessionID}", h.handleSnapshot)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	sess, err := h.conversations.StartSession(r.Context())
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to create session")
		return
	}
	h.respondJSON(w, http.StatusCreated, sess)
}

func (h *Handler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		h.respondError(w, http.StatusBadRequest, "sessionID is required")
		return
	}

	sess, err := h.conversations.Snapshot(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, conversationService.ErrSessionNotFound) {
			h.respondError(w, http.StatusNotFound, "session not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, "failed to load session")
		return
	}
	h.respondJSON(w, http.StatusOK, sess)
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
