package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kestrelbay/wildscope/backend/internal/model/conversation"
	conversationService "github.com/kestrelbay/wildscope/backend/internal/service/conversation"
)

// TurnService advances a conversation by one user message.
type TurnService interface {
	HandleTurn(ctx context.Context, sessionID, message string) (conversation.Outcome, error)
}

// Renderer turns a structured outcome into the reply text shown to the user.
type Renderer interface {
	Render(outcome conversation.Outcome) string
}

// Handler is the HTTP entry point for conversation turns.
type Handler struct {
	turns    TurnService
	renderer Renderer
}

func New(turns TurnService, renderer Renderer) *Handler {
	return &Handler{turns: turns, renderer: renderer}
}

// RegisterRoutes mounts the turn endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleTurn)
}

type turnRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

type turnResponse struct {
	SessionID string             `json:"sessionId"`
	Stage     conversation.Stage `json:"stage"`
	Response  string             `json:"response"`
	Completed bool               `json:"completed"`
}

func (h *Handler) handleTurn(w http.ResponseWriter, r *http.Request) {
	var payload turnRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Message == "" {
		respondError(w, http.StatusBadRequest, "message is required")
		return
	}

	sessionID := payload.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	outcome, err := h.turns.HandleTurn(r.Context(), sessionID, payload.Message)
	if err != nil {
		if errors.Is(err, conversationService.ErrEmptyMessage) {
			respondError(w, http.StatusBadRequest, "message is required")
			return
		}
		respondError(w, http.StatusInternalServerError, "conversation failed")
		return
	}
	if outcome.Kind == conversation.OutcomeUnavailable {
		respondError(w, http.StatusServiceUnavailable, "wildlife data is temporarily unavailable, please try again")
		return
	}

	respondJSON(w, http.StatusOK, turnResponse{
		SessionID: sessionID,
		Stage:     outcome.Stage,
		Response:  h.renderer.Render(outcome),
		Completed: outcome.Completed(),
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
