package stream

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/kestrelbay/wildscope/backend/internal/model/conversation"
	"github.com/kestrelbay/wildscope/backend/pkg/utils"
)

// TurnService advances a conversation by one user message.
type TurnService interface {
	HandleTurn(ctx context.Context, sessionID, message string) (conversation.Outcome, error)
}

// Renderer turns a structured outcome into reply text.
type Renderer interface {
	Render(outcome conversation.Outcome) string
}

// Handler streams turn results over Server-Sent Events so clients can show
// progress phases instead of waiting on one blocking response.
type Handler struct {
	turns    TurnService
	renderer Renderer
}

func New(turns TurnService, renderer Renderer) *Handler {
	return &Handler{turns: turns, renderer: renderer}
}

type startEvent struct {
	SessionID string `json:"sessionId"`
}

type stageEvent struct {
	Stage     conversation.Stage       `json:"stage"`
	Kind      conversation.OutcomeKind `json:"kind"`
	Completed bool                     `json:"completed"`
}

type messageEvent struct {
	Content string `json:"content"`
}

type endEvent struct {
	Finished bool `json:"finished"`
}

// HandleStreamRequest runs one turn and emits its phases as SSE events:
// start, stage, message, end. A failed turn emits an error event instead of
// stage and message.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, sessionID, message string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return fmt.Errorf("streaming unsupported")
	}

	utils.SetupSSEHeaders(w)
	utils.SendSSEEvent(w, flusher, "start", startEvent{SessionID: sessionID})

	outcome, err := h.turns.HandleTurn(ctx, sessionID, message)
	if err != nil {
		utils.SendSSEEvent(w, flusher, "error", map[string]string{"message": "conversation failed"})
		return err
	}

	utils.SendSSEEvent(w, flusher, "stage", stageEvent{
		Stage:     outcome.Stage,
		Kind:      outcome.Kind,
		Completed: outcome.Completed(),
	})
	utils.SendSSEEvent(w, flusher, "message", messageEvent{Content: h.renderer.Render(outcome)})
	utils.SendSSEEvent(w, flusher, "end", endEvent{Finished: true})

	log.Printf("[sse] turn streamed session=%s stage=%s", sessionID, outcome.Stage)
	return nil
}
