package stream

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kestrelbay/wildscope/backend/internal/model/conversation"
	"github.com/kestrelbay/wildscope/backend/internal/model/taxon"
	conversationService "github.com/kestrelbay/wildscope/backend/internal/service/conversation"
)

type stubTurns struct {
	outcome conversation.Outcome
	err     error
}

func (s *stubTurns) HandleTurn(context.Context, string, string) (conversation.Outcome, error) {
	return s.outcome, s.err
}

func TestHandleStreamRequestEmitsPhases(t *testing.T) {
	handler := New(&stubTurns{outcome: conversation.Outcome{
		Kind:    conversation.OutcomeShowSpecies,
		Stage:   conversation.StageAwaitingAnimal,
		Species: []taxon.Species{{CommonName: "Desert Tortoise"}},
	}}, conversationService.NewFormatter())

	resp := httptest.NewRecorder()
	if err := handler.HandleStreamRequest(context.Background(), resp, "s1", "Las Vegas"); err != nil {
		t.Fatalf("HandleStreamRequest err: %v", err)
	}

	if ct := resp.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("content type = %q", ct)
	}

	body := resp.Body.String()
	for _, event := range []string{"event: start", "event: stage", "event: message", "event: end"} {
		if !strings.Contains(body, event) {
			t.Fatalf("missing %q in stream:\n%s", event, body)
		}
	}
	if !strings.Contains(body, `"sessionId":"s1"`) {
		t.Fatalf("start event missing session id:\n%s", body)
	}
	if !strings.Contains(body, "Desert Tortoise") {
		t.Fatalf("message event missing rendered reply:\n%s", body)
	}
	if !strings.Contains(body, `"stage":"awaiting-animal"`) {
		t.Fatalf("stage event missing stage:\n%s", body)
	}
}

func TestHandleStreamRequestTurnFailure(t *testing.T) {
	handler := New(&stubTurns{err: errors.New("store broken")}, conversationService.NewFormatter())

	resp := httptest.NewRecorder()
	if err := handler.HandleStreamRequest(context.Background(), resp, "s1", "hi"); err == nil {
		t.Fatal("expected the turn error to propagate")
	}

	body := resp.Body.String()
	if !strings.Contains(body, "event: error") {
		t.Fatalf("missing error event:\n%s", body)
	}
	if strings.Contains(body, "event: end") {
		t.Fatalf("failed stream must not finish cleanly:\n%s", body)
	}
}
