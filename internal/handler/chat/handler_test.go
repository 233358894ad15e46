package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/kestrelbay/wildscope/backend/internal/model/conversation"
	"github.com/kestrelbay/wildscope/backend/internal/model/geo"
	"github.com/kestrelbay/wildscope/backend/internal/model/taxon"
	conversationService "github.com/kestrelbay/wildscope/backend/internal/service/conversation"
)

type stubTurns struct {
	outcome    conversation.Outcome
	err        error
	gotSession string
	gotMessage string
}

func (s *stubTurns) HandleTurn(_ context.Context, sessionID, message string) (conversation.Outcome, error) {
	s.gotSession = sessionID
	s.gotMessage = message
	return s.outcome, s.err
}

func setupRouter(turns TurnService) *chi.Mux {
	handler := New(turns, conversationService.NewFormatter())
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func postTurn(t *testing.T, r http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestTurnRendersReply(t *testing.T) {
	turns := &stubTurns{outcome: conversation.Outcome{
		Kind:     conversation.OutcomeShowSpecies,
		Stage:    conversation.StageAwaitingAnimal,
		Location: &geo.Location{DisplayName: "Las Vegas, Nevada, United States"},
		Species:  []taxon.Species{{CommonName: "Desert Tortoise", ConservationStatus: "Vulnerable"}},
	}}
	r := setupRouter(turns)

	resp := postTurn(t, r, `{"message":"Las Vegas"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body turnResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.SessionID == "" {
		t.Fatalf("expected a generated session id")
	}
	if body.Stage != conversation.StageAwaitingAnimal {
		t.Fatalf("stage = %s", body.Stage)
	}
	if !strings.Contains(body.Response, "Desert Tortoise") {
		t.Fatalf("reply missing candidates:\n%s", body.Response)
	}
	if body.Completed {
		t.Fatalf("species list must not be marked completed")
	}
	if turns.gotSession != body.SessionID || turns.gotMessage != "Las Vegas" {
		t.Fatalf("service saw session=%q message=%q", turns.gotSession, turns.gotMessage)
	}
}

func TestTurnKeepsProvidedSessionID(t *testing.T) {
	turns := &stubTurns{outcome: conversation.Outcome{
		Kind:  conversation.OutcomeNeedsLocation,
		Stage: conversation.StageAwaitingLocation,
	}}
	r := setupRouter(turns)

	resp := postTurn(t, r, `{"message":"hi","sessionId":"abc-123"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if turns.gotSession != "abc-123" {
		t.Fatalf("session id replaced: %q", turns.gotSession)
	}
}

func TestTurnCompletedFlag(t *testing.T) {
	turns := &stubTurns{outcome: conversation.Outcome{
		Kind:          conversation.OutcomeShowOrganizations,
		Stage:         conversation.StageCompleted,
		Animal:        &taxon.Species{CommonName: "Florida Panther"},
		Organizations: []taxon.Organization{{Name: "Panthera"}},
		ScopeName:     "worldwide",
	}}
	r := setupRouter(turns)

	resp := postTurn(t, r, `{"message":"Florida Panther"}`)
	var body turnResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Completed {
		t.Fatalf("organizations outcome must be completed")
	}
}

func TestTurnMissingMessage(t *testing.T) {
	r := setupRouter(&stubTurns{})
	if resp := postTurn(t, r, `{}`); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestTurnInvalidBody(t *testing.T) {
	r := setupRouter(&stubTurns{})
	if resp := postTurn(t, r, `not json`); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestTurnUnavailable(t *testing.T) {
	turns := &stubTurns{outcome: conversation.Outcome{
		Kind:  conversation.OutcomeUnavailable,
		Stage: conversation.StageAwaitingAnimal,
	}}
	r := setupRouter(turns)

	resp := postTurn(t, r, `{"message":"Reno","sessionId":"abc"}`)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "error") {
		t.Fatalf("expected an error envelope, got %s", resp.Body.String())
	}
}

func TestTurnServiceFailure(t *testing.T) {
	turns := &stubTurns{err: errors.New("store broken")}
	r := setupRouter(turns)
	if resp := postTurn(t, r, `{"message":"hi"}`); resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}
