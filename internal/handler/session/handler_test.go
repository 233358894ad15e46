package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/kestrelbay/wildscope/backend/internal/model/conversation"
	conversationService "github.com/kestrelbay/wildscope/backend/internal/service/conversation"
)

type stubConversations struct {
	sessions map[string]conversation.Session
}

func (s *stubConversations) StartSession(context.Context) (conversation.Session, error) {
	sess := conversation.NewSession("fresh-id")
	s.sessions[sess.ID] = sess
	return sess, nil
}

func (s *stubConversations) Snapshot(_ context.Context, sessionID string) (conversation.Session, error) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return conversation.Session{}, conversationService.ErrSessionNotFound
	}
	return sess, nil
}

func setupRouter() (*chi.Mux, *stubConversations) {
	stub := &stubConversations{sessions: make(map[string]conversation.Session)}
	handler := New(stub)
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, stub
}

func TestCreateSession(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/session", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	var sess conversation.Session
	if err := json.Unmarshal(resp.Body.Bytes(), &sess); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if sess.ID == "" || sess.Stage != conversation.StageInitial {
		t.Fatalf("unexpected session %+v", sess)
	}
}

func TestSnapshotKnownSession(t *testing.T) {
	r, stub := setupRouter()
	sess := conversation.NewSession("s1")
	sess.Stage = conversation.StageAwaitingAnimal
	stub.sessions["s1"] = sess

	req := httptest.NewRequest(http.MethodGet, "/session/s1", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var got conversation.Session
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if got.Stage != conversation.StageAwaitingAnimal {
		t.Fatalf("stage = %s", got.Stage)
	}
}

func TestSnapshotUnknownSession(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/session/missing", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
