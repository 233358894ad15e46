package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kestrelbay/wildscope/backend/internal/analysis/intent"
	"github.com/kestrelbay/wildscope/backend/internal/analysis/match"
	"github.com/kestrelbay/wildscope/backend/internal/config"
	"github.com/kestrelbay/wildscope/backend/internal/model/gazetteer"
	conversationService "github.com/kestrelbay/wildscope/backend/internal/service/conversation"
	geoService "github.com/kestrelbay/wildscope/backend/internal/service/geo"
	"github.com/kestrelbay/wildscope/backend/internal/service/orgs"
	"github.com/kestrelbay/wildscope/backend/internal/service/species"
)

func newTestRouter() http.Handler {
	gaz := gazetteer.NewMemoryStore(gazetteer.Seed())
	engine := conversationService.NewEngine(
		conversationService.NewMemoryStore(),
		intent.New(gaz, nil),
		geoService.NewResolver(gaz, nil, nil),
		species.NewService(nil, config.SpeciesConfig{RadiusKM: 50, MaxResults: 10}),
		orgs.NewService(nil, config.OrgsConfig{MaxResults: 5}),
		match.New(match.DefaultConfig(), gaz),
	)
	return NewRouter(engine, conversationService.NewFormatter(), gaz, config.CORSConfig{AllowedOrigins: []string{"*"}})
}

func TestRouterHealthz(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "ok") {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}

func TestRouterChatRejectsInvalidBody(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestRouterStreamRequiresMessage(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/stream/s1", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestRouterGazetteerAnimals(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/gazetteer/animals", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "gray wolf") {
		t.Fatalf("animal list missing seeded name")
	}
}
