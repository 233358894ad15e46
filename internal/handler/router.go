package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/kestrelbay/wildscope/backend/internal/config"
	chatHandler "github.com/kestrelbay/wildscope/backend/internal/handler/chat"
	gazetteerHandler "github.com/kestrelbay/wildscope/backend/internal/handler/gazetteer"
	sessionHandler "github.com/kestrelbay/wildscope/backend/internal/handler/session"
	streamHandler "github.com/kestrelbay/wildscope/backend/internal/handler/stream"
	wsHandler "github.com/kestrelbay/wildscope/backend/internal/handler/ws"
	gazetteerModel "github.com/kestrelbay/wildscope/backend/internal/model/gazetteer"
	conversationService "github.com/kestrelbay/wildscope/backend/internal/service/conversation"
	"github.com/kestrelbay/wildscope/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(engine *conversationService.Engine, formatter *conversationService.Formatter, gazetteer gazetteerModel.Store, corsCfg config.CORSConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsCfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	turns := chatHandler.New(engine, formatter)
	sessions := sessionHandler.New(engine)
	lookups := gazetteerHandler.New(gazetteer)
	streams := streamHandler.New(engine, formatter)
	sockets := wsHandler.New(engine, formatter)

	r.Route("/api", func(api chi.Router) {
		turns.RegisterRoutes(api)
		sessions.RegisterRoutes(api)
		lookups.RegisterRoutes(api)
		sockets.RegisterRoutes(api)

		api.Get("/stream/{sessionID}", func(w http.ResponseWriter, r *http.Request) {
			sessionID := chi.URLParam(r, "sessionID")
			message := r.URL.Query().Get("message")
			if message == "" {
				utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
				return
			}

			if err := streams.HandleStreamRequest(r.Context(), w, sessionID, message); err != nil {
				log.Printf("[sse] request failed session=%s: %v", sessionID, err)
			}
		})
	})

	return r
}
