package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/joho/godotenv"

	"github.com/kestrelbay/wildscope/backend/internal/analysis/intent"
	"github.com/kestrelbay/wildscope/backend/internal/analysis/match"
	"github.com/kestrelbay/wildscope/backend/internal/config"
	"github.com/kestrelbay/wildscope/backend/internal/handler"
	"github.com/kestrelbay/wildscope/backend/internal/model/gazetteer"
	conversationService "github.com/kestrelbay/wildscope/backend/internal/service/conversation"
	geoService "github.com/kestrelbay/wildscope/backend/internal/service/geo"
	orgsService "github.com/kestrelbay/wildscope/backend/internal/service/orgs"
	semanticService "github.com/kestrelbay/wildscope/backend/internal/service/semantic"
	speciesService "github.com/kestrelbay/wildscope/backend/internal/service/species"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Seeded gazetteer backing every heuristic in the pipeline
	gaz := gazetteer.NewMemoryStore(gazetteer.Seed())

	// Initialize the Ark chat model when credentials are present
	var chatModel model.ChatModel
	if cfg.AI.Enabled() {
		chatModel, err = cfg.AI.NewChatModel(ctx)
		if err != nil {
			log.Printf("warning: failed to initialize Ark chat model: %v", err)
			log.Println("continuing with gazetteer heuristics only")
			chatModel = nil
		} else {
			log.Println("Ark chat model initialized successfully")
		}
	} else {
		log.Println("Ark credentials not configured, skipping semantic classification")
	}

	// Semantic classifier (LLM-based fallback with heuristic degradation)
	semanticSvc, err := semanticService.NewService(ctx, chatModel, semanticService.Config{
		Enabled: cfg.AI.SemanticEnabled,
	})
	if err != nil {
		log.Printf("warning: failed to initialize semantic classifier: %v", err)
		semanticSvc = nil
	} else if semanticSvc.Enabled() {
		log.Println("Semantic classifier enabled")
	} else if cfg.AI.SemanticEnabled {
		log.Println("Semantic classifier requested but chat model unavailable, falling back to heuristics")
	} else {
		log.Println("Semantic classifier disabled by configuration")
	}

	// A nil classifier keeps the consumers on pure heuristics
	var fallback intent.SemanticFallback
	var ambiguity geoService.AmbiguityClassifier
	if semanticSvc.Enabled() {
		fallback = semanticSvc
		ambiguity = semanticSvc
	}

	classifier := intent.New(gaz, fallback)

	geocoder := geoService.NewClient(cfg.Geo)
	resolver := geoService.NewResolver(gaz, geocoder, ambiguity)

	speciesSvc := speciesService.NewService(speciesService.NewClient(cfg.Species), cfg.Species)

	var wiki orgsService.Searcher
	if cfg.Orgs.WikiEnabled {
		wiki = orgsService.NewWikiClient(cfg.Orgs)
	} else {
		log.Println("Wikipedia enrichment disabled by configuration")
	}
	orgsSvc := orgsService.NewService(wiki, cfg.Orgs)

	matcher := match.New(matcherConfig(cfg.Matcher), gaz)

	sessions := conversationService.NewMemoryStore()
	engine := conversationService.NewEngine(sessions, classifier, resolver, speciesSvc, orgsSvc, matcher)
	formatter := conversationService.NewFormatter()

	router := handler.NewRouter(engine, formatter, gaz, cfg.CORS)

	startServer(ctx, cfg.Server, router)
}

// matcherConfig applies the optional environment overrides on top of the
// tuned defaults.
func matcherConfig(overrides config.MatcherConfig) match.Config {
	cfg := match.DefaultConfig()
	if overrides.MinRatio != nil {
		cfg.MinRatio = *overrides.MinRatio
	}
	if overrides.MinHits != nil {
		cfg.MinHits = *overrides.MinHits
	}
	if overrides.PrefixLen != nil {
		cfg.PrefixLen = *overrides.PrefixLen
	}
	if overrides.MaxMessageLen != nil {
		cfg.MaxMessageLen = *overrides.MaxMessageLen
	}
	return cfg
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Wildscope backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
