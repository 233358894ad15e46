package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/joho/godotenv"

	"github.com/kestrelbay/wildscope/backend/internal/analysis/intent"
	"github.com/kestrelbay/wildscope/backend/internal/analysis/match"
	"github.com/kestrelbay/wildscope/backend/internal/config"
	"github.com/kestrelbay/wildscope/backend/internal/model/gazetteer"
	conversationService "github.com/kestrelbay/wildscope/backend/internal/service/conversation"
	geoService "github.com/kestrelbay/wildscope/backend/internal/service/geo"
	orgsService "github.com/kestrelbay/wildscope/backend/internal/service/orgs"
	semanticService "github.com/kestrelbay/wildscope/backend/internal/service/semantic"
	speciesService "github.com/kestrelbay/wildscope/backend/internal/service/species"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := godotenv.Load(); err != nil {
		log.Printf("[WARN] could not load .env, using system environment variables: %v", err)
	}

	message := flag.String("message", "", "single message to send; leave empty for an interactive session")
	script := flag.String("script", "", "named walkthrough to run (a or b)")
	session := flag.String("session", "", "custom session ID, auto-generated when empty")
	timeout := flag.Duration("timeout", 45*time.Second, "per-turn timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	sessionID := *session
	if sessionID == "" {
		sessionID = fmt.Sprintf("manual-%d", time.Now().UnixNano())
	}

	engine, formatter := buildEngine(context.Background(), cfg)

	if *script != "" {
		turns, ok := scripts[*script]
		if !ok {
			log.Fatalf("unknown script %q, pick one of: a, b", *script)
		}
		runScript(engine, formatter, sessionID, turns, *timeout)
		return
	}

	if strings.TrimSpace(*message) != "" {
		runTurn(engine, formatter, sessionID, *message, *timeout)
		return
	}

	runInteractive(engine, formatter, sessionID, *timeout)
}

// scripts are canned walkthroughs: "a" covers the location-first path with
// the filler guardrail, "b" covers animal-first plus a post-completion
// restart into disambiguation.
var scripts = map[string][]string{
	"a": {"hello", "Las Vegas", "ok thanks"},
	"b": {"gray wolf", "worldwide", "new search", "Paris", "2"},
}

// buildEngine wires the full turn pipeline against the live collaborators,
// the same way the server does.
func buildEngine(ctx context.Context, cfg *config.Config) (*conversationService.Engine, *conversationService.Formatter) {
	gaz := gazetteer.NewMemoryStore(gazetteer.Seed())

	var chatModel model.ChatModel
	if cfg.AI.Enabled() {
		m, err := cfg.AI.NewChatModel(ctx)
		if err != nil {
			log.Printf("[WARN] Ark chat model unavailable, heuristics only: %v", err)
		} else {
			chatModel = m
		}
	}

	semanticSvc, err := semanticService.NewService(ctx, chatModel, semanticService.Config{
		Enabled: cfg.AI.SemanticEnabled,
	})
	if err != nil {
		log.Printf("[WARN] semantic classifier unavailable: %v", err)
		semanticSvc = nil
	}

	var fallback intent.SemanticFallback
	var ambiguity geoService.AmbiguityClassifier
	if semanticSvc.Enabled() {
		fallback = semanticSvc
		ambiguity = semanticSvc
	}

	geocoder := geoService.NewClient(cfg.Geo)
	resolver := geoService.NewResolver(gaz, geocoder, ambiguity)
	speciesSvc := speciesService.NewService(speciesService.NewClient(cfg.Species), cfg.Species)

	var wiki orgsService.Searcher
	if cfg.Orgs.WikiEnabled {
		wiki = orgsService.NewWikiClient(cfg.Orgs)
	}
	orgsSvc := orgsService.NewService(wiki, cfg.Orgs)

	matcher := match.New(match.DefaultConfig(), gaz)
	store := conversationService.NewMemoryStore()
	engine := conversationService.NewEngine(store, intent.New(gaz, fallback), resolver, speciesSvc, orgsSvc, matcher)

	return engine, conversationService.NewFormatter()
}

func runScript(engine *conversationService.Engine, formatter *conversationService.Formatter, sessionID string, turns []string, timeout time.Duration) {
	for i, message := range turns {
		fmt.Printf("you> %s\n", message)

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		outcome, err := engine.HandleTurn(ctx, sessionID, message)
		cancel()
		if err != nil {
			log.Fatalf("turn %d failed: %v", i+1, err)
		}

		fmt.Printf("bot> %s\n\n", formatter.Render(outcome))
	}
}

func runTurn(engine *conversationService.Engine, formatter *conversationService.Formatter, sessionID, message string, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	outcome, err := engine.HandleTurn(ctx, sessionID, message)
	if err != nil {
		log.Fatalf("turn failed: %v", err)
	}

	log.Printf("session=%s stage=%s kind=%s", sessionID, outcome.Stage, outcome.Kind)
	fmt.Println(formatter.Render(outcome))
}

func runInteractive(engine *conversationService.Engine, formatter *conversationService.Formatter, sessionID string, timeout time.Duration) {
	log.Printf("interactive session %s; type a message, or \"quit\" to exit", sessionID)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		outcome, err := engine.HandleTurn(ctx, sessionID, line)
		cancel()
		if err != nil {
			log.Printf("turn failed: %v", err)
			continue
		}

		fmt.Printf("bot> %s\n\n", formatter.Render(outcome))
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("read input: %v", err)
	}
}
