package semantic

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/kestrelbay/wildscope/backend/internal/analysis/intent"
	"github.com/kestrelbay/wildscope/backend/internal/model/geo"
)

// Config controls the semantic classifier service.
type Config struct {
	Enabled bool
}

// ErrDisabled is returned when no chat model is configured.
var ErrDisabled = errors.New("semantic classifier disabled")

// Service answers the two questions heuristics cannot: is this free text an
// animal or a place, and is this bare place name famously ambiguous. Both
// run as small single-shot chains over the shared chat model.
type Service struct {
	enabled        bool
	inputChain     compose.Runnable[map[string]any, *schema.Message]
	ambiguityChain compose.Runnable[map[string]any, *schema.Message]
}

// NewService compiles the classification chains. chatModel may be nil, in
// which case the service reports itself disabled and callers fall back to
// their heuristics.
func NewService(ctx context.Context, chatModel model.ChatModel, cfg Config) (*Service, error) {
	svc := &Service{enabled: cfg.Enabled && chatModel != nil}
	if !svc.enabled {
		return svc, nil
	}

	inputTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(inputTypeSystemPrompt),
		schema.UserMessage(inputTypeUserPrompt),
	)
	inputChain := compose.NewChain[map[string]any, *schema.Message]()
	inputChain.AppendChatTemplate(inputTemplate)
	inputChain.AppendChatModel(chatModel)
	inputRunnable, err := inputChain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile input-type chain: %w", err)
	}

	ambiguityTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(ambiguitySystemPrompt),
		schema.UserMessage(ambiguityUserPrompt),
	)
	ambiguityChain := compose.NewChain[map[string]any, *schema.Message]()
	ambiguityChain.AppendChatTemplate(ambiguityTemplate)
	ambiguityChain.AppendChatModel(chatModel)
	ambiguityRunnable, err := ambiguityChain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile ambiguity chain: %w", err)
	}

	svc.inputChain = inputRunnable
	svc.ambiguityChain = ambiguityRunnable
	return svc, nil
}

// Enabled reports whether the chains were compiled.
func (s *Service) Enabled() bool {
	return s != nil && s.enabled && s.inputChain != nil
}

// InputType asks the model for a one-word ANIMAL/LOCATION verdict.
func (s *Service) InputType(ctx context.Context, message string) (intent.Verdict, error) {
	if !s.Enabled() {
		return intent.VerdictNone, ErrDisabled
	}

	msg, err := s.inputChain.Invoke(ctx, map[string]any{"message": strings.TrimSpace(message)})
	if err != nil {
		return intent.VerdictNone, fmt.Errorf("input-type invoke: %w", err)
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		return intent.VerdictNone, errors.New("input-type returned empty content")
	}

	verdict, err := parseInputTypeOutput(msg.Content)
	if err != nil {
		log.Printf("[semantic] unparseable input-type output %q", msg.Content)
		return intent.VerdictNone, err
	}
	return verdict, nil
}

// ClassifyAmbiguity asks the model whether a bare place name has several
// well-known readings and parses them into disambiguation options.
func (s *Service) ClassifyAmbiguity(ctx context.Context, phrase string) (geo.AmbiguityReport, error) {
	if !s.Enabled() {
		return geo.AmbiguityReport{}, ErrDisabled
	}

	msg, err := s.ambiguityChain.Invoke(ctx, map[string]any{"phrase": strings.TrimSpace(phrase)})
	if err != nil {
		return geo.AmbiguityReport{}, fmt.Errorf("ambiguity invoke: %w", err)
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		return geo.AmbiguityReport{}, errors.New("ambiguity returned empty content")
	}

	return parseAmbiguityOutput(msg.Content), nil
}

func parseInputTypeOutput(content string) (intent.Verdict, error) {
	upper := strings.ToUpper(strings.TrimSpace(content))
	fields := strings.FieldsFunc(upper, func(r rune) bool {
		return !(r >= 'A' && r <= 'Z')
	})
	if len(fields) > 0 {
		switch fields[0] {
		case "ANIMAL":
			return intent.VerdictAnimal, nil
		case "LOCATION":
			return intent.VerdictLocation, nil
		}
	}
	// Tolerate verdicts buried in chatter, first mention wins.
	animalAt := strings.Index(upper, "ANIMAL")
	locationAt := strings.Index(upper, "LOCATION")
	switch {
	case animalAt >= 0 && (locationAt < 0 || animalAt < locationAt):
		return intent.VerdictAnimal, nil
	case locationAt >= 0:
		return intent.VerdictLocation, nil
	}
	return intent.VerdictNone, fmt.Errorf("no verdict in output")
}

var optionLine = regexp.MustCompile(`^\s*\d+[.)]\s*(.+)$`)

// parseAmbiguityOutput reads the "AMBIGUOUS + numbered options" protocol.
// Anything malformed degrades to "not ambiguous" so the resolver can carry
// on with plain geocoding.
func parseAmbiguityOutput(content string) geo.AmbiguityReport {
	lines := strings.Split(strings.TrimSpace(content), "\n")
	verdictSeen := false
	var options []geo.DisambiguationOption

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !verdictSeen {
			upper := strings.ToUpper(line)
			if strings.Contains(upper, "UNAMBIGUOUS") {
				return geo.AmbiguityReport{}
			}
			if strings.Contains(upper, "AMBIGUOUS") {
				verdictSeen = true
				continue
			}
			return geo.AmbiguityReport{}
		}

		matches := optionLine.FindStringSubmatch(line)
		if matches == nil {
			continue
		}
		if option, ok := parseOptionLine(matches[1]); ok {
			options = append(options, option)
		}
	}

	if len(options) < 2 {
		return geo.AmbiguityReport{}
	}
	return geo.AmbiguityReport{Ambiguous: true, Options: options}
}

// parseOptionLine splits "Name - Description - Country - Region?" and
// derives the display name and fully qualified search query.
func parseOptionLine(line string) (geo.DisambiguationOption, bool) {
	parts := strings.Split(line, " - ")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 3 || parts[0] == "" || parts[2] == "" {
		return geo.DisambiguationOption{}, false
	}

	option := geo.DisambiguationOption{
		Description: parts[1],
		Country:     parts[2],
	}
	if len(parts) >= 4 && parts[3] != "" {
		option.Region = parts[3]
	}

	if option.Region != "" {
		option.DisplayName = parts[0] + ", " + option.Region
		option.SearchQuery = parts[0] + ", " + option.Region + ", " + option.Country
	} else {
		option.DisplayName = parts[0] + ", " + option.Country
		option.SearchQuery = parts[0] + ", " + option.Country
	}
	return option, true
}
