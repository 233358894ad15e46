package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Config aggregates every runtime setting of the service.
type Config struct {
	Server  ServerConfig
	AI      AIConfig
	Geo     GeoConfig
	Species SpeciesConfig
	Orgs    OrgsConfig
	Matcher MatcherConfig
	CORS    CORSConfig
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	geo, err := loadGeoConfig()
	if err != nil {
		return nil, err
	}

	species, err := loadSpeciesConfig()
	if err != nil {
		return nil, err
	}

	orgs, err := loadOrgsConfig()
	if err != nil {
		return nil, err
	}

	matcher, err := loadMatcherConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:  server,
		AI:      ai,
		Geo:     geo,
		Species: species,
		Orgs:    orgs,
		Matcher: matcher,
		CORS:    loadCORSConfig(),
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" verbatim.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig describes the Ark chat model used for semantic classification.
type AIConfig struct {
	APIKey          string
	AccessKey       string
	SecretKey       string
	Model           string
	BaseURL         string
	Region          string
	Temperature     *float64
	TopP            *float64
	MaxTokens       *int
	SemanticEnabled bool
}

// Enabled reports whether the required credentials were provided.
func (c AIConfig) Enabled() bool {
	return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
}

// NewChatModel builds a model instance from the configuration.
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("ark credentials missing: provide ARK_API_KEY + ARK_MODEL or an AK/SK pair")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var topP *float32
	if c.TopP != nil {
		val := float32(*c.TopP)
		topP = &val
	}

	var maxTokens *int
	if c.MaxTokens != nil {
		val := *c.MaxTokens
		maxTokens = &val
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       c.Model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		TopP:        topP,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("ARK_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	topP, err := parseOptionalFloatEnv("ARK_TOP_P")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("ARK_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	semanticEnabled, err := parseBoolEnv("AI_SEMANTIC_ENABLED", true)
	if err != nil {
		return AIConfig{}, err
	}

	return AIConfig{
		APIKey:          strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		AccessKey:       strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		SecretKey:       strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		Model:           strings.TrimSpace(os.Getenv("ARK_MODEL")),
		BaseURL:         getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		Region:          getEnvOrDefault("ARK_REGION", "cn-beijing"),
		Temperature:     temperature,
		TopP:            topP,
		MaxTokens:       maxTokens,
		SemanticEnabled: semanticEnabled,
	}, nil
}

// GeoConfig describes the geocoding collaborator.
type GeoConfig struct {
	BaseURL   string
	Email     string
	UserAgent string
	Timeout   int
}

func loadGeoConfig() (GeoConfig, error) {
	timeout, err := parseOptionalIntEnv("GEOCODER_TIMEOUT")
	if err != nil {
		return GeoConfig{}, err
	}
	timeoutSeconds := 10
	if timeout != nil {
		timeoutSeconds = *timeout
	}

	return GeoConfig{
		BaseURL:   getEnvOrDefault("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		Email:     strings.TrimSpace(os.Getenv("GEOCODER_EMAIL")),
		UserAgent: getEnvOrDefault("GEOCODER_USER_AGENT", "wildscope-backend/1.0"),
		Timeout:   timeoutSeconds,
	}, nil
}

// SpeciesConfig describes the biodiversity collaborator.
type SpeciesConfig struct {
	BaseURL    string
	RadiusKM   int
	MaxResults int
	Timeout    int
}

func loadSpeciesConfig() (SpeciesConfig, error) {
	radius, err := parseOptionalIntEnv("SPECIES_RADIUS_KM")
	if err != nil {
		return SpeciesConfig{}, err
	}
	radiusKM := 50
	if radius != nil && *radius > 0 {
		radiusKM = *radius
	}

	maxResults, err := parseOptionalIntEnv("SPECIES_MAX_RESULTS")
	if err != nil {
		return SpeciesConfig{}, err
	}
	limit := 10
	if maxResults != nil && *maxResults > 0 {
		limit = *maxResults
	}

	timeout, err := parseOptionalIntEnv("SPECIES_TIMEOUT")
	if err != nil {
		return SpeciesConfig{}, err
	}
	timeoutSeconds := 15
	if timeout != nil {
		timeoutSeconds = *timeout
	}

	return SpeciesConfig{
		BaseURL:    getEnvOrDefault("SPECIES_BASE_URL", "https://api.inaturalist.org/v1"),
		RadiusKM:   radiusKM,
		MaxResults: limit,
		Timeout:    timeoutSeconds,
	}, nil
}

// OrgsConfig describes the organization directory and its optional
// Wikipedia enrichment.
type OrgsConfig struct {
	WikiBaseURL string
	MaxResults  int
	WikiEnabled bool
	Timeout     int
}

func loadOrgsConfig() (OrgsConfig, error) {
	maxResults, err := parseOptionalIntEnv("ORGS_MAX_RESULTS")
	if err != nil {
		return OrgsConfig{}, err
	}
	limit := 5
	if maxResults != nil && *maxResults > 0 {
		limit = *maxResults
	}

	wikiEnabled, err := parseBoolEnv("ORGS_WIKI_ENABLED", true)
	if err != nil {
		return OrgsConfig{}, err
	}

	timeout, err := parseOptionalIntEnv("ORGS_TIMEOUT")
	if err != nil {
		return OrgsConfig{}, err
	}
	timeoutSeconds := 10
	if timeout != nil {
		timeoutSeconds = *timeout
	}

	return OrgsConfig{
		WikiBaseURL: getEnvOrDefault("ORGS_WIKI_BASE_URL", "https://en.wikipedia.org/w/api.php"),
		MaxResults:  limit,
		WikiEnabled: wikiEnabled,
		Timeout:     timeoutSeconds,
	}, nil
}

// MatcherConfig overrides the tuned fuzzy-matching thresholds. Unset values
// keep the defaults.
type MatcherConfig struct {
	MinRatio      *float64
	MinHits       *int
	PrefixLen     *int
	MaxMessageLen *int
}

func loadMatcherConfig() (MatcherConfig, error) {
	minRatio, err := parseOptionalFloatEnv("MATCH_MIN_RATIO")
	if err != nil {
		return MatcherConfig{}, err
	}

	minHits, err := parseOptionalIntEnv("MATCH_MIN_HITS")
	if err != nil {
		return MatcherConfig{}, err
	}

	prefixLen, err := parseOptionalIntEnv("MATCH_PREFIX_LEN")
	if err != nil {
		return MatcherConfig{}, err
	}

	maxLen, err := parseOptionalIntEnv("MATCH_MAX_MESSAGE_LEN")
	if err != nil {
		return MatcherConfig{}, err
	}

	return MatcherConfig{
		MinRatio:      minRatio,
		MinHits:       minHits,
		PrefixLen:     prefixLen,
		MaxMessageLen: maxLen,
	}, nil
}

// CORSConfig lists the origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string
}

func loadCORSConfig() CORSConfig {
	raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if raw == "" {
		return CORSConfig{AllowedOrigins: []string{"*"}}
	}

	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return CORSConfig{AllowedOrigins: origins}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
