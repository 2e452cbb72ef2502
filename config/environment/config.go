package environment

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	DefaultGeminiModel = "gemini-pro-latest"
	DefaultOpenAIModel = "gpt-4o"
)

// Config holds everything the relay reads at startup. It is built once and
// passed to the components that need it.
type Config struct {
	Provider        string
	GeminiAPIKey    string
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	Model           string
	AllowedOrigins  []string
	Port            string
	ProviderTimeout time.Duration
	LogLevel        string
	MetricsEnabled  bool
	RequireAPIKey   bool
	LivenessMessage string
}

// Load reads the .env file (if any), the optional YAML config file and the
// process environment, in increasing order of precedence.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetDefault("provider", ProviderGemini)
	v.SetDefault("port", "8080")
	v.SetDefault("provider_timeout", "60s")
	v.SetDefault("log_level", "info")
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("require_api_key", false)
	v.SetDefault("liveness_message", "Caption relay is running")

	// Registered so AutomaticEnv picks them up even without a config file.
	for _, key := range []string{"gemini_api_key", "openai_api_key", "openai_base_url", "model", "allowed_origins", "frontend_url"} {
		v.SetDefault(key, "")
	}
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	timeout, err := parseTimeout(v.GetString("provider_timeout"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Provider:        strings.ToLower(strings.TrimSpace(v.GetString("provider"))),
		GeminiAPIKey:    strings.TrimSpace(v.GetString("gemini_api_key")),
		OpenAIAPIKey:    strings.TrimSpace(v.GetString("openai_api_key")),
		OpenAIBaseURL:   strings.TrimSpace(v.GetString("openai_base_url")),
		Model:           strings.TrimSpace(v.GetString("model")),
		AllowedOrigins:  resolveOrigins(v.GetString("allowed_origins"), v.GetString("frontend_url")),
		Port:            strings.TrimSpace(v.GetString("port")),
		ProviderTimeout: timeout,
		LogLevel:        v.GetString("log_level"),
		MetricsEnabled:  v.GetBool("metrics_enabled"),
		RequireAPIKey:   v.GetBool("require_api_key"),
		LivenessMessage: v.GetString("liveness_message"),
	}

	if cfg.Model == "" {
		cfg.Model = defaultModel(cfg.Provider)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail late or panic inside
// the router.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown provider %q (expected %q or %q)", c.Provider, ProviderGemini, ProviderOpenAI)
	}
	if c.RequireAPIKey && c.APIKey() == "" {
		return fmt.Errorf("api key for provider %q is required", c.Provider)
	}
	if c.ProviderTimeout < 0 {
		return errors.New("provider_timeout must not be negative")
	}
	if c.ProviderTimeout > 0 && c.ProviderTimeout < time.Millisecond {
		return fmt.Errorf("provider_timeout %s is too short (minimum 1ms, 0 disables it)", c.ProviderTimeout)
	}
	if c.Port == "" {
		return errors.New("port is required")
	}
	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("bad origin %q: origins must start with http:// or https://", origin)
		}
	}
	return nil
}

// APIKey returns the key of the selected provider.
func (c *Config) APIKey() string {
	if c.Provider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// AllowAllOrigins reports whether the cross-origin policy is unrestricted.
func (c *Config) AllowAllOrigins() bool {
	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return len(c.AllowedOrigins) == 0
}

func resolveOrigins(allowed, frontend string) []string {
	raw := strings.TrimSpace(allowed)
	if raw == "" {
		raw = strings.TrimSpace(frontend)
	}
	if raw == "" {
		return []string{"*"}
	}

	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSuffix(strings.TrimSpace(origin), "/")
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// parseTimeout accepts a Go duration ("90s", "2m") or a bare number of seconds.
func parseTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	if seconds, err := strconv.Atoi(raw); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid provider_timeout %q: %w", raw, err)
	}
	return d, nil
}

func defaultModel(provider string) string {
	if provider == ProviderOpenAI {
		return DefaultOpenAIModel
	}
	return DefaultGeminiModel
}
