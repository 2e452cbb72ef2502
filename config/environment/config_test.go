package environment

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every key Load reads; viper ignores empty variables.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PROVIDER", "GEMINI_API_KEY", "OPENAI_API_KEY", "OPENAI_BASE_URL", "MODEL",
		"ALLOWED_ORIGINS", "FRONTEND_URL", "PORT", "PROVIDER_TIMEOUT", "LOG_LEVEL",
		"METRICS_ENABLED", "REQUIRE_API_KEY", "LIVENESS_MESSAGE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, DefaultGeminiModel, cfg.Model)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 60*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.True(t, cfg.AllowAllOrigins())
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.RequireAPIKey)
	assert.Empty(t, cfg.APIKey())
	assert.Equal(t, "Caption relay is running", cfg.LivenessMessage)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("PORT", "9090")
	t.Setenv("PROVIDER_TIMEOUT", "0")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gem-key", cfg.APIKey())
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, time.Duration(0), cfg.ProviderTimeout)
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoad_TimeoutFormats(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"60", 60 * time.Second},
		{"90s", 90 * time.Second},
		{"2m", 2 * time.Minute},
		{"1500ms", 1500 * time.Millisecond},
		{"0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("PROVIDER_TIMEOUT", tt.raw)

			cfg, err := Load("")
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.ProviderTimeout)
		})
	}
}

func TestLoad_OpenAIProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "gem-key")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, DefaultOpenAIModel, cfg.Model)
	assert.Equal(t, "sk-test", cfg.APIKey())
}

func TestLoad_FrontendURLRestrictsOrigins(t *testing.T) {
	clearEnv(t)
	t.Setenv("FRONTEND_URL", "https://captions.example.com/")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://captions.example.com"}, cfg.AllowedOrigins)
	assert.False(t, cfg.AllowAllOrigins())
}

func TestLoad_AllowedOriginsTakePrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("FRONTEND_URL", "https://ignored.example.com")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example.com , http://localhost:5173,")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example.com", "http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown provider", map[string]string{"PROVIDER": "anthropic"}},
		{"missing required key", map[string]string{"REQUIRE_API_KEY": "true"}},
		{"negative timeout", map[string]string{"PROVIDER_TIMEOUT": "-1s"}},
		{"sub-millisecond timeout", map[string]string{"PROVIDER_TIMEOUT": "500ns"}},
		{"unparseable timeout", map[string]string{"PROVIDER_TIMEOUT": "a minute"}},
		{"bad origin", map[string]string{"ALLOWED_ORIGINS": "captions.example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")

	path := filepath.Join(t.TempDir(), "relay.yaml")
	content := "provider: openai\nopenai_api_key: file-key\nmodel: gpt-4o-mini\nport: \"6000\"\nprovider_timeout: 30\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "file-key", cfg.APIKey())
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, "7000", cfg.Port, "environment overrides the config file")
	assert.Equal(t, 30*time.Second, cfg.ProviderTimeout)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
