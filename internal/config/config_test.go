package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("no-such-config-file")
	require.NoError(t, err)

	assert.Equal(t, defaultServerPort, cfg.ServerPort)
	assert.Equal(t, "https://dream-rpc.somnia.network", cfg.Registry.URL)
	assert.Equal(t, "https://somnia-explorer.com", cfg.Registry.ExplorerURL)
	assert.Equal(t, "https://eutils.ncbi.nlm.nih.gov/entrez/eutils", cfg.PubMed.URL)
	assert.Equal(t, defaultMaxResults, cfg.PubMed.MaxResults)
	assert.Equal(t, AnalyzerProviderOllama, cfg.Analyzer.Provider)
	assert.Equal(t, "llama3.2:3b", cfg.Analyzer.Model)
	assert.Equal(t, "http://localhost:11434", cfg.Analyzer.OllamaURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("VERIFIER_SERVER_PORT", "9090")
	t.Setenv("VERIFIER_REGISTRY_CONTRACT_ADDRESS", "0x0000000000000000000000000000000000000001")
	t.Setenv("VERIFIER_ANALYZER_PROVIDER", "openai")
	t.Setenv("VERIFIER_ANALYZER_API_KEY", "sk-test")
	t.Setenv("VERIFIER_FACTS_DIR", "/var/lib/verifier/facts")

	cfg, err := Load("no-such-config-file")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "0x0000000000000000000000000000000000000001", cfg.Registry.ContractAddress)
	assert.Equal(t, AnalyzerProviderOpenAI, cfg.Analyzer.Provider)
	assert.Equal(t, "sk-test", cfg.Analyzer.APIKey)
	assert.Equal(t, "/var/lib/verifier/facts", cfg.Facts.Dir)
}

func TestSanitize(t *testing.T) {
	ctx := context.Background()

	valid := func() *Configuration {
		return &Configuration{
			ServerPort: 3001,
			Registry:   Registry{URL: "https://dream-rpc.somnia.network"},
			Analyzer:   Analyzer{Provider: AnalyzerProviderOllama},
		}
	}

	t.Run("valid configuration", func(t *testing.T) {
		require.NoError(t, valid().Sanitize(ctx))
	})

	t.Run("missing server port", func(t *testing.T) {
		cfg := valid()
		cfg.ServerPort = 0
		require.Error(t, cfg.Sanitize(ctx))
	})

	t.Run("invalid registry url", func(t *testing.T) {
		cfg := valid()
		cfg.Registry.URL = "not a url"
		require.Error(t, cfg.Sanitize(ctx))
	})

	t.Run("empty registry url allowed", func(t *testing.T) {
		cfg := valid()
		cfg.Registry.URL = ""
		require.NoError(t, cfg.Sanitize(ctx))
	})

	t.Run("unknown analyzer provider", func(t *testing.T) {
		cfg := valid()
		cfg.Analyzer.Provider = "bedrock"
		require.Error(t, cfg.Sanitize(ctx))
	})

	t.Run("openai without api key only warns", func(t *testing.T) {
		cfg := valid()
		cfg.Analyzer.Provider = AnalyzerProviderOpenAI
		require.NoError(t, cfg.Sanitize(ctx))
	})
}
