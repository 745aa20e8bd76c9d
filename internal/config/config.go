package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/healthfactguardian/verifier-node/internal/log"
)

// Configuration holds the verifier node configuration
type Configuration struct {
	ServerPort int      `mapstructure:"ServerPort" tip:"Port the verification API listens on"`
	Log        Log      `mapstructure:"Log"`
	Registry   Registry `mapstructure:"Registry"`
	Facts      Facts    `mapstructure:"Facts"`
	PubMed     PubMed   `mapstructure:"PubMed"`
	Analyzer   Analyzer `mapstructure:"Analyzer"`
}

// Registry holds the on-chain fact registry configuration
type Registry struct {
	URL                  string        `mapstructure:"Url" tip:"JSON-RPC url of the chain node"`
	ContractAddress      string        `mapstructure:"ContractAddress" tip:"HealthFactRegistry contract address"`
	ExplorerURL          string        `mapstructure:"ExplorerUrl" tip:"Block explorer base url"`
	RPCResponseTimeout   time.Duration `mapstructure:"RPCResponseTimeout" tip:"RPC response timeout"`
	AvailabilityCacheTTL time.Duration `mapstructure:"AvailabilityCacheTTL" tip:"How long an availability probe result is reused"`
}

// Facts holds the local known-facts store configuration
type Facts struct {
	Dir string `mapstructure:"Dir" tip:"Directory with authoritative fact json documents"`
}

// PubMed holds the literature search configuration.
// MaxTerms/MinTermLength tune the query heuristic, they are not a wire contract.
type PubMed struct {
	URL             string        `mapstructure:"Url" tip:"NCBI E-utilities base url"`
	ResponseTimeout time.Duration `mapstructure:"ResponseTimeout" tip:"Search request timeout"`
	MaxResults      int           `mapstructure:"MaxResults" tip:"Maximum articles per search"`
	MaxTerms        int           `mapstructure:"MaxTerms" tip:"Maximum query terms extracted from a claim"`
	MinTermLength   int           `mapstructure:"MinTermLength" tip:"Minimum length of an extracted query term"`
}

// Analyzer holds the model analysis configuration
type Analyzer struct {
	Provider        string        `mapstructure:"Provider" tip:"Analysis backend: ollama or openai"`
	Model           string        `mapstructure:"Model" tip:"Model name for the selected provider"`
	APIKey          string        `mapstructure:"ApiKey" tip:"API key (openai provider only)"`
	OllamaURL       string        `mapstructure:"OllamaUrl" tip:"Ollama base url (ollama provider only)"`
	ResponseTimeout time.Duration `mapstructure:"ResponseTimeout" tip:"Analysis request timeout"`
}

// Log holds runtime log configuration
//
// Level: The minimum log level to show on logs. Values can be
//
//	 -4: Debug
//		0: Info
//		4: Warning
//		8: Error
//
// Mode: Log mode is the format of the log. It can be text or json
// 1: JSON
// 2: Text
type Log struct {
	Level int `mapstructure:"Level" tip:"Minimum level to log: (-4:Debug, 0:Info, 4:Warning, 8:Error)"`
	Mode  int `mapstructure:"Mode" tip:"Log format (1: JSON, 2:Structured text)"`
}

// Analyzer provider names accepted in config
const (
	AnalyzerProviderOllama = "ollama"
	AnalyzerProviderOpenAI = "openai"
)

// Sanitize performs some basic checks and sanitizations in the configuration.
// Returns nil if the config is acceptable, an error otherwise.
func (c *Configuration) Sanitize(ctx context.Context) error {
	if c.ServerPort == 0 {
		return fmt.Errorf("a port for the verification API server must be provided")
	}
	if c.Registry.URL != "" {
		if _, err := url.ParseRequestURI(c.Registry.URL); err != nil {
			return fmt.Errorf("registry url is not a valid URL <%s>: %w", c.Registry.URL, err)
		}
	}
	switch c.Analyzer.Provider {
	case AnalyzerProviderOllama, AnalyzerProviderOpenAI:
	default:
		return fmt.Errorf("unknown analyzer provider <%s>", c.Analyzer.Provider)
	}
	if c.Analyzer.Provider == AnalyzerProviderOpenAI && c.Analyzer.APIKey == "" {
		log.Warn(ctx, "openai analyzer configured without api key, analysis will fall back to the safe response")
	}
	if c.Registry.ContractAddress == "" {
		log.Warn(ctx, "registry contract address not configured, on-chain verification disabled")
	}
	return nil
}

// Load loads the configuration from a config file and binds environment
// variables on top of it.
func Load(fileName string) (*Configuration, error) {
	bindEnv()
	pathFlag := viper.GetString("config")
	if _, err := os.Stat(pathFlag); err == nil {
		ext := filepath.Ext(pathFlag)
		if len(ext) > 1 {
			ext = ext[1:]
		}
		name := strings.Split(filepath.Base(pathFlag), ".")[0]
		viper.AddConfigPath(".")
		viper.SetConfigName(name)
		viper.SetConfigType(ext)
	} else {
		viper.AddConfigPath(getWorkingDirectory())
		viper.SetConfigType("toml")
		if fileName == "" {
			viper.SetConfigName("config")
		} else {
			viper.SetConfigName(fileName)
		}
	}

	config := &Configuration{
		ServerPort: defaultServerPort,
		Log: Log{
			Level: log.LevelDebug,
			Mode:  log.OutputText,
		},
		Registry: Registry{
			URL:                  "https://dream-rpc.somnia.network",
			ExplorerURL:          "https://somnia-explorer.com",
			RPCResponseTimeout:   defaultRPCTimeout,
			AvailabilityCacheTTL: defaultAvailabilityTTL,
		},
		PubMed: PubMed{
			URL:             "https://eutils.ncbi.nlm.nih.gov/entrez/eutils",
			ResponseTimeout: defaultHTTPTimeout,
			MaxResults:      defaultMaxResults,
			MaxTerms:        defaultMaxTerms,
			MinTermLength:   defaultMinTermLength,
		},
		Analyzer: Analyzer{
			Provider:        AnalyzerProviderOllama,
			Model:           "llama3.2:3b",
			OllamaURL:       "http://localhost:11434",
			ResponseTimeout: defaultAnalysisTimeout,
		},
	}
	ctx := context.Background()
	if err := viper.ReadInConfig(); err != nil {
		log.Info(ctx, "config file not loaded, using env and defaults", "err", err)
	}
	if err := viper.Unmarshal(config); err != nil {
		log.Error(ctx, "error unmarshalling config file", err)
	}
	return config, nil
}

const (
	defaultServerPort      = 3001
	defaultRPCTimeout      = 5 * time.Second
	defaultHTTPTimeout     = 10 * time.Second
	defaultAnalysisTimeout = 30 * time.Second
	defaultAvailabilityTTL = 30 * time.Second
	defaultMaxResults      = 5
	defaultMaxTerms        = 5
	defaultMinTermLength   = 4
)

func bindEnv() {
	viper.SetEnvPrefix("VERIFIER")
	_ = viper.BindEnv("ServerPort", "VERIFIER_SERVER_PORT")

	_ = viper.BindEnv("Log.Level", "VERIFIER_LOG_LEVEL")
	_ = viper.BindEnv("Log.Mode", "VERIFIER_LOG_MODE")

	_ = viper.BindEnv("Registry.Url", "VERIFIER_REGISTRY_URL")
	_ = viper.BindEnv("Registry.ContractAddress", "VERIFIER_REGISTRY_CONTRACT_ADDRESS")
	_ = viper.BindEnv("Registry.ExplorerUrl", "VERIFIER_REGISTRY_EXPLORER_URL")
	_ = viper.BindEnv("Registry.RPCResponseTimeout", "VERIFIER_REGISTRY_RPC_RESPONSE_TIMEOUT")
	_ = viper.BindEnv("Registry.AvailabilityCacheTTL", "VERIFIER_REGISTRY_AVAILABILITY_CACHE_TTL")

	_ = viper.BindEnv("Facts.Dir", "VERIFIER_FACTS_DIR")

	_ = viper.BindEnv("PubMed.Url", "VERIFIER_PUBMED_URL")
	_ = viper.BindEnv("PubMed.ResponseTimeout", "VERIFIER_PUBMED_RESPONSE_TIMEOUT")
	_ = viper.BindEnv("PubMed.MaxResults", "VERIFIER_PUBMED_MAX_RESULTS")
	_ = viper.BindEnv("PubMed.MaxTerms", "VERIFIER_PUBMED_MAX_TERMS")
	_ = viper.BindEnv("PubMed.MinTermLength", "VERIFIER_PUBMED_MIN_TERM_LENGTH")

	_ = viper.BindEnv("Analyzer.Provider", "VERIFIER_ANALYZER_PROVIDER")
	_ = viper.BindEnv("Analyzer.Model", "VERIFIER_ANALYZER_MODEL")
	_ = viper.BindEnv("Analyzer.ApiKey", "VERIFIER_ANALYZER_API_KEY")
	_ = viper.BindEnv("Analyzer.OllamaUrl", "VERIFIER_ANALYZER_OLLAMA_URL")
	_ = viper.BindEnv("Analyzer.ResponseTimeout", "VERIFIER_ANALYZER_RESPONSE_TIMEOUT")

	viper.AutomaticEnv()
}

func getWorkingDirectory() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
