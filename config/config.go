package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Invoice storage
	Storage  StorageConfig
	Postgres PostgresConfig
	Memory   MemoryConfig
	Cache    CacheConfig

	// Chatbot behaviour
	Chatbot ChatbotConfig

	// Generative service
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int    `validate:"required,gt=0,lt=65536"`
	Mode string `validate:"required,oneof=debug release test"`
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	FilePath     string
}

// StorageConfig selects the invoice repository implementation.
type StorageConfig struct {
	Driver string `validate:"required,oneof=memory postgres"`
}

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// MemoryConfig points at a YAML file of invoices used by the memory driver.
type MemoryConfig struct {
	SeedPath string
	Watch    bool
}

// CacheConfig configures the resolution cache in front of the repository.
// A zero Size disables it.
type CacheConfig struct {
	Size int           `validate:"gte=0"`
	TTL  time.Duration `validate:"gte=0"`
}

type ChatbotConfig struct {
	MinMessageLength int    `validate:"gte=1"`
	Currency         string `validate:"required"`
	RateLimitPerMin  int    `validate:"gte=0"`
}

// LLMConfig holds configuration for the generative service.
type LLMConfig struct {
	Timeout   time.Duration    `validate:"gt=0"`
	Providers []ProviderConfig `validate:"required,min=1,dive"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name" validate:"required,oneof=ollama openai"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model" validate:"required"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/invoice-assistant/
func Load() (*Config, error) {
	// A missing .env is fine, the process environment still applies.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/invoice-assistant/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = viper.GetString("logger.file_path")

	// Storage
	cfg.Storage.Driver = viper.GetString("storage.driver")
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")
	cfg.Memory.SeedPath = viper.GetString("memory.seed_path")
	cfg.Memory.Watch = viper.GetBool("memory.watch")
	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")

	// Chatbot
	cfg.Chatbot.MinMessageLength = viper.GetInt("chatbot.min_message_length")
	cfg.Chatbot.Currency = viper.GetString("chatbot.currency")
	cfg.Chatbot.RateLimitPerMin = viper.GetInt("chatbot.rate_limit_per_min")

	// LLM
	cfg.LLM.Timeout = viper.GetDuration("llm.timeout")
	cfg.LLM.Providers = loadProviders()
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = []ProviderConfig{defaultProvider()}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Storage.Driver == "postgres" && cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("invalid configuration: postgres.dsn is required for the postgres driver")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("storage.driver", "memory")
	viper.SetDefault("postgres.max_open_conns", 10)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.conn_max_lifetime", "30m")
	viper.SetDefault("memory.seed_path", "./config/invoices.yaml")
	viper.SetDefault("memory.watch", true)
	viper.SetDefault("cache.size", 256)
	viper.SetDefault("cache.ttl", "30s")

	viper.SetDefault("chatbot.min_message_length", 2)
	viper.SetDefault("chatbot.currency", "DH")
	viper.SetDefault("chatbot.rate_limit_per_min", 60)

	viper.SetDefault("llm.timeout", "8s")
}

func defaultProvider() ProviderConfig {
	return ProviderConfig{
		Name:     "ollama",
		Enabled:  true,
		Priority: 1,
		BaseURL:  "http://localhost:11434",
		Model:    "llama3.2",
	}
}

// loadProviders reads llm.providers. Viper hands back []interface{} for YAML lists.
func loadProviders() []ProviderConfig {
	if !viper.IsSet("llm.providers") {
		return nil
	}

	providersList, ok := viper.Get("llm.providers").([]interface{})
	if !ok {
		return nil
	}

	var providers []ProviderConfig
	for _, p := range providersList {
		providerMap, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		providers = append(providers, ProviderConfig{
			Name:     getStringFromMap(providerMap, "name"),
			Enabled:  getBoolFromMap(providerMap, "enabled"),
			Priority: getIntFromMap(providerMap, "priority"),
			APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
			BaseURL:  getStringFromMap(providerMap, "base_url"),
			Model:    getStringFromMap(providerMap, "model"),
		})
	}
	return providers
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
