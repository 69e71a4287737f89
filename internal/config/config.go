package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full gateway configuration.
type Config struct {
	Server    ServerConfig              `mapstructure:"server"`
	Providers map[string]ProviderConfig `mapstructure:"providers"`
	Logging   LoggingConfig             `mapstructure:"logging"`
}

// ServerConfig holds listener settings.
type ServerConfig struct {
	Host     string `mapstructure:"host"`
	GRPCPort int    `mapstructure:"grpc_port"`
	HTTPPort int    `mapstructure:"http_port"`
	Env      string `mapstructure:"env"`
}

// ProviderConfig describes one backend. Type selects the adapter
// ("openai", "anthropic", "gemini", "mock"); OpenAI-compatible proxies
// reuse the openai type with their own base URL.
type ProviderConfig struct {
	Type    string   `mapstructure:"type" validate:"required"`
	BaseURL string   `mapstructure:"base_url"`
	APIKey  string   `mapstructure:"api_key" validate:"required_unless=Type mock"`
	Enabled bool     `mapstructure:"enabled"`
	Models  []string `mapstructure:"models"`
	// Image marks this provider as an image backend.
	Image bool `mapstructure:"image"`
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GRPCAddr returns the host:port the gRPC server binds.
func (c *Config) GRPCAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.GRPCPort)
}

// HTTPAddr returns the host:port the HTTP admin server binds.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.HTTPPort)
}

// Load reads configuration from config.yaml and the environment.
func Load() (*Config, error) {
	// Load .env file if present
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.grpc_port", 50051)
	v.SetDefault("server.http_port", 8080)
	v.SetDefault("server.env", "development")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	// Resolve API keys: "ENV:VAR" indirection plus the conventional
	// <NAME>_API_KEY override per provider.
	for name, p := range cfg.Providers {
		if strings.HasPrefix(p.APIKey, "ENV:") {
			envVar := strings.TrimPrefix(p.APIKey, "ENV:")
			p.APIKey = os.Getenv(envVar)
		}
		if envKey := os.Getenv(strings.ToUpper(name) + "_API_KEY"); envKey != "" {
			p.APIKey = envKey
		}
		cfg.Providers[name] = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the provider blocks. Disabled providers are skipped
// so a commented-out key does not block startup.
func (c *Config) Validate() error {
	validate := validator.New()
	for name, p := range c.Providers {
		if !p.Enabled {
			continue
		}
		if err := validate.Struct(p); err != nil {
			return fmt.Errorf("invalid config for provider %s: %w", name, err)
		}
	}
	return nil
}
