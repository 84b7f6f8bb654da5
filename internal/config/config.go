// Package config provides configuration loading and defaults for the zeabur-mcp server.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultGraphQLURL is the public Zeabur GraphQL endpoint.
const DefaultGraphQLURL = "https://api.zeabur.com/graphql"

// ResourceFilter holds allowlist and denylist entries for a resource category.
type ResourceFilter struct {
	Allowlist []string `yaml:"allowlist"`
	Denylist  []string `yaml:"denylist"`
}

// SafetyConfig groups the filters applied before remote side effects.
type SafetyConfig struct {
	// Commands filters the base command (argv[0]) of execute_command.
	Commands ResourceFilter `yaml:"commands"`
}

// AuditConfig controls audit logging behaviour.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	LogPath string `yaml:"log_path"`
}

// ServerConfig holds network and authentication settings.
type ServerConfig struct {
	Port      int    `yaml:"port"`
	AuthToken string `yaml:"auth_token"`
	// Transport is either "http" (streamable HTTP) or "stdio".
	Transport string `yaml:"transport"`
}

// ZeaburConfig holds connection details for the Zeabur GraphQL API.
type ZeaburConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
	// Timeout is the HTTP request timeout in seconds.
	Timeout int `yaml:"timeout"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or console
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// TracingConfig controls OpenTelemetry span export.
type TracingConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Exporter string `yaml:"exporter"` // stdout or none
}

// Config is the top-level configuration structure for the zeabur-mcp server.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Zeabur  ZeaburConfig  `yaml:"zeabur"`
	Safety  SafetyConfig  `yaml:"safety"`
	Audit   AuditConfig   `yaml:"audit"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
}

// LoadConfig reads and parses a YAML configuration file from the given path.
// Fields absent from the file keep their DefaultConfig values. On error, nil
// is returned for the config pointer.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a new Config populated with sensible default values.
// Each call returns a distinct instance.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      8080,
			Transport: "http",
		},
		Zeabur: ZeaburConfig{
			URL:     DefaultGraphQLURL,
			Timeout: 30,
		},
		Audit: AuditConfig{
			Enabled: true,
			LogPath: "/config/audit.log",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Tracing: TracingConfig{
			Exporter: "none",
		},
	}
}

// ApplyEnvOverrides updates cfg in place with values from environment variables.
// Recognized variables:
//   - ZEABUR_MCP_AUTH_TOKEN overrides cfg.Server.AuthToken
//   - ZEABUR_TOKEN overrides cfg.Zeabur.Token
//   - ZEABUR_GRAPHQL_URL overrides cfg.Zeabur.URL
//   - ZEABUR_MCP_LOG_LEVEL overrides cfg.Logging.Level
func ApplyEnvOverrides(cfg *Config) {
	if token := os.Getenv("ZEABUR_MCP_AUTH_TOKEN"); token != "" {
		cfg.Server.AuthToken = token
	}
	if token := os.Getenv("ZEABUR_TOKEN"); token != "" {
		cfg.Zeabur.Token = token
	}
	if url := os.Getenv("ZEABUR_GRAPHQL_URL"); url != "" {
		cfg.Zeabur.URL = url
	}
	if level := os.Getenv("ZEABUR_MCP_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}

// Validate reports configuration values that would make the server unusable.
func (c *Config) Validate() error {
	switch c.Server.Transport {
	case "http", "stdio":
	default:
		return fmt.Errorf("invalid server.transport %q: must be http or stdio", c.Server.Transport)
	}
	if c.Server.Transport == "http" && (c.Server.Port <= 0 || c.Server.Port > 65535) {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if c.Zeabur.URL == "" {
		return fmt.Errorf("zeabur.url is required")
	}
	return nil
}

// EnsureAuthToken generates a random auth token and sets it on cfg if
// cfg.Server.AuthToken is empty. It returns the token (existing or generated)
// and any error encountered during generation.
func EnsureAuthToken(cfg *Config) (string, error) {
	if cfg.Server.AuthToken != "" {
		return cfg.Server.AuthToken, nil
	}
	token, err := GenerateRandomToken()
	if err != nil {
		return "", fmt.Errorf("generate auth token: %w", err)
	}
	cfg.Server.AuthToken = token
	return token, nil
}

// GenerateRandomToken returns a 32-character hex-encoded cryptographically
// random token string.
func GenerateRandomToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand.Read: %w", err)
	}
	return hex.EncodeToString(b), nil
}
