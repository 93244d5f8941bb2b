// ABOUTME: Configuration loading and parsing for Cheshire Cat clients
// ABOUTME: Supports YAML or TOML files with environment variable expansion and duration parsing

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	cheshire "github.com/2389/cheshire-client"
	"github.com/2389/cheshire-client/transport"
)

// DefaultPort is the port a stock Cheshire Cat listens on.
const DefaultPort = 1865

// Config represents the complete client configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" toml:"server"`
	Auth     AuthConfig     `yaml:"auth" toml:"auth"`
	Identity IdentityConfig `yaml:"identity" toml:"identity"`
	Timeouts TimeoutsConfig `yaml:"timeouts" toml:"timeouts"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

// ServerConfig locates the Cheshire Cat instance
type ServerConfig struct {
	Host   string `yaml:"host" toml:"host"`
	Port   int    `yaml:"port" toml:"port"`
	Secure bool   `yaml:"secure" toml:"secure"`
}

// AuthConfig holds credentials. Username and password are only used by the
// CLI login command to obtain a token.
type AuthConfig struct {
	APIKey   string `yaml:"api_key" toml:"api_key"`
	Token    string `yaml:"token" toml:"token"`
	Username string `yaml:"username" toml:"username"`
	Password string `yaml:"password" toml:"password"`
}

// IdentityConfig is the agent and user calls act for by default
type IdentityConfig struct {
	AgentID string `yaml:"agent_id" toml:"agent_id"`
	UserID  string `yaml:"user_id" toml:"user_id"`
}

// TimeoutsConfig bounds HTTP calls and the websocket handshake. Chat reads
// are never bounded.
type TimeoutsConfig struct {
	HTTP      time.Duration `yaml:"-" toml:"-"`
	Handshake time.Duration `yaml:"-" toml:"-"`

	// Raw string values for unmarshaling
	HTTPRaw      string `yaml:"http" toml:"http"`
	HandshakeRaw string `yaml:"handshake" toml:"handshake"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Default returns the configuration of a local, unsecured instance.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "localhost",
			Port: DefaultPort,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a configuration file from the given path and returns a parsed Config.
// Files ending in .toml are parsed as TOML, anything else as YAML.
// Environment variables in the format ${VAR_NAME} are expanded, then the
// CHESHIRE_* overrides from ApplyEnv are applied.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := expandEnvVars(string(data))

	cfg := Default()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(expanded, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return finish(cfg)
}

// FromEnv builds a configuration from defaults and CHESHIRE_* variables only.
func FromEnv() (*Config, error) {
	return finish(Default())
}

func finish(cfg *Config) (*Config, error) {
	if err := cfg.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("applying environment: %w", err)
	}

	if err := parseDurations(cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from CHESHIRE_HOST, CHESHIRE_PORT,
// CHESHIRE_SECURE, CHESHIRE_API_KEY, CHESHIRE_TOKEN, CHESHIRE_AGENT_ID,
// CHESHIRE_USER_ID and CHESHIRE_LOG_LEVEL when they are set.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv("CHESHIRE_HOST"); ok {
		c.Server.Host = v
	}
	if v, ok := os.LookupEnv("CHESHIRE_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CHESHIRE_PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v, ok := os.LookupEnv("CHESHIRE_SECURE"); ok {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CHESHIRE_SECURE %q: %w", v, err)
		}
		c.Server.Secure = secure
	}
	if v, ok := os.LookupEnv("CHESHIRE_API_KEY"); ok {
		c.Auth.APIKey = v
	}
	if v, ok := os.LookupEnv("CHESHIRE_TOKEN"); ok {
		c.Auth.Token = v
	}
	if v, ok := os.LookupEnv("CHESHIRE_AGENT_ID"); ok {
		c.Identity.AgentID = v
	}
	if v, ok := os.LookupEnv("CHESHIRE_USER_ID"); ok {
		c.Identity.UserID = v
	}
	if v, ok := os.LookupEnv("CHESHIRE_LOG_LEVEL"); ok {
		c.Logging.Level = v
	}
	return nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return errors.New("server.host is required")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	// Credentials may be absent here: login obtains a token at runtime, and
	// the client reports a missing credential before any request.
	if (c.Auth.Username == "") != (c.Auth.Password == "") {
		return errors.New("auth.username and auth.password must be set together")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format %q is not text or json", c.Logging.Format)
	}

	return nil
}

// parseDurations converts the raw duration strings into time.Duration values
func parseDurations(cfg *Config) error {
	var err error

	if cfg.Timeouts.HTTPRaw != "" {
		cfg.Timeouts.HTTP, err = time.ParseDuration(cfg.Timeouts.HTTPRaw)
		if err != nil {
			return fmt.Errorf("parsing timeouts.http %q: %w", cfg.Timeouts.HTTPRaw, err)
		}
	}

	if cfg.Timeouts.HandshakeRaw != "" {
		cfg.Timeouts.Handshake, err = time.ParseDuration(cfg.Timeouts.HandshakeRaw)
		if err != nil {
			return fmt.Errorf("parsing timeouts.handshake %q: %w", cfg.Timeouts.HandshakeRaw, err)
		}
	}

	return nil
}

// DefaultIdentity returns the configured agent and user.
func (c *Config) DefaultIdentity() transport.Identity {
	return transport.Identity{AgentID: c.Identity.AgentID, UserID: c.Identity.UserID}
}

// ClientOptions converts the configuration into options for cheshire.NewClient.
func (c *Config) ClientOptions(logger *slog.Logger) cheshire.Options {
	opts := cheshire.Options{
		Host:             c.Server.Host,
		Port:             c.Server.Port,
		Secure:           c.Server.Secure,
		APIKey:           c.Auth.APIKey,
		Token:            c.Auth.Token,
		HandshakeTimeout: c.Timeouts.Handshake,
		Logger:           logger,
	}
	if c.Timeouts.HTTP > 0 {
		opts.HTTPClient = &http.Client{Timeout: c.Timeouts.HTTP}
	}
	return opts
}
