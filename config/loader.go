package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is consulted when no -config flag is given.
const DefaultConfigPath = "configs/client.yaml"

// NodeConfig holds the middleware node settings
type NodeConfig struct {
	Name string `yaml:"name"`
}

// EndpointConfig names the logical endpoint and its fallback
type EndpointConfig struct {
	Name    string `yaml:"name"`
	Default string `yaml:"default"`
}

// RequestConfig holds the operands for the one request this client sends
type RequestConfig struct {
	A        int64 `yaml:"a"`
	B        int64 `yaml:"b"`
	Attempts int   `yaml:"attempts"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ClientConfig represents the full client configuration
type ClientConfig struct {
	Node                NodeConfig     `yaml:"node"`
	Endpoint            EndpointConfig `yaml:"endpoint"`
	Request             RequestConfig  `yaml:"request"`
	WaitIntervalSeconds int            `yaml:"wait_interval_seconds"`
	Log                 LogConfig      `yaml:"log"`
}

// DefaultConfig returns the built-in configuration used when no file or
// environment overrides are present.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		Node:     NodeConfig{Name: "minimal_client"},
		Endpoint: EndpointConfig{Name: "REQUESTER_ENDPOINT", Default: "add_two_ints"},
		Request:  RequestConfig{A: 41, B: 1, Attempts: 1},
		Log:      LogConfig{Level: "INFO", Format: "text"},

		WaitIntervalSeconds: 1,
	}
}

// Load builds the client configuration: defaults, then the YAML file (if
// present), then environment variable overrides. A missing file is not an
// error; an unreadable or unparsable one is.
func Load(configPath string) (*ClientConfig, error) {
	// Try to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	cfg := DefaultConfig()

	explicit := configPath != ""
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		// Replace ${VAR} references in the YAML before parsing
		configStr := expandEnvVars(string(data))
		if err := yaml.Unmarshal([]byte(configStr), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	case os.IsNotExist(err) && !explicit:
		// Fall through to defaults.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	applyEnvOverrides(cfg)
	normalize(cfg)

	return cfg, nil
}

func applyEnvOverrides(cfg *ClientConfig) {
	cfg.Node.Name = getEnv("NODE_NAME", cfg.Node.Name)
	cfg.Request.A = getEnvInt64("REQUEST_A", cfg.Request.A)
	cfg.Request.B = getEnvInt64("REQUEST_B", cfg.Request.B)
	cfg.Request.Attempts = getEnvInt("REQUEST_ATTEMPTS", cfg.Request.Attempts)
	cfg.WaitIntervalSeconds = getEnvInt("WAIT_INTERVAL_SECONDS", cfg.WaitIntervalSeconds)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("LOG_FORMAT", cfg.Log.Format)
}

func normalize(cfg *ClientConfig) {
	if cfg.Node.Name == "" {
		cfg.Node.Name = "minimal_client"
	}
	if cfg.Endpoint.Name == "" {
		cfg.Endpoint.Name = "REQUESTER_ENDPOINT"
	}
	if cfg.Endpoint.Default == "" {
		cfg.Endpoint.Default = "add_two_ints"
	}
	if cfg.Request.Attempts < 1 {
		cfg.Request.Attempts = 1
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "INFO"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.WaitIntervalSeconds < 1 {
		cfg.WaitIntervalSeconds = 1
	}
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var intVal int
		if _, err := fmt.Sscanf(value, "%d", &intVal); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		var intVal int64
		if _, err := fmt.Sscanf(value, "%d", &intVal); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func expandEnvVars(s string) string {
	// Replace ${VAR_NAME} with environment variable values
	return os.Expand(s, func(key string) string {
		return os.Getenv(key)
	})
}
