package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nguoividai/mcp-server/internal/logging"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const APP_NAME = "mcp-server" // application name used for config directory

// Defaults for the context selection policy surfaced to MCP callers.
const (
	DefaultMaxFiles    = 10
	DefaultMaxDepth    = 3
	DefaultMaxFileSize = 100 * 1024 // per-file read cap in bytes
)

// Config holds user configuration for the MCP server.
type Config struct {
	// ProjectRoot is the directory served as project context.
	// Empty means the process working directory.
	ProjectRoot string `yaml:"project_root"`

	// Default selection policy applied when a tool call omits the field.
	MaxFiles        int      `yaml:"max_files"`
	MaxDepth        int      `yaml:"max_depth"`
	IncludePatterns []string `yaml:"include_patterns"`
	ExcludePatterns []string `yaml:"exclude_patterns"`

	// MaxFileSize caps individual file reads for the reader tools, in bytes.
	MaxFileSize int64 `yaml:"max_file_size"`

	// SwaggerPath points at a local OpenAPI document for the swagger tool.
	// Empty disables the tool.
	SwaggerPath string `yaml:"swagger_path"`

	Version  string `yaml:"version"`   // Track config version
	InitTime int64  `yaml:"init_time"` // Unix timestamp of first save
}

// ConfigPath returns the standard config file path for the current platform
func ConfigPath() (string, error) {
	configDir := filepath.Join(xdg.ConfigHome, APP_NAME)
	configPath := filepath.Join(configDir, "config.yaml")

	logging.Debug("Determined config path", "path", configPath)
	return configPath, nil
}

// Load loads the config from the standard location.
// If no config file exists, defaults are returned: the server must come up
// cleanly when launched by an MCP client that never ran a setup step.
func Load() (*Config, error) {
	configPath, exists := FindConfigFile()
	logging.Debug("Loading config from", "path", configPath)
	if !exists {
		cfg := DefaultConfig()
		return &cfg, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads config from a specific path
func LoadFrom(path string) (*Config, error) {
	logging.Debug("Reading config file", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// FindConfigFile returns the path to an existing config file, and whether it exists.
func FindConfigFile() (string, bool) {
	primary, err := ConfigPath()
	if err != nil {
		logging.Error("Failed to get config path", "error", err)
		return "", false
	}

	if _, err := os.Stat(primary); err == nil {
		logging.Debug("Config found at primary path", "path", primary)
		return primary, true
	}

	// Return primary path for new config
	return primary, false
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ProjectRoot: "",
		MaxFiles:    DefaultMaxFiles,
		MaxDepth:    DefaultMaxDepth,
		MaxFileSize: DefaultMaxFileSize,
		Version:     "1.0",
		InitTime:    0, // Will be set during first save
	}
}

// applyDefaults fills zero values left out of a partial config file.
// Explicit zero limits are indistinguishable from omitted fields in YAML;
// a caller that wants "select nothing" passes the limit per tool call instead.
func (c *Config) applyDefaults() {
	if c.MaxFiles <= 0 {
		c.MaxFiles = DefaultMaxFiles
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = DefaultMaxFileSize
	}
	if c.Version == "" {
		c.Version = "1.0"
	}
}

// ResolveProjectRoot returns the configured project root, falling back to the
// process working directory.
func (c *Config) ResolveProjectRoot() (string, error) {
	if c.ProjectRoot != "" {
		return c.ProjectRoot, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	return cwd, nil
}

// Save writes the config to the standard location
func (c *Config) Save() error {
	configPath, _ := FindConfigFile()
	return c.SaveTo(configPath)
}

// SaveTo writes the config to a specific path
func (c *Config) SaveTo(path string) error {
	// Set init time if this is the first save
	if c.InitTime == 0 {
		c.InitTime = time.Now().Unix()
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file with restrictive permissions (600)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	defer enc.Close()

	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
