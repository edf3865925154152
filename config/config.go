// Package config provides configuration loading and validation.
//
// The scaffolder runs fine with no config file at all: every section has
// working defaults, and the two secrets (extraction API key, repository
// host token) can come straight from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Extract  ExtractConfig  `yaml:"extract"`
	RepoHost RepoHostConfig `yaml:"repohost"`
	VCS      VCSConfig      `yaml:"vcs"`
	Python   PythonConfig   `yaml:"python"`
	Ledger   LedgerConfig   `yaml:"ledger"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DefaultsConfig seeds the interactive prompts of the new-project wizard.
type DefaultsConfig struct {
	Name        string   `yaml:"name"`
	Modules     []string `yaml:"modules"`
	Description string   `yaml:"description"`
	Author      string   `yaml:"author"`
}

// ExtractConfig configures free-text project extraction.
// Use "openai" for any OpenAI-compatible chat completions endpoint,
// or "none" to disable extraction.
type ExtractConfig struct {
	Provider string        `yaml:"provider"` // "openai" or "none"
	Model    string        `yaml:"model"`
	APIKey   string        `yaml:"api_key,omitempty"`
	BaseURL  string        `yaml:"base_url,omitempty"`
	Timeout  time.Duration `yaml:"timeout,omitempty"`
}

// RepoHostConfig configures remote repository creation.
// Use "github" or "none".
type RepoHostConfig struct {
	Provider string        `yaml:"provider"` // "github" or "none"
	Token    string        `yaml:"token,omitempty"`
	APIURL   string        `yaml:"api_url,omitempty"`
	Timeout  time.Duration `yaml:"timeout,omitempty"`
}

// VCSConfig configures local version-control initialization.
type VCSConfig struct {
	Enabled       bool   `yaml:"enabled"`
	Binary        string `yaml:"binary"`
	CommitMessage string `yaml:"commit_message"`
}

// PythonConfig configures environment provisioning for generated projects.
type PythonConfig struct {
	Venv        bool   `yaml:"venv"`
	Interpreter string `yaml:"interpreter"`
}

// LedgerConfig configures the local run-history database.
type LedgerConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path,omitempty"` // empty means ~/.cortexscaffold/history.db
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "console"
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	data = []byte(os.ExpandEnv(string(data)))

	cfg := baseConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	setDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// LoadFromEnv creates configuration entirely from environment variables
// and built-in defaults. This is the path taken when no config file
// exists.
//
// Environment variables:
//
//	CORTEX_DEFAULT_AUTHOR     - License holder for generated projects
//	CORTEX_EXTRACT_PROVIDER   - Extraction provider: openai or none
//	CORTEX_EXTRACT_MODEL      - Chat model (default: gpt-3.5-turbo)
//	CORTEX_EXTRACT_BASE_URL   - OpenAI-compatible API base URL
//	OPENAI_API_KEY            - Extraction API key
//	CORTEX_REPOHOST_PROVIDER  - Repository host: github or none
//	CORTEX_REPOHOST_API_URL   - Repository host API base URL
//	GITHUB_TOKEN              - Repository host token
//	CORTEX_VCS_ENABLED        - Initialize git repositories (default: true)
//	CORTEX_VCS_BINARY         - git binary name or path (default: git)
//	CORTEX_PYTHON_VENV        - Create virtual environments (default: true)
//	CORTEX_PYTHON_INTERPRETER - Interpreter used for venv creation (default: python3)
//	CORTEX_LEDGER_ENABLED     - Record runs in the history ledger (default: true)
//	CORTEX_LEDGER_PATH        - Ledger database path
//	CORTEX_LOG_LEVEL          - Log level: debug, info, warn, error (default: info)
//	CORTEX_LOG_FORMAT         - Log format: console or json (default: console)
func LoadFromEnv() (*Config, error) {
	cfg := baseConfig()

	applyEnvOverrides(cfg)
	setDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// LoadWithFallback tries to load from file, falls back to environment
// variables and built-in defaults when the file does not exist.
func LoadWithFallback(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return LoadFromEnv()
}

// baseConfig returns a Config with the enabled-by-default booleans set.
// YAML cannot distinguish an absent bool from false, so features that
// default to on start as true and a config file turns them off
// explicitly.
func baseConfig() *Config {
	return &Config{
		VCS:    VCSConfig{Enabled: true},
		Python: PythonConfig{Venv: true},
		Ledger: LedgerConfig{Enabled: true},
	}
}

// applyEnvOverrides applies CORTEX_* environment variables to the config.
// Environment variables always override file-based configuration. The
// two conventional secrets (OPENAI_API_KEY, GITHUB_TOKEN) fill their
// fields only when the file left them empty.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CORTEX_DEFAULT_AUTHOR"); v != "" {
		cfg.Defaults.Author = v
	}

	// Extraction configuration
	if v := os.Getenv("CORTEX_EXTRACT_PROVIDER"); v != "" {
		cfg.Extract.Provider = v
	}
	if v := os.Getenv("CORTEX_EXTRACT_MODEL"); v != "" {
		cfg.Extract.Model = v
	}
	if v := os.Getenv("CORTEX_EXTRACT_BASE_URL"); v != "" {
		cfg.Extract.BaseURL = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" && cfg.Extract.APIKey == "" {
		cfg.Extract.APIKey = v
	}
	if v := os.Getenv("CORTEX_EXTRACT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Extract.Timeout = d
		}
	}

	// Repository host configuration
	if v := os.Getenv("CORTEX_REPOHOST_PROVIDER"); v != "" {
		cfg.RepoHost.Provider = v
	}
	if v := os.Getenv("CORTEX_REPOHOST_API_URL"); v != "" {
		cfg.RepoHost.APIURL = v
	}
	if v := os.Getenv("GITHUB_TOKEN"); v != "" && cfg.RepoHost.Token == "" {
		cfg.RepoHost.Token = v
	}
	if v := os.Getenv("CORTEX_REPOHOST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RepoHost.Timeout = d
		}
	}

	// Version control configuration
	if v := os.Getenv("CORTEX_VCS_ENABLED"); v != "" {
		cfg.VCS.Enabled = parseBool(v)
	}
	if v := os.Getenv("CORTEX_VCS_BINARY"); v != "" {
		cfg.VCS.Binary = v
	}

	// Python environment configuration
	if v := os.Getenv("CORTEX_PYTHON_VENV"); v != "" {
		cfg.Python.Venv = parseBool(v)
	}
	if v := os.Getenv("CORTEX_PYTHON_INTERPRETER"); v != "" {
		cfg.Python.Interpreter = v
	}

	// Ledger configuration
	if v := os.Getenv("CORTEX_LEDGER_ENABLED"); v != "" {
		cfg.Ledger.Enabled = parseBool(v)
	}
	if v := os.Getenv("CORTEX_LEDGER_PATH"); v != "" {
		cfg.Ledger.Path = v
	}

	// Logging configuration
	if v := os.Getenv("CORTEX_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("CORTEX_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

// parseBool parses a boolean from common string values.
func parseBool(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "true" || v == "1" || v == "yes" || v == "on"
}

func setDefaults(cfg *Config) {
	if cfg.Defaults.Name == "" {
		cfg.Defaults.Name = "my_fastapi_project"
	}
	if len(cfg.Defaults.Modules) == 0 {
		cfg.Defaults.Modules = []string{"users", "auth"}
	}
	if cfg.Defaults.Description == "" {
		cfg.Defaults.Description = "A micromodular project powered by CortexScaffold and FastAPI"
	}
	if cfg.Defaults.Author == "" {
		cfg.Defaults.Author = "Your Name"
	}

	if cfg.Extract.Provider == "" {
		cfg.Extract.Provider = "openai"
	}
	if cfg.Extract.Model == "" {
		cfg.Extract.Model = "gpt-3.5-turbo"
	}
	if cfg.Extract.BaseURL == "" {
		cfg.Extract.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Extract.Timeout == 0 {
		cfg.Extract.Timeout = 60 * time.Second
	}

	if cfg.RepoHost.Provider == "" {
		cfg.RepoHost.Provider = "github"
	}
	if cfg.RepoHost.APIURL == "" {
		cfg.RepoHost.APIURL = "https://api.github.com"
	}
	if cfg.RepoHost.Timeout == 0 {
		cfg.RepoHost.Timeout = 15 * time.Second
	}

	if cfg.VCS.Binary == "" {
		cfg.VCS.Binary = "git"
	}
	if cfg.VCS.CommitMessage == "" {
		cfg.VCS.CommitMessage = "Initial commit"
	}

	if cfg.Python.Interpreter == "" {
		cfg.Python.Interpreter = "python3"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
}

func validate(cfg *Config) error {
	validExtract := map[string]bool{"openai": true, "none": true}
	if !validExtract[cfg.Extract.Provider] {
		return fmt.Errorf("extract.provider must be 'openai' or 'none', got %q", cfg.Extract.Provider)
	}

	validHosts := map[string]bool{"github": true, "none": true}
	if !validHosts[cfg.RepoHost.Provider] {
		return fmt.Errorf("repohost.provider must be 'github' or 'none', got %q", cfg.RepoHost.Provider)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("logging.format must be 'json' or 'console', got %q", cfg.Logging.Format)
	}

	return nil
}
