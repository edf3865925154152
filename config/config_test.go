package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cortexscaffold/cortexscaffold/config"
)

func TestLoad_ValidConfig(t *testing.T) {
	content := `
defaults:
  name: "acme_api"
  modules: ["billing", "accounts"]
  description: "Internal service scaffold"
  author: "Acme Tools Team"

extract:
  provider: "openai"
  model: "gpt-4o-mini"
  api_key: "sk-test"
  base_url: "http://localhost:8081/v1"
  timeout: 20s

repohost:
  provider: "github"
  token: "ghp_test"
  api_url: "http://localhost:8082"
  timeout: 5s

vcs:
  enabled: true
  binary: "/usr/bin/git"
  commit_message: "chore: scaffold"

python:
  venv: true
  interpreter: "python3.12"

ledger:
  enabled: true
  path: "/tmp/cortex-history.db"

logging:
  level: "debug"
  format: "json"
`

	cfg := writeAndLoad(t, content)

	if cfg.Defaults.Name != "acme_api" {
		t.Errorf("Defaults.Name = %s, want acme_api", cfg.Defaults.Name)
	}
	if len(cfg.Defaults.Modules) != 2 || cfg.Defaults.Modules[0] != "billing" {
		t.Errorf("Defaults.Modules = %v, want [billing accounts]", cfg.Defaults.Modules)
	}
	if cfg.Defaults.Author != "Acme Tools Team" {
		t.Errorf("Defaults.Author = %s, want Acme Tools Team", cfg.Defaults.Author)
	}
	if cfg.Extract.Model != "gpt-4o-mini" {
		t.Errorf("Extract.Model = %s, want gpt-4o-mini", cfg.Extract.Model)
	}
	if cfg.Extract.Timeout != 20*time.Second {
		t.Errorf("Extract.Timeout = %v, want 20s", cfg.Extract.Timeout)
	}
	if cfg.RepoHost.APIURL != "http://localhost:8082" {
		t.Errorf("RepoHost.APIURL = %s, want http://localhost:8082", cfg.RepoHost.APIURL)
	}
	if cfg.RepoHost.Timeout != 5*time.Second {
		t.Errorf("RepoHost.Timeout = %v, want 5s", cfg.RepoHost.Timeout)
	}
	if cfg.VCS.Binary != "/usr/bin/git" {
		t.Errorf("VCS.Binary = %s, want /usr/bin/git", cfg.VCS.Binary)
	}
	if cfg.VCS.CommitMessage != "chore: scaffold" {
		t.Errorf("VCS.CommitMessage = %s, want chore: scaffold", cfg.VCS.CommitMessage)
	}
	if cfg.Python.Interpreter != "python3.12" {
		t.Errorf("Python.Interpreter = %s, want python3.12", cfg.Python.Interpreter)
	}
	if cfg.Ledger.Path != "/tmp/cortex-history.db" {
		t.Errorf("Ledger.Path = %s, want /tmp/cortex-history.db", cfg.Ledger.Path)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %s, want debug", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %s, want json", cfg.Logging.Format)
	}
}

func TestLoad_Defaults(t *testing.T) {
	content := `
logging:
  level: "info"
`

	cfg := writeAndLoad(t, content)

	if cfg.Defaults.Name != "my_fastapi_project" {
		t.Errorf("default Defaults.Name = %s, want my_fastapi_project", cfg.Defaults.Name)
	}
	if len(cfg.Defaults.Modules) != 2 || cfg.Defaults.Modules[0] != "users" || cfg.Defaults.Modules[1] != "auth" {
		t.Errorf("default Defaults.Modules = %v, want [users auth]", cfg.Defaults.Modules)
	}
	if !strings.Contains(cfg.Defaults.Description, "FastAPI") {
		t.Errorf("default Defaults.Description = %q, want FastAPI mention", cfg.Defaults.Description)
	}
	if cfg.Defaults.Author != "Your Name" {
		t.Errorf("default Defaults.Author = %s, want Your Name", cfg.Defaults.Author)
	}
	if cfg.Extract.Provider != "openai" {
		t.Errorf("default Extract.Provider = %s, want openai", cfg.Extract.Provider)
	}
	if cfg.Extract.Model != "gpt-3.5-turbo" {
		t.Errorf("default Extract.Model = %s, want gpt-3.5-turbo", cfg.Extract.Model)
	}
	if cfg.Extract.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("default Extract.BaseURL = %s, want https://api.openai.com/v1", cfg.Extract.BaseURL)
	}
	if cfg.Extract.Timeout != 60*time.Second {
		t.Errorf("default Extract.Timeout = %v, want 60s", cfg.Extract.Timeout)
	}
	if cfg.RepoHost.Provider != "github" {
		t.Errorf("default RepoHost.Provider = %s, want github", cfg.RepoHost.Provider)
	}
	if cfg.RepoHost.APIURL != "https://api.github.com" {
		t.Errorf("default RepoHost.APIURL = %s, want https://api.github.com", cfg.RepoHost.APIURL)
	}
	if !cfg.VCS.Enabled {
		t.Error("default VCS.Enabled = false, want true")
	}
	if cfg.VCS.Binary != "git" {
		t.Errorf("default VCS.Binary = %s, want git", cfg.VCS.Binary)
	}
	if cfg.VCS.CommitMessage != "Initial commit" {
		t.Errorf("default VCS.CommitMessage = %s, want Initial commit", cfg.VCS.CommitMessage)
	}
	if !cfg.Python.Venv {
		t.Error("default Python.Venv = false, want true")
	}
	if cfg.Python.Interpreter != "python3" {
		t.Errorf("default Python.Interpreter = %s, want python3", cfg.Python.Interpreter)
	}
	if !cfg.Ledger.Enabled {
		t.Error("default Ledger.Enabled = false, want true")
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("default Logging.Format = %s, want console", cfg.Logging.Format)
	}
}

func TestLoad_DisableFeatures(t *testing.T) {
	content := `
vcs:
  enabled: false

python:
  venv: false

ledger:
  enabled: false
`

	cfg := writeAndLoad(t, content)

	if cfg.VCS.Enabled {
		t.Error("VCS.Enabled = true, want false")
	}
	if cfg.Python.Venv {
		t.Error("Python.Venv = true, want false")
	}
	if cfg.Ledger.Enabled {
		t.Error("Ledger.Enabled = true, want false")
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	os.Setenv("TEST_EXTRACT_KEY", "sk-from-env")
	defer os.Unsetenv("TEST_EXTRACT_KEY")

	content := `
extract:
  api_key: "${TEST_EXTRACT_KEY}"
`

	cfg := writeAndLoad(t, content)

	if cfg.Extract.APIKey != "sk-from-env" {
		t.Errorf("Extract.APIKey = %s, want sk-from-env", cfg.Extract.APIKey)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	os.Setenv("CORTEX_LOG_LEVEL", "error")
	os.Setenv("CORTEX_VCS_ENABLED", "false")
	os.Setenv("CORTEX_EXTRACT_MODEL", "gpt-4")
	defer func() {
		os.Unsetenv("CORTEX_LOG_LEVEL")
		os.Unsetenv("CORTEX_VCS_ENABLED")
		os.Unsetenv("CORTEX_EXTRACT_MODEL")
	}()

	content := `
vcs:
  enabled: true

logging:
  level: "debug"
`

	cfg := writeAndLoad(t, content)

	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %s, want error (env override)", cfg.Logging.Level)
	}
	if cfg.VCS.Enabled {
		t.Error("VCS.Enabled = true, want false (env override)")
	}
	if cfg.Extract.Model != "gpt-4" {
		t.Errorf("Extract.Model = %s, want gpt-4 (env override)", cfg.Extract.Model)
	}
}

func TestLoad_SecretFallbacks(t *testing.T) {
	os.Setenv("OPENAI_API_KEY", "sk-ambient")
	os.Setenv("GITHUB_TOKEN", "ghp_ambient")
	defer func() {
		os.Unsetenv("OPENAI_API_KEY")
		os.Unsetenv("GITHUB_TOKEN")
	}()

	// File values win over the conventional secret variables.
	cfg := writeAndLoad(t, `
extract:
  api_key: "sk-file"
`)
	if cfg.Extract.APIKey != "sk-file" {
		t.Errorf("Extract.APIKey = %s, want sk-file (file wins)", cfg.Extract.APIKey)
	}
	if cfg.RepoHost.Token != "ghp_ambient" {
		t.Errorf("RepoHost.Token = %s, want ghp_ambient (env fills empty)", cfg.RepoHost.Token)
	}
}

func TestLoad_InvalidExtractProvider(t *testing.T) {
	content := `
extract:
  provider: "anthropic"
`

	_, err := writeAndLoadErr(t, content)
	if err == nil {
		t.Fatal("expected error for invalid extract.provider")
	}
	if !strings.Contains(err.Error(), "extract.provider") {
		t.Errorf("error = %v, want extract.provider mention", err)
	}
}

func TestLoad_InvalidRepoHostProvider(t *testing.T) {
	content := `
repohost:
  provider: "gitlab"
`

	_, err := writeAndLoadErr(t, content)
	if err == nil {
		t.Fatal("expected error for invalid repohost.provider")
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	content := `
logging:
  level: "verbose"
`

	_, err := writeAndLoadErr(t, content)
	if err == nil {
		t.Fatal("expected error for invalid logging.level")
	}
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	content := `
logging:
  format: "xml"
`

	_, err := writeAndLoadErr(t, content)
	if err == nil {
		t.Fatal("expected error for invalid logging.format")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := writeAndLoadErr(t, "defaults: [unclosed")
	if err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := config.Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("CORTEX_EXTRACT_PROVIDER", "none")
	os.Setenv("CORTEX_LEDGER_PATH", "/tmp/test-ledger.db")
	defer func() {
		os.Unsetenv("CORTEX_EXTRACT_PROVIDER")
		os.Unsetenv("CORTEX_LEDGER_PATH")
	}()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv error: %v", err)
	}

	if cfg.Extract.Provider != "none" {
		t.Errorf("Extract.Provider = %s, want none", cfg.Extract.Provider)
	}
	if cfg.Ledger.Path != "/tmp/test-ledger.db" {
		t.Errorf("Ledger.Path = %s, want /tmp/test-ledger.db", cfg.Ledger.Path)
	}
	if cfg.Defaults.Name != "my_fastapi_project" {
		t.Errorf("Defaults.Name = %s, want my_fastapi_project", cfg.Defaults.Name)
	}
}

func TestLoadWithFallback_MissingFile(t *testing.T) {
	cfg, err := config.LoadWithFallback(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadWithFallback error: %v", err)
	}
	if cfg.Defaults.Name != "my_fastapi_project" {
		t.Errorf("Defaults.Name = %s, want my_fastapi_project", cfg.Defaults.Name)
	}
}

func TestLoadWithFallback_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
defaults:
  name: "from_file"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadWithFallback(path)
	if err != nil {
		t.Fatalf("LoadWithFallback error: %v", err)
	}
	if cfg.Defaults.Name != "from_file" {
		t.Errorf("Defaults.Name = %s, want from_file", cfg.Defaults.Name)
	}
}

func writeAndLoad(t *testing.T, content string) *config.Config {
	t.Helper()
	cfg, err := writeAndLoadErr(t, content)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	return cfg
}

func writeAndLoadErr(t *testing.T, content string) (*config.Config, error) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return config.Load(path)
}
