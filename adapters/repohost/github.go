// Package repohost creates remote repositories for generated projects.
package repohost

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cortexscaffold/cortexscaffold/ports"
)

// ErrNoToken is returned when repository creation is attempted without
// an access token.
var ErrNoToken = errors.New("repohost: token not configured")

// GitHub implements ports.RepoHost against the GitHub REST API.
type GitHub struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// GitHubConfig holds configuration for the GitHub repository host.
type GitHubConfig struct {
	Token   string
	APIURL  string
	Timeout time.Duration
}

// NewGitHub creates a new GitHub repository host. The token is checked
// lazily so the adapter can be wired even when no repository is ever
// requested.
func NewGitHub(cfg GitHubConfig) *GitHub {
	apiURL := strings.TrimRight(cfg.APIURL, "/")
	if apiURL == "" {
		apiURL = "https://api.github.com"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &GitHub{
		token:      cfg.Token,
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CreateRepo creates the repository under the authenticated user and
// returns its clone URL. The repository is created empty; the local
// tree is pushed by the caller.
func (g *GitHub) CreateRepo(ctx context.Context, req ports.RepoRequest) (string, error) {
	if g.token == "" {
		return "", ErrNoToken
	}

	payload, err := json.Marshal(map[string]any{
		"name":        req.Name,
		"description": req.Description,
		"private":     req.Private,
		"auto_init":   false,
	})
	if err != nil {
		return "", fmt.Errorf("repohost: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", g.apiURL+"/user/repos", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("repohost: create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "token "+g.token)
	httpReq.Header.Set("Accept", "application/vnd.github.v3+json")
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("repohost: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("repohost: read response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("repohost: repository creation failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		CloneURL string `json:"clone_url"`
		SSHURL   string `json:"ssh_url"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("repohost: parse response: %w", err)
	}

	url := result.CloneURL
	if url == "" {
		url = result.SSHURL
	}
	if url == "" {
		return "", fmt.Errorf("repohost: response carries no clone url")
	}

	return url, nil
}

// Ensure interface compliance.
var _ ports.RepoHost = (*GitHub)(nil)
