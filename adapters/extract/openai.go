// Package extract derives structured project information from free-text
// ideas documents.
package extract

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

	"github.com/cortexscaffold/cortexscaffold/domain/project"
	"github.com/cortexscaffold/cortexscaffold/ports"
)

// ErrNoAPIKey is returned when extraction is attempted without an API key.
var ErrNoAPIKey = errors.New("extract: api key not configured")

// OpenAI implements ports.Extractor against any OpenAI-compatible chat
// completions endpoint.
type OpenAI struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// OpenAIConfig holds configuration for the OpenAI extractor.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// NewOpenAI creates a new OpenAI extractor. The API key is checked
// lazily so the adapter can be wired even when extraction is never
// requested.
func NewOpenAI(cfg OpenAIConfig) *OpenAI {
	model := cfg.Model
	if model == "" {
		model = "gpt-3.5-turbo"
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	return &OpenAI{
		apiKey:     cfg.APIKey,
		model:      model,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Extract analyzes the ideas text and proposes a project name, module
// list, and description. Candidates are returned as-is; the caller
// validates them like any user input.
func (o *OpenAI) Extract(ctx context.Context, ideas string) (ports.Extraction, error) {
	prompt := fmt.Sprintf(`Analyze the following project ideas and extract:
1. A suitable project name (kebab-case, concise, descriptive)
2. A comma-separated list of module names (snake_case, 3-8 modules for FastAPI routers)
3. A short project description (one sentence, professional)

Ideas:
%s

Guidelines:
- Project name: kebab-case, 2-4 words, descriptive of the main purpose
- Modules: Focus on functional areas (auth, users, database, notifications, etc.), snake_case, 3-8 modules
  IMPORTANT: Do NOT include "api" as a module - the API lives at the root level (main.py) and is not a module
- Description: One clear sentence explaining what the project does

Return your response in this exact JSON format:
{
  "project_name": "example-project-name",
  "modules": "module1,module2,module3",
  "description": "A concise description of what this project does"
}`, ideas)

	content, err := o.complete(ctx, chatRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a helpful assistant that extracts project information from requirements. Always return valid JSON."},
			{Role: "user", Content: prompt},
		},
		MaxTokens:      300,
		Temperature:    0.3,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return ports.Extraction{}, err
	}

	var result struct {
		ProjectName string `json:"project_name"`
		Modules     string `json:"modules"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return ports.Extraction{}, fmt.Errorf("extract: parse response: %w", err)
	}

	var modules []string
	for _, m := range strings.Split(result.Modules, ",") {
		if m = strings.TrimSpace(m); m != "" {
			modules = append(modules, m)
		}
	}

	return ports.Extraction{
		Name:        strings.TrimSpace(result.ProjectName),
		Modules:     modules,
		Description: strings.TrimSpace(result.Description),
	}, nil
}

// EnhanceReadme rewrites the deterministic README to incorporate the
// ideas text while keeping its structure.
func (o *OpenAI) EnhanceReadme(ctx context.Context, readme, ideas string, spec project.Spec) (string, error) {
	prompt := fmt.Sprintf(`You are a technical writer enhancing a README.md file for a Python FastAPI project.

Project Information:
- Project Name: %s
- Description: %s
- Modules: %s

Current README structure:
%s

User's additional ideas and requirements:
%s

Please enhance the README by:
1. Incorporating the user's ideas and requirements into the existing structure
2. Maintaining the professional format and structure
3. Adding any relevant sections that would be helpful based on the user's input
4. Ensuring all sections remain practical and actionable
5. Keeping the README comprehensive but not overwhelming

Return the complete enhanced README.md content, maintaining markdown formatting.`,
		spec.RawName, spec.Description, strings.Join(spec.ModuleNames(), ", "), readme, ideas)

	content, err := o.complete(ctx, chatRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a helpful technical writer who enhances README files by incorporating user requirements while maintaining professional standards."},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   2000,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	// Keep a markdown title even when the model drops it.
	if !strings.HasPrefix(content, "# ") {
		content = "# " + spec.RawName + "\n\n" + content
	}

	return content, nil
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// complete sends one chat completion request and returns the trimmed
// content of the first choice.
func (o *OpenAI) complete(ctx context.Context, payload chatRequest) (string, error) {
	if o.apiKey == "" {
		return "", ErrNoAPIKey
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("extract: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", o.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("extract: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("extract: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("extract: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("extract: completion failed with status %d: %s", resp.StatusCode, string(data))
	}

	var out chatResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("extract: parse response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("extract: empty completion response")
	}

	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

// Ensure interface compliance.
var _ ports.Extractor = (*OpenAI)(nil)
