package extract

import (
	"fmt"

	"github.com/cortexscaffold/cortexscaffold/config"
	"github.com/cortexscaffold/cortexscaffold/ports"
)

// New creates an extractor based on configuration.
func New(cfg config.ExtractConfig) (ports.Extractor, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAI(OpenAIConfig{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		}), nil

	case "none", "":
		return NewNoop(), nil

	default:
		return nil, fmt.Errorf("unknown extract provider: %s", cfg.Provider)
	}
}
