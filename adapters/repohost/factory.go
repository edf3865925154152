package repohost

import (
	"fmt"

	"github.com/cortexscaffold/cortexscaffold/config"
	"github.com/cortexscaffold/cortexscaffold/ports"
)

// New creates a repository host based on configuration.
func New(cfg config.RepoHostConfig) (ports.RepoHost, error) {
	switch cfg.Provider {
	case "github":
		return NewGitHub(GitHubConfig{
			Token:   cfg.Token,
			APIURL:  cfg.APIURL,
			Timeout: cfg.Timeout,
		}), nil

	case "none", "":
		return NewNoop(), nil

	default:
		return nil, fmt.Errorf("unknown repohost provider: %s", cfg.Provider)
	}
}
