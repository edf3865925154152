package repohost

import (
	"context"
	"errors"

	"github.com/cortexscaffold/cortexscaffold/ports"
)

// ErrDisabled is returned when repository creation is requested but
// disabled.
var ErrDisabled = errors.New("repohost: repository creation is disabled")

// Noop is a no-op repository host for when remote creation is disabled.
type Noop struct{}

// NewNoop creates a new no-op repository host.
func NewNoop() *Noop {
	return &Noop{}
}

// CreateRepo reports that repository creation is disabled.
func (n *Noop) CreateRepo(ctx context.Context, req ports.RepoRequest) (string, error) {
	return "", ErrDisabled
}

// Ensure interface compliance.
var _ ports.RepoHost = (*Noop)(nil)
