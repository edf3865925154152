package extract

import (
	"context"
	"errors"

	"github.com/cortexscaffold/cortexscaffold/domain/project"
	"github.com/cortexscaffold/cortexscaffold/ports"
)

// ErrDisabled is returned when extraction is requested but disabled.
var ErrDisabled = errors.New("extract: extraction is disabled")

// Noop is a no-op extractor for when extraction is disabled.
type Noop struct{}

// NewNoop creates a new no-op extractor.
func NewNoop() *Noop {
	return &Noop{}
}

// Extract reports that extraction is disabled.
func (n *Noop) Extract(ctx context.Context, ideas string) (ports.Extraction, error) {
	return ports.Extraction{}, ErrDisabled
}

// EnhanceReadme reports that extraction is disabled.
func (n *Noop) EnhanceReadme(ctx context.Context, readme, ideas string, spec project.Spec) (string, error) {
	return "", ErrDisabled
}

// Ensure interface compliance.
var _ ports.Extractor = (*Noop)(nil)
