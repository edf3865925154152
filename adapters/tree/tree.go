// Package tree materializes generated artifacts onto the filesystem and
// verifies the result against the structure the specification promises.
package tree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cortexscaffold/cortexscaffold/domain/artifact"
	"github.com/cortexscaffold/cortexscaffold/domain/project"
	"github.com/cortexscaffold/cortexscaffold/ports"
)

// ErrTargetExists is returned when the project directory already exists
// at the target location. Generation is create-only: the builder never
// merges into or overwrites an existing tree.
var ErrTargetExists = errors.New("target directory already exists")

// Builder writes artifact lists beneath a base directory.
type Builder struct{}

// NewBuilder creates a filesystem tree builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build creates base/<kebabName> and materializes every artifact under
// it. The precondition check and the directory pass both run before any
// file write, so a file artifact can rely on its parent existing; a
// missing parent at write time is a fatal build error, not something to
// repair mid-run. There is no rollback: a failed build leaves the
// partial tree for manual removal.
func (b *Builder) Build(base string, spec project.Spec, artifacts []artifact.Artifact) error {
	root := filepath.Join(base, spec.KebabName)

	if _, err := os.Stat(root); err == nil {
		return fmt.Errorf("%w: %s", ErrTargetExists, root)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat target: %w", err)
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("create project root: %w", err)
	}

	// Directory pass first: every marker, parents before children.
	for _, a := range artifacts {
		if a.Kind != artifact.KindDir {
			continue
		}
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(a.RelativePath)), 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", a.RelativePath, err)
		}
	}

	for _, a := range artifacts {
		if a.Kind == artifact.KindDir {
			continue
		}
		if err := writeArtifact(filepath.Join(root, filepath.FromSlash(a.RelativePath)), a.Payload); err != nil {
			return fmt.Errorf("write %s: %w", a.RelativePath, err)
		}
	}

	return nil
}

// writeArtifact creates the destination file, writes the payload, and
// releases the handle on every exit path. Close errors surface when the
// write itself succeeded, so a full disk on flush is not silent.
func writeArtifact(path string, payload []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = f.Write(payload)
	return err
}

// Ensure interface compliance.
var _ ports.TreeBuilder = (*Builder)(nil)
