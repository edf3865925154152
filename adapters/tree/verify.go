package tree

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cortexscaffold/cortexscaffold/domain/layout"
	"github.com/cortexscaffold/cortexscaffold/domain/project"
	"github.com/cortexscaffold/cortexscaffold/ports"
)

// Verifier diffs a materialized tree against the expected structure.
type Verifier struct{}

// NewVerifier creates a filesystem tree verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Verify recomputes the expected structure for spec from the shared
// layout derivation and checks the tree rooted at root against it.
// Every missing directory and file is reported, not just the first;
// the result is diagnostic and the tree is never modified.
func (v *Verifier) Verify(root string, spec project.Spec) project.ValidationResult {
	lay := layout.Derive(spec)

	var errs []string

	for _, dir := range lay.Dirs {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(dir)))
		if err != nil || !info.IsDir() {
			errs = append(errs, fmt.Sprintf("missing directory: %s", dir))
		}
	}

	for _, file := range lay.Files {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(file)))
		if err != nil || info.IsDir() {
			errs = append(errs, fmt.Sprintf("missing: %s", file))
		}
	}

	if len(errs) > 0 {
		return project.ValidationResult{OK: false, Errors: errs}
	}
	return project.ValidationResult{OK: true}
}

// Ensure interface compliance.
var _ ports.TreeVerifier = (*Verifier)(nil)
