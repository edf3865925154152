// Package venv provisions Python virtual environments inside generated
// projects.
package venv

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cortexscaffold/cortexscaffold/ports"
)

// Dir is the virtual environment directory created inside the project.
const Dir = ".venv"

// Python implements ports.Provisioner by running the interpreter's
// venv module.
type Python struct {
	interpreter string
}

// NewPython creates a new Python provisioner. An empty interpreter
// means "python3" from PATH.
func NewPython(interpreter string) *Python {
	if interpreter == "" {
		interpreter = "python3"
	}
	return &Python{interpreter: interpreter}
}

// Provision creates projectDir/.venv.
func (p *Python) Provision(ctx context.Context, projectDir string) error {
	target := filepath.Join(projectDir, Dir)

	cmd := exec.CommandContext(ctx, p.interpreter, "-m", "venv", target)
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("create virtualenv: %w: %s", err, msg)
		}
		return fmt.Errorf("create virtualenv: %w", err)
	}
	return nil
}

// Ensure interface compliance.
var _ ports.Provisioner = (*Python)(nil)
