// Package vcs initializes local version control for generated projects
// by shelling out to git.
package vcs

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/cortexscaffold/cortexscaffold/ports"
)

// Git implements ports.VCS using the git binary.
type Git struct {
	binary string
}

// NewGit creates a new git adapter. An empty binary means "git" from
// PATH.
func NewGit(binary string) *Git {
	if binary == "" {
		binary = "git"
	}
	return &Git{binary: binary}
}

// Init creates a repository in dir.
func (g *Git) Init(ctx context.Context, dir string) error {
	return g.run(ctx, dir, "init")
}

// AddAll stages every file in dir.
func (g *Git) AddAll(ctx context.Context, dir string) error {
	return g.run(ctx, dir, "add", ".")
}

// Commit records the staged tree with the given message.
func (g *Git) Commit(ctx context.Context, dir, message string) error {
	return g.run(ctx, dir, "commit", "-m", message)
}

// AddRemote registers url under the given remote name.
func (g *Git) AddRemote(ctx context.Context, dir, name, url string) error {
	return g.run(ctx, dir, "remote", "add", name, url)
}

// run executes one git subcommand inside dir. Command output is folded
// into the error so warnings surfaced to the user carry git's own
// explanation.
func (g *Git) run(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, g.binary, args...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("git %s: %w: %s", args[0], err, msg)
		}
		return fmt.Errorf("git %s: %w", args[0], err)
	}
	return nil
}

// Ensure interface compliance.
var _ ports.VCS = (*Git)(nil)
