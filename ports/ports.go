// Package ports defines interfaces (contracts) between layers.
// These interfaces enable dependency injection and testability.
// Implementations live in adapters/.
package ports

import (
	"context"
	"time"

	"github.com/cortexscaffold/cortexscaffold/domain/artifact"
	"github.com/cortexscaffold/cortexscaffold/domain/project"
)

// -----------------------------------------------------------------------------
// Infrastructure Ports
// -----------------------------------------------------------------------------

// Clock abstracts time for testability. The generation core never reads
// the clock; the orchestrator resolves the license year and ledger
// timestamps through this port so generated output stays deterministic.
type Clock interface {
	Now() time.Time
}

// IDGenerator generates unique identifiers for ledger rows and log
// correlation. Never used inside the deterministic generator.
type IDGenerator interface {
	New() string
}

// -----------------------------------------------------------------------------
// Tree Ports
// -----------------------------------------------------------------------------

// TreeBuilder materializes generated artifacts onto storage.
type TreeBuilder interface {
	// Build creates base/<kebabName> and writes every artifact beneath
	// it: directory markers first, then files. It fails before any
	// write when the target directory already exists (generation is
	// create-only) and makes no rollback guarantee on mid-build
	// failure.
	Build(base string, spec project.Spec, artifacts []artifact.Artifact) error
}

// TreeVerifier checks a materialized tree against the structure the
// specification promises.
type TreeVerifier interface {
	// Verify recomputes the expected file and directory set for spec
	// and reports every entry missing under root, the project
	// directory itself. Diagnostic only: it never mutates the tree.
	Verify(root string, spec project.Spec) project.ValidationResult
}

// -----------------------------------------------------------------------------
// Collaborator Service Ports
// -----------------------------------------------------------------------------
//
// Collaborators are optional: any failure from these ports is logged as
// a warning by the orchestrator and the run continues with defaults.
// None of them participate in the deterministic generation path.

// Extraction holds the candidates an Extractor derives from free text.
// Every field is subject to the same validation rules as user input
// before use.
type Extraction struct {
	Name        string
	Modules     []string
	Description string
}

// Extractor derives structured project information from a free-text
// ideas document, and optionally rewrites the generated README around
// the same text.
type Extractor interface {
	// Extract analyzes the ideas text and proposes a project name,
	// module list, and description.
	Extract(ctx context.Context, ideas string) (Extraction, error)

	// EnhanceReadme rewrites the deterministic README to incorporate
	// the ideas text. On error the caller keeps the original readme.
	EnhanceReadme(ctx context.Context, readme, ideas string, spec project.Spec) (string, error)
}

// RepoRequest describes a remote repository to create.
type RepoRequest struct {
	Name        string
	Description string
	Private     bool
}

// RepoHost creates remote repositories.
type RepoHost interface {
	// CreateRepo creates the repository and returns its clone URL.
	CreateRepo(ctx context.Context, req RepoRequest) (cloneURL string, err error)
}

// VCS initializes local version control for a generated project.
type VCS interface {
	// Init creates a repository in dir.
	Init(ctx context.Context, dir string) error

	// AddAll stages every file in dir.
	AddAll(ctx context.Context, dir string) error

	// Commit records the staged tree with the given message.
	Commit(ctx context.Context, dir, message string) error

	// AddRemote registers url under the given remote name.
	AddRemote(ctx context.Context, dir, name, url string) error
}

// Provisioner prepares a language environment inside a generated
// project (a virtualenv for the Python tree this tool emits).
type Provisioner interface {
	Provision(ctx context.Context, projectDir string) error
}

// -----------------------------------------------------------------------------
// Run Ledger Ports
// -----------------------------------------------------------------------------

// Run is one recorded scaffold run.
type Run struct {
	ID        string
	Name      string
	Slug      string
	Package   string
	Path      string
	Modules   []string
	Artifacts int
	Status    string // "ok" or "failed"
	Error     string
	Duration  time.Duration
	CreatedAt time.Time
}

// RunStore persists scaffold run history.
type RunStore interface {
	// Record stores one run.
	Record(ctx context.Context, run Run) error

	// Recent returns up to limit runs, newest first.
	Recent(ctx context.Context, limit int) ([]Run, error)
}
