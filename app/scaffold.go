// Package app provides application services that orchestrate domain logic.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cortexscaffold/cortexscaffold/domain/artifact"
	"github.com/cortexscaffold/cortexscaffold/domain/project"
	"github.com/cortexscaffold/cortexscaffold/ports"
	"github.com/rs/zerolog"
)

// ValidationError carries every input problem found in one validation
// pass, so the user can fix the whole request at once.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return e.Issues[0]
	}
	return fmt.Sprintf("%d validation errors: %s", len(e.Issues), strings.Join(e.Issues, "; "))
}

// Request describes one scaffold run.
type Request struct {
	Name        string
	Description string
	Modules     []string
	Author      string
	BaseDir     string // parent of the generated project; empty means "."
	Ideas       string // free-text ideas document; empty means no readme enhancement
	Options     project.Options
}

// Result summarizes a finished run. Warnings carry every collaborator
// failure; they never abort the run.
type Result struct {
	Spec      project.Spec
	Path      string // absolute project directory
	Artifacts int
	Structure project.ValidationResult
	CloneURL  string
	Warnings  []string
	Duration  time.Duration
	RunID     string
}

// ScaffoldService orchestrates validation, generation, tree building,
// and the optional collaborator services around one scaffold run.
type ScaffoldService struct {
	builder   ports.TreeBuilder
	verifier  ports.TreeVerifier
	extractor ports.Extractor
	repoHost  ports.RepoHost
	vcs       ports.VCS
	venv      ports.Provisioner
	runs      ports.RunStore
	clock     ports.Clock
	idGen     ports.IDGenerator
	logger    zerolog.Logger

	commitMessage string
}

// ScaffoldDeps contains dependencies for ScaffoldService. Builder,
// Verifier, Clock, and IDGen are required; the collaborator ports may
// be nil, which turns the matching step into a warning.
type ScaffoldDeps struct {
	Builder   ports.TreeBuilder
	Verifier  ports.TreeVerifier
	Extractor ports.Extractor
	RepoHost  ports.RepoHost
	VCS       ports.VCS
	Venv      ports.Provisioner
	Runs      ports.RunStore
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    zerolog.Logger
}

// ScaffoldConfig contains configuration for ScaffoldService.
type ScaffoldConfig struct {
	CommitMessage string
}

// NewScaffoldService creates a new scaffold service.
func NewScaffoldService(deps ScaffoldDeps, cfg ScaffoldConfig) *ScaffoldService {
	commitMessage := cfg.CommitMessage
	if commitMessage == "" {
		commitMessage = "Initial commit"
	}

	return &ScaffoldService{
		builder:       deps.Builder,
		verifier:      deps.Verifier,
		extractor:     deps.Extractor,
		repoHost:      deps.RepoHost,
		vcs:           deps.VCS,
		venv:          deps.Venv,
		runs:          deps.Runs,
		clock:         deps.Clock,
		idGen:         deps.IDGen,
		logger:        deps.Logger,
		commitMessage: commitMessage,
	}
}

// Plan validates the request and returns the spec and artifact list a
// run would produce, without touching storage or any collaborator.
func (s *ScaffoldService) Plan(req Request) (project.Spec, []artifact.Artifact, error) {
	spec, err := s.validate(req)
	if err != nil {
		return project.Spec{}, nil, err
	}
	return spec, artifact.Generate(spec), nil
}

// Scaffold runs the full pipeline: validate, generate, build, verify,
// then the optional collaborator steps in the order virtualenv, git,
// remote repository. Collaborator failures become warnings on the
// result; only validation and tree building can fail the run.
func (s *ScaffoldService) Scaffold(ctx context.Context, req Request) (*Result, error) {
	start := s.clock.Now()

	spec, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	baseDir := req.BaseDir
	if baseDir == "" {
		baseDir = "."
	}

	res := &Result{Spec: spec}
	res.Path = filepath.Join(baseDir, spec.KebabName)
	if abs, err := filepath.Abs(res.Path); err == nil {
		res.Path = abs
	}

	arts := artifact.Generate(spec)
	res.Artifacts = len(arts)

	s.logger.Info().
		Str("name", spec.RawName).
		Str("slug", spec.KebabName).
		Strs("modules", spec.ModuleNames()).
		Msg("scaffolding project")

	// Rewrite the readme before anything is written so a failed
	// enhancement leaves the deterministic content in place.
	if req.Ideas != "" {
		s.enhanceReadme(ctx, req.Ideas, spec, arts, res)
	}

	if err := s.builder.Build(baseDir, spec, arts); err != nil {
		err = fmt.Errorf("build project tree: %w", err)
		s.record(ctx, res, start, "failed", err)
		return nil, err
	}
	s.logger.Info().Str("path", res.Path).Int("artifacts", len(arts)).Msg("project tree created")

	res.Structure = s.verifier.Verify(res.Path, spec)
	if !res.Structure.OK {
		s.logger.Warn().Strs("missing", res.Structure.Errors).Msg("structure check found gaps")
	}

	if spec.Options.CreateVenv {
		s.provision(ctx, res)
	}

	if spec.Options.InitGit {
		s.initRepo(ctx, spec, res)
	} else if spec.Options.CreateRemote {
		s.warn(res, "remote repository creation requires git initialization; skipped")
	}

	s.record(ctx, res, start, "ok", nil)
	return res, nil
}

// Inspire derives prompt defaults from a free-text ideas document.
// Candidates face the same validation as typed input; invalid ones are
// dropped with a warning instead of failing the wizard.
func (s *ScaffoldService) Inspire(ctx context.Context, ideas string) (ports.Extraction, []string, error) {
	if s.extractor == nil {
		return ports.Extraction{}, nil, errors.New("extraction is disabled")
	}

	ext, err := s.extractor.Extract(ctx, ideas)
	if err != nil {
		return ports.Extraction{}, nil, err
	}

	var warnings []string

	if ext.Name != "" {
		if res := project.ValidateProjectName(ext.Name, nil); !res.OK {
			warnings = append(warnings, fmt.Sprintf("ignoring extracted name %q: %s", ext.Name, strings.Join(res.Errors, "; ")))
			ext.Name = ""
		}
	}

	valid := make([]string, 0, len(ext.Modules))
	for _, m := range ext.Modules {
		if res := project.ValidateModuleName(m); !res.OK {
			warnings = append(warnings, fmt.Sprintf("skipping extracted module %q: %s", m, strings.Join(res.Errors, "; ")))
			continue
		}
		valid = append(valid, m)
	}
	ext.Modules = valid

	s.logger.Info().
		Str("name", ext.Name).
		Strs("modules", ext.Modules).
		Msg("extracted project information from ideas")

	return ext, warnings, nil
}

// VerifyProject re-checks an existing tree against the structure its
// project document promises.
func (s *ScaffoldService) VerifyProject(dir string) (project.Spec, project.ValidationResult, error) {
	data, err := os.ReadFile(filepath.Join(dir, "project.json"))
	if err != nil {
		return project.Spec{}, project.ValidationResult{}, fmt.Errorf("read project document: %w", err)
	}

	doc, err := artifact.ParseDocument(data)
	if err != nil {
		return project.Spec{}, project.ValidationResult{}, err
	}

	spec, err := project.NewSpec(doc.Name, doc.Description, doc.Modules, "", 0, project.Options{})
	if err != nil {
		return project.Spec{}, project.ValidationResult{}, fmt.Errorf("project document: %w", err)
	}

	return spec, s.verifier.Verify(dir, spec), nil
}

// History returns recent runs from the ledger, newest first.
func (s *ScaffoldService) History(ctx context.Context, limit int) ([]ports.Run, error) {
	if s.runs == nil {
		return nil, errors.New("run ledger is disabled")
	}
	return s.runs.Recent(ctx, limit)
}

// validate runs every input check and collects all failures into one
// ValidationError.
func (s *ScaffoldService) validate(req Request) (project.Spec, error) {
	baseDir := req.BaseDir
	if baseDir == "" {
		baseDir = "."
	}
	exists := func(kebab string) bool {
		_, err := os.Stat(filepath.Join(baseDir, kebab))
		return err == nil
	}

	var issues []string
	if res := project.ValidateProjectName(req.Name, exists); !res.OK {
		issues = append(issues, res.Errors...)
	}
	if len(req.Modules) == 0 {
		issues = append(issues, "at least one module is required")
	} else if res := project.ValidateModules(req.Modules); !res.OK {
		issues = append(issues, res.Errors...)
	}
	if len(issues) > 0 {
		return project.Spec{}, &ValidationError{Issues: issues}
	}

	spec, err := project.NewSpec(req.Name, req.Description, req.Modules, req.Author, s.clock.Now().Year(), req.Options)
	if err != nil {
		return project.Spec{}, fmt.Errorf("derive spec: %w", err)
	}
	return spec, nil
}

// enhanceReadme rewrites the README artifact in place from the ideas
// text. Failures leave the deterministic readme untouched.
func (s *ScaffoldService) enhanceReadme(ctx context.Context, ideas string, spec project.Spec, arts []artifact.Artifact, res *Result) {
	if s.extractor == nil {
		s.warn(res, "readme enhancement requested but extraction is disabled")
		return
	}

	for i := range arts {
		if arts[i].RelativePath != "README.md" {
			continue
		}

		enhanced, err := s.extractor.EnhanceReadme(ctx, string(arts[i].Payload), ideas, spec)
		if err != nil {
			s.warn(res, "enhance readme: "+err.Error())
			return
		}
		if !strings.HasSuffix(enhanced, "\n") {
			enhanced += "\n"
		}
		arts[i].Payload = []byte(enhanced)
		s.logger.Info().Msg("readme enhanced from ideas text")
		return
	}
}

// provision creates the virtual environment inside the project.
func (s *ScaffoldService) provision(ctx context.Context, res *Result) {
	if s.venv == nil {
		s.warn(res, "virtual environment requested but provisioning is disabled")
		return
	}
	if err := s.venv.Provision(ctx, res.Path); err != nil {
		s.warn(res, "create virtual environment: "+err.Error())
		return
	}
	s.logger.Info().Str("path", res.Path).Msg("virtual environment created")
}

// initRepo initializes git and, when requested, the remote repository.
// The chain stops at the first git failure; a remote failure still
// leaves a valid local repository behind.
func (s *ScaffoldService) initRepo(ctx context.Context, spec project.Spec, res *Result) {
	if s.vcs == nil {
		s.warn(res, "git initialization requested but version control is disabled")
		return
	}

	if err := s.vcs.Init(ctx, res.Path); err != nil {
		s.warn(res, "git init: "+err.Error())
		return
	}
	if err := s.vcs.AddAll(ctx, res.Path); err != nil {
		s.warn(res, "git add: "+err.Error())
		return
	}
	if err := s.vcs.Commit(ctx, res.Path, s.commitMessage); err != nil {
		s.warn(res, "git commit: "+err.Error())
		return
	}
	s.logger.Info().Str("path", res.Path).Msg("git repository initialized")

	if !spec.Options.CreateRemote {
		return
	}
	if s.repoHost == nil {
		s.warn(res, "remote repository requested but repository host is disabled")
		return
	}

	url, err := s.repoHost.CreateRepo(ctx, ports.RepoRequest{
		Name:        spec.KebabName,
		Description: spec.Description,
		Private:     spec.Options.Private,
	})
	if err != nil {
		s.warn(res, "create remote repository: "+err.Error())
		return
	}
	res.CloneURL = url
	s.logger.Info().Str("url", url).Msg("remote repository created")

	if err := s.vcs.AddRemote(ctx, res.Path, "origin", url); err != nil {
		s.warn(res, "set remote origin: "+err.Error())
	}
}

// record finalizes the result and writes one ledger row. Ledger
// failures are warnings like any other collaborator failure.
func (s *ScaffoldService) record(ctx context.Context, res *Result, start time.Time, status string, runErr error) {
	res.Duration = s.clock.Now().Sub(start)

	if s.runs == nil {
		return
	}

	run := ports.Run{
		ID:        s.idGen.New(),
		Name:      res.Spec.RawName,
		Slug:      res.Spec.KebabName,
		Package:   res.Spec.PackageName,
		Path:      res.Path,
		Modules:   res.Spec.ModuleNames(),
		Artifacts: res.Artifacts,
		Status:    status,
		Duration:  res.Duration,
		CreatedAt: s.clock.Now(),
	}
	if runErr != nil {
		run.Error = runErr.Error()
	}

	if err := s.runs.Record(ctx, run); err != nil {
		s.warn(res, "record run: "+err.Error())
		return
	}
	res.RunID = run.ID
	s.logger.Debug().Str("run_id", run.ID).Str("status", status).Msg("run recorded")
}

func (s *ScaffoldService) warn(res *Result, msg string) {
	res.Warnings = append(res.Warnings, msg)
	s.logger.Warn().Msg(msg)
}
