// Package layout derives the expected directory and file set of a
// generated project from its specification. The generator, the builder,
// and the structure verifier all consume this one derivation, so the
// expected-structure logic has a single source of truth and cannot
// drift between producer and checker.
package layout

import (
	"path"

	"github.com/cortexscaffold/cortexscaffold/domain/project"
)

// Layout is the complete expected structure of a generated project.
// All paths are slash-separated and relative to the project root;
// parent directories precede their children.
type Layout struct {
	Dirs  []string
	Files []string
}

// Derive computes the expected structure for spec. Module entries follow
// spec order, so the derivation is deterministic.
func Derive(spec project.Spec) Layout {
	pkg := spec.PackageName

	dirs := []string{
		"config",
		"docs",
		"downloads",
		"test",
		"test/docs",
		pkg,
		path.Join(pkg, "utils"),
	}
	for _, m := range spec.Modules {
		dirs = append(dirs, path.Join("docs", m.SnakeName))
	}

	files := []string{
		"README.md",
		"NOTE_FOR_AGENTS.md",
		"LICENSE",
		".gitignore",
		"requirements.txt",
		"project.json",
		"favicon.ico",
		"main.py",
		"config/config.py",
		"config/config_example.py",
		path.Join(pkg, "__init__.py"),
		path.Join(pkg, "utils", "__init__.py"),
		path.Join(pkg, "utils", "logging.py"),
	}
	for _, m := range spec.Modules {
		files = append(files,
			path.Join(pkg, m.SnakeName+".py"),
			path.Join("docs", m.SnakeName, "README.md"),
			path.Join("test", "test_"+m.SnakeName+".py"),
		)
	}
	files = append(files,
		"docs/README.md",
		"test/README.md",
		"downloads/.gitkeep",
	)

	return Layout{Dirs: dirs, Files: files}
}
