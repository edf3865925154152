// Package artifact renders every file of a generated project from a
// validated specification.
//
// Rendering is PURE: the same specification always yields byte-identical
// output. No renderer reads the clock, the environment, or any other
// ambient state; values like the license year travel inside the spec.
// That property is what makes runs reproducible and the outputs
// snapshot-testable.
package artifact

import (
	"path"

	"github.com/cortexscaffold/cortexscaffold/domain/layout"
	"github.com/cortexscaffold/cortexscaffold/domain/project"
)

// Kind classifies an artifact payload.
type Kind int

const (
	// KindDir marks a directory that must exist before files are written.
	KindDir Kind = iota
	// KindText is a UTF-8 text file.
	KindText
	// KindBinary is an opaque byte payload.
	KindBinary
)

// Artifact is one materializable unit of a generated project.
// RelativePath is slash-separated and relative to the project root.
// Payload is nil for directory markers.
type Artifact struct {
	RelativePath string
	Kind         Kind
	Payload      []byte
}

// Generate maps a specification to the ordered artifact list: directory
// markers first (parents before children), then every file. Consumers
// materialize the list in order; nothing else about the sequence is
// significant.
func Generate(spec project.Spec) []Artifact {
	lay := layout.Derive(spec)

	arts := make([]Artifact, 0, len(lay.Dirs)+len(lay.Files))
	for _, d := range lay.Dirs {
		arts = append(arts, Artifact{RelativePath: d, Kind: KindDir})
	}

	text := func(rel, content string) {
		arts = append(arts, Artifact{RelativePath: rel, Kind: KindText, Payload: []byte(content)})
	}

	text("README.md", renderReadme(spec))
	text("NOTE_FOR_AGENTS.md", renderNoteForAgents(spec))
	text("LICENSE", renderLicense(spec))
	text(".gitignore", renderGitignore())
	text("requirements.txt", renderRequirements())
	text("project.json", renderDocument(spec))
	arts = append(arts, Artifact{RelativePath: "favicon.ico", Kind: KindBinary, Payload: EncodeICO(16, 16)})
	text("main.py", renderMainPy(spec))
	text("config/config.py", renderConfigPy(spec))
	text("config/config_example.py", renderConfigExamplePy())
	text(path.Join(spec.PackageName, "__init__.py"), renderPackageInit(spec))
	text(path.Join(spec.PackageName, "utils", "__init__.py"), renderUtilsInit())
	text(path.Join(spec.PackageName, "utils", "logging.py"), renderLoggingPy())

	for _, m := range spec.Modules {
		text(path.Join(spec.PackageName, m.SnakeName+".py"), renderModulePy(spec, m))
		text(path.Join("docs", m.SnakeName, "README.md"), renderModuleDocsReadme(m))
		text(path.Join("test", "test_"+m.SnakeName+".py"), renderTestModule(spec, m))
	}

	text("docs/README.md", renderDocsReadme(spec))
	text("test/README.md", renderTestReadme())
	text("downloads/.gitkeep", "")

	return arts
}
