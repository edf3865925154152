// Package project defines the validated project specification and the
// input validation rules applied before anything is generated.
package project

import (
	"fmt"

	"github.com/cortexscaffold/cortexscaffold/domain/name"
)

// Module is one functional module of the generated project.
type Module struct {
	RawName   string // as the user typed it
	SnakeName string // canonical identifier, drives file and route names
}

// Options carry the per-run feature toggles that ride along with the
// spec. They never influence artifact content.
type Options struct {
	InitGit      bool
	CreateRemote bool
	Private      bool
	CreateVenv   bool
}

// Spec is the immutable description of a project to generate. It is
// constructed once per run from validated inputs; generation reads it
// and nothing mutates it afterwards.
type Spec struct {
	RawName     string
	KebabName   string // directory and repository identifier
	PackageName string // code-namespace identifier
	Description string
	Modules     []Module
	Author      string // license holder
	Year        int    // license year, resolved by the caller
	Options     Options
}

// NewSpec derives the canonical names for a project and its modules.
// Inputs are expected to have passed ValidateProjectName and
// ValidateModules already; NewSpec only enforces the structural
// invariant that canonical names are non-empty.
func NewSpec(rawName, description string, moduleNames []string, author string, year int, opts Options) (Spec, error) {
	kebab := name.ToKebab(rawName)
	pkg := name.ToSnake(rawName)
	if kebab == "" || pkg == "" {
		return Spec{}, fmt.Errorf("project name %q yields an empty canonical form", rawName)
	}

	modules := make([]Module, 0, len(moduleNames))
	for _, raw := range moduleNames {
		snake := name.ToSnake(raw)
		if snake == "" {
			return Spec{}, fmt.Errorf("module name %q yields an empty canonical form", raw)
		}
		modules = append(modules, Module{RawName: raw, SnakeName: snake})
	}

	return Spec{
		RawName:     rawName,
		KebabName:   kebab,
		PackageName: pkg,
		Description: description,
		Modules:     modules,
		Author:      author,
		Year:        year,
		Options:     opts,
	}, nil
}

// ModuleNames returns the canonical module identifiers in spec order.
func (s Spec) ModuleNames() []string {
	names := make([]string, len(s.Modules))
	for i, m := range s.Modules {
		names[i] = m.SnakeName
	}
	return names
}

// RawModuleNames returns the module names as the user supplied them, in
// spec order.
func (s Spec) RawModuleNames() []string {
	names := make([]string, len(s.Modules))
	for i, m := range s.Modules {
		names[i] = m.RawName
	}
	return names
}
