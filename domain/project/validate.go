package project

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/cortexscaffold/cortexscaffold/domain/name"
)

// ValidationResult accumulates rule failures for a batch of inputs.
// OK is true exactly when Errors is empty. A result is never partial:
// callers get every failure for the batch in one pass.
type ValidationResult struct {
	OK     bool
	Errors []string
}

func validResult() ValidationResult {
	return ValidationResult{OK: true}
}

func invalidResult(errs ...string) ValidationResult {
	return ValidationResult{OK: false, Errors: errs}
}

// ExistsFunc probes whether a directory with the given canonical name is
// already present at the target location. A nil ExistsFunc disables the
// existence rule, keeping the remaining rules free of filesystem access.
type ExistsFunc func(kebabName string) bool

// ValidateProjectName checks a raw project name against the directory
// naming rules. The first failing rule is reported.
//
// This is a PURE function apart from the injected exists probe.
func ValidateProjectName(rawName string, exists ExistsFunc) ValidationResult {
	if strings.TrimSpace(rawName) == "" {
		return invalidResult("project name cannot be empty")
	}

	kebab := name.ToKebab(rawName)
	if kebab == "" {
		return invalidResult(fmt.Sprintf("project name %q becomes empty after conversion", rawName))
	}
	if len(kebab) > maxNameLength {
		return invalidResult(fmt.Sprintf("project name %q is too long (max %d characters)", rawName, maxNameLength))
	}

	// ToKebab guarantees both properties below; the checks restate the
	// directory-name contract independently of the transform.
	for _, r := range kebab {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' {
			continue
		}
		return invalidResult(fmt.Sprintf("project name contains invalid characters (after conversion: %q)", kebab))
	}
	if strings.HasPrefix(kebab, "-") || strings.HasSuffix(kebab, "-") {
		return invalidResult("project name cannot start or end with a hyphen")
	}

	if ReservedDirNames[kebab] {
		return invalidResult(fmt.Sprintf("project name %q conflicts with a reserved directory name", rawName))
	}

	if exists != nil && exists(kebab) {
		return invalidResult(fmt.Sprintf("directory %q already exists at the target location", kebab))
	}

	return validResult()
}

// ValidateModuleName checks a single raw module name against the module
// identifier rules. The first failing rule is reported.
//
// This is a PURE function - no I/O, fully deterministic.
func ValidateModuleName(rawName string) ValidationResult {
	if strings.TrimSpace(rawName) == "" {
		return invalidResult("module name cannot be empty")
	}

	snake := name.ToSnake(rawName)
	if snake == "" {
		return invalidResult(fmt.Sprintf("module name %q becomes empty after conversion", rawName))
	}
	if len(snake) > maxNameLength {
		return invalidResult(fmt.Sprintf("module name %q is too long (max %d characters)", rawName, maxNameLength))
	}

	if !isIdentifier(snake) {
		return invalidResult(fmt.Sprintf("module name %q is not a valid identifier (after conversion: %q)", rawName, snake))
	}
	if PythonKeywords[snake] {
		return invalidResult(fmt.Sprintf("module name %q is a reserved keyword (after conversion: %q)", rawName, snake))
	}
	if ReservedModuleWords[snake] {
		return invalidResult(fmt.Sprintf("module name %q conflicts with a reserved name (after conversion: %q)", rawName, snake))
	}
	if snake[0] >= '0' && snake[0] <= '9' {
		return invalidResult(fmt.Sprintf("module name %q cannot start with a digit (after conversion: %q)", rawName, snake))
	}

	return validResult()
}

// ValidateModules checks every entry of a module list and additionally
// rejects case-insensitive duplicates, reporting one error per colliding
// entry after the first. It never short-circuits: the result carries
// every problem so the caller can fix the whole list in one pass.
func ValidateModules(rawNames []string) ValidationResult {
	var errs []string
	seen := make(map[string]bool, len(rawNames))

	for _, raw := range rawNames {
		res := ValidateModuleName(raw)
		if !res.OK {
			errs = append(errs, res.Errors...)
			continue
		}
		snake := name.ToSnake(raw)
		if seen[snake] {
			errs = append(errs, fmt.Sprintf("module name %q is a duplicate (converts to %q)", raw, snake))
			continue
		}
		seen[snake] = true
	}

	if len(errs) > 0 {
		return invalidResult(errs...)
	}
	return validResult()
}

// maxNameLength bounds canonical project and module names.
const maxNameLength = 50

// isIdentifier reports whether s is a valid bare identifier: a letter or
// underscore followed by letters, digits, or underscores. An explicit
// grammar check, deliberately independent of any host-language notion of
// identifiers.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
