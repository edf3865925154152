package project

// Reserved word tables. These are enumerated data, not language
// introspection, so a rule change is a reviewed table edit and the rules
// behave identically on every platform.

// ReservedRevision identifies the revision of the tables below. Bump it
// whenever an entry is added or removed.
const ReservedRevision = 1

// ReservedDirNames are directory names a project can never claim: path
// traversal tokens, version-control and environment directories, and the
// dependency cache used by JS tooling that frequently shares a checkout.
var ReservedDirNames = map[string]bool{
	".":            true,
	"..":           true,
	".git":         true,
	".venv":        true,
	"venv":         true,
	"env":          true,
	"node_modules": true,
}

// PythonKeywords enumerates the hard keywords of Python 3, the language
// of the generated project. Matches keyword.kwlist for CPython 3.12.
// Lookups happen on canonical (lowercased) names, so the three
// capitalized constants can only match their exact spelling.
var PythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true,
	"and": true, "as": true, "assert": true, "async": true,
	"await": true, "break": true, "class": true, "continue": true,
	"def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true,
	"global": true, "if": true, "import": true, "in": true,
	"is": true, "lambda": true, "nonlocal": true, "not": true,
	"or": true, "pass": true, "raise": true, "return": true,
	"try": true, "while": true, "with": true, "yield": true,
}

// ReservedModuleWords are identifiers the generated project uses
// internally or that shadow common builtins; a module by any of these
// names would collide with generated files or confuse imports.
var ReservedModuleWords = map[string]bool{
	"import": true, "from": true, "as": true, "if": true,
	"else": true, "elif": true, "for": true, "while": true,
	"def": true, "class": true, "return": true, "pass": true,
	"break": true, "continue": true, "try": true, "except": true,
	"finally": true, "raise": true, "assert": true, "with": true,
	"lambda": true, "yield": true, "del": true, "global": true,
	"nonlocal": true, "in": true, "is": true, "not": true,
	"and": true, "or": true,
	"print": true, "input": true, "open": true, "file": true,
	"main": true, "init": true, "utils": true, "config": true,
	"test": true, "docs": true,
}
