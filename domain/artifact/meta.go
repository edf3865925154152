package artifact

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cortexscaffold/cortexscaffold/domain/project"
)

const (
	// GeneratorName and GeneratorVersion identify the producer inside
	// project.json. GeneratorVersion is a constant rather than a build
	// stamp so generated output stays deterministic.
	GeneratorName    = "cortexscaffold"
	GeneratorVersion = "0.1.0"

	// DocumentSchema versions the project.json layout.
	DocumentSchema = 1
)

// Document is the machine-readable project description written to
// project.json. It round-trips a specification: the verify command
// reads it back to recompute the expected structure of an existing
// project.
type Document struct {
	Schema      int      `json:"schema"`
	Generator   string   `json:"generator"`
	Version     string   `json:"version"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Package     string   `json:"package"`
	Description string   `json:"description"`
	Modules     []string `json:"modules"`
}

// ParseDocument decodes a project.json payload.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parse project document: %w", err)
	}
	if doc.Name == "" {
		return Document{}, errors.New("project document has no name")
	}
	return doc, nil
}

func renderDocument(spec project.Spec) string {
	doc := Document{
		Schema:      DocumentSchema,
		Generator:   GeneratorName,
		Version:     GeneratorVersion,
		Name:        spec.RawName,
		Slug:        spec.KebabName,
		Package:     spec.PackageName,
		Description: spec.Description,
		Modules:     spec.RawModuleNames(),
	}
	data, _ := json.MarshalIndent(doc, "", "  ")
	return string(data) + "\n"
}

func renderLicense(spec project.Spec) string {
	return fmt.Sprintf(`MIT License

Copyright (c) %d %s

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
`, spec.Year, spec.Author)
}

func renderGitignore() string {
	return `# Byte-compiled / optimized / DLL files
__pycache__/
*.py[cod]
*$py.class

# C extensions
*.so

# Distribution / packaging
.Python
build/
develop-eggs/
dist/
downloads/
eggs/
.eggs/
lib/
lib64/
parts/
sdist/
var/
wheels/
pip-wheel-metadata/
share/python-wheels/
*.egg-info/
.installed.cfg
*.egg
MANIFEST

# PyInstaller
*.manifest
*.spec

# Installer logs
pip-log.txt
pip-delete-this-directory.txt

# Unit test / coverage reports
htmlcov/
.tox/
.nox/
.coverage
.coverage.*
.cache
nosetests.xml
coverage.xml
*.cover
*.py,cover
.hypothesis/
.pytest_cache/

# Translations
*.mo
*.pot

# Django stuff:
*.log
local_settings.py
db.sqlite3
db.sqlite3-journal

# Flask stuff:
instance/
.webassets-cache

# Scrapy stuff:
.scrapy

# Sphinx documentation
docs/_build/

# PyBuilder
target/

# Jupyter Notebook
.ipynb_checkpoints

# IPython
profile_default/
ipython_config.py

# pyenv
.python-version

# pipenv
Pipfile.lock

# PEP 582
__pypackages__/

# Celery stuff
celerybeat-schedule
celerybeat.pid

# SageMath parsed files
*.sage.py

# Environments
.env
.venv
env/
venv/
ENV/
env.bak/
venv.bak/

# Spyder project settings
.spyderproject
.spyproject

# Rope project settings
.ropeproject

# mkdocs documentation
/site

# mypy
.mypy_cache/
.dmypy.json
dmypy.json

# Pyre type checker
.pyre/

# IDEs
.vscode/
.idea/
*.swp
*.swo
*~

# OS
.DS_Store
Thumbs.db

# Project specific
downloads/*
!downloads/.gitkeep
config/config.py
`
}
