package artifact

import (
	"fmt"
	"strings"

	"github.com/cortexscaffold/cortexscaffold/domain/project"
)

// Renderers for the markdown documents of the generated project.

const readmeTemplate = `# %s

%s

## Project Structure

` + "```" + `
%s/
├── config/          # Configuration files
├── docs/            # Documentation
├── downloads/       # Download directory
├── test/           # Test files
└── %s/  # Main package
    ├── utils/      # Utility modules
    └── modules/    # Feature modules
` + "```" + `

## Modules

%s

## Setup

1. Create and activate virtual environment:
` + "```bash" + `
python -m venv .venv
source .venv/bin/activate  # On Windows: .venv\Scripts\activate
` + "```" + `

2. Install dependencies:
` + "```bash" + `
pip install -r requirements.txt
` + "```" + `

3. Copy configuration:
` + "```bash" + `
cp config/config_example.py config/config.py
` + "```" + `

4. Run the application:
` + "```bash" + `
python main.py
` + "```" + `

Or with uvicorn directly:
` + "```bash" + `
uvicorn main:app --reload
` + "```" + `

## API Endpoints

- ` + "`GET /`" + ` - List all modules
- ` + "`GET /{module}/ping`" + ` - Health check for each module

## Development

Run tests:
` + "```bash" + `
pytest test/
` + "```" + `

## License

MIT License - see LICENSE file for details.
`

func renderReadme(spec project.Spec) string {
	return fmt.Sprintf(readmeTemplate,
		spec.RawName,
		spec.Description,
		spec.RawName,
		spec.PackageName,
		moduleList(spec),
	)
}

const noteForAgentsTemplate = `# Note for AI Agents

This is a Python FastAPI project: **%s**

## Description
%s

## Architecture

This project follows a modular architecture with the following structure:

- Main package: ` + "`%s/`" + `
- Modules: %d module(s)
- Framework: FastAPI
- Python version: 3.10+

## Modules

%s

## Key Files

- ` + "`main.py`" + ` - FastAPI application entry point
- ` + "`config/config.py`" + ` - Configuration (not in git)
- ` + "`config/config_example.py`" + ` - Example configuration
- ` + "`%s/utils/logging.py`" + ` - Logging utilities

## Module Pattern

Each module follows this pattern:
- Located in ` + "`%s/{module}.py`" + `
- Contains ` + "`init_module()`" + ` function called on startup
- Contains ` + "`ping()`" + ` function for health checks
- Has a ` + "`/{module}/ping`" + ` route in FastAPI

## Testing

Tests are located in ` + "`test/`" + ` directory following the pattern ` + "`test_{module}.py`" + `.

## Development Guidelines

- Use the logging utility: ` + "`from %s.utils.logging import get_logger`" + `
- Follow the module pattern for new features
- Update documentation in ` + "`docs/`" + ` directory
- Write tests for new modules
`

func renderNoteForAgents(spec project.Spec) string {
	return fmt.Sprintf(noteForAgentsTemplate,
		spec.RawName,
		spec.Description,
		spec.PackageName,
		len(spec.Modules),
		moduleList(spec),
		spec.PackageName,
		spec.PackageName,
		spec.PackageName,
	)
}

const moduleDocsTemplate = `# %s Module

## Overview

This module provides functionality for %s.

## Usage

` + "```python" + `
from %s import init_module, ping

# Initialize the module
init_module()

# Check health
status = ping()
` + "```" + `

## API Endpoints

- ` + "`GET /%s/ping`" + ` - Health check endpoint

## Configuration

Module-specific configuration can be added to ` + "`config/config.py`" + `.
`

func renderModuleDocsReadme(m project.Module) string {
	return fmt.Sprintf(moduleDocsTemplate, m.RawName, m.RawName, m.SnakeName, m.SnakeName)
}

func renderDocsReadme(spec project.Spec) string {
	return fmt.Sprintf(`# Documentation

Documentation for %s.

## Structure

Each module has its own documentation directory under `+"`docs/<module>/`"+`.
`, spec.RawName)
}

func renderTestReadme() string {
	return `# Tests

This directory contains test files for the project.

## Running Tests

` + "```bash" + `
pytest test/
` + "```" + `

## Test Structure

- ` + "`test_*.py`" + ` - Test files for each module
- ` + "`docs/`" + ` - Test documentation
`
}

// moduleList renders the canonical module names as a markdown list in
// spec order.
func moduleList(spec project.Spec) string {
	items := make([]string, len(spec.Modules))
	for i, m := range spec.Modules {
		items[i] = fmt.Sprintf("- `%s`", m.SnakeName)
	}
	return strings.Join(items, "\n")
}
