package artifact

import (
	"fmt"
	"strings"

	"github.com/cortexscaffold/cortexscaffold/domain/project"
)

// Renderers for the Python sources of the generated project. Each one is
// a plain string transform of the spec; the templates mirror what the
// generated service needs, nothing here inspects the host system.

func renderRequirements() string {
	return "fastapi\nuvicorn[standard]\n"
}

func renderMainPy(spec project.Spec) string {
	var imports, inits, routes, listing []string
	for _, m := range spec.Modules {
		imports = append(imports, fmt.Sprintf(
			"from %s.%s import init_module as %s_init, ping as %s_ping",
			spec.PackageName, m.SnakeName, m.SnakeName, m.SnakeName))
		inits = append(inits, fmt.Sprintf("    %s_init()", m.SnakeName))
		routes = append(routes, fmt.Sprintf(`@app.get("/%s/ping")
async def %s_ping_route():
    """Health check endpoint for %s module."""
    return %s_ping()`, m.SnakeName, m.SnakeName, m.RawName, m.SnakeName))
		listing = append(listing, fmt.Sprintf("        %q,", m.SnakeName))
	}

	return fmt.Sprintf(`"""Main FastAPI application for %s."""
from contextlib import asynccontextmanager
from pathlib import Path
from fastapi import FastAPI
from fastapi.responses import FileResponse, JSONResponse
%s


def init_all_modules():
    """Initialize all registered modules."""
%s


@asynccontextmanager
async def lifespan(app: FastAPI):
    """Lifespan context manager for startup and shutdown events."""
    # Startup
    init_all_modules()
    yield
    # Shutdown (if needed, add cleanup code here)


app = FastAPI(
    title="%s",
    description="A FastAPI application",
    version="0.1.0",
    lifespan=lifespan
)


@app.get("/")
async def index():
    """Index route listing all available modules."""
    return JSONResponse(content={
        "project": "%s",
        "modules": [
%s
        ]
    })


@app.get("/favicon.ico", include_in_schema=False)
async def favicon():
    """Serve favicon."""
    favicon_path = Path(__file__).parent / "favicon.ico"
    return FileResponse(favicon_path)


%s


if __name__ == "__main__":
    import uvicorn
    uvicorn.run(app, host="0.0.0.0", port=8000)
`,
		spec.RawName,
		strings.Join(imports, "\n"),
		strings.Join(inits, "\n"),
		spec.RawName,
		spec.RawName,
		strings.Join(listing, "\n"),
		strings.Join(routes, "\n\n"),
	)
}

func renderModulePy(spec project.Spec, m project.Module) string {
	return fmt.Sprintf(`"""Module: %s"""
from %s.utils.logging import get_logger

logger = get_logger(__name__)


def init_module():
    """Initial hook for module %s."""
    logger.info("Initializing %s module...")


def ping():
    """Health check endpoint for %s module."""
    return {"module": "%s", "status": "ok"}
`, m.RawName, spec.PackageName, m.RawName, m.RawName, m.RawName, m.SnakeName)
}

func renderTestModule(spec project.Spec, m project.Module) string {
	return fmt.Sprintf(`"""Tests for %s module."""
import pytest
from %s.%s import init_module, ping


def test_init_module():
    """Test module initialization."""
    init_module()
    # Add assertions as needed


def test_ping():
    """Test ping endpoint."""
    result = ping()
    assert result["module"] == "%s"
    assert result["status"] == "ok"
`, m.RawName, spec.PackageName, m.SnakeName, m.SnakeName)
}

func renderConfigPy(spec project.Spec) string {
	return fmt.Sprintf(`"""Configuration module for %s."""
import os
from pathlib import Path

# Project root directory
PROJECT_ROOT = Path(__file__).parent.parent

# Environment
ENV = os.getenv("ENV", "development")
DEBUG = os.getenv("DEBUG", "false").lower() == "true"

# API Configuration
API_HOST = os.getenv("API_HOST", "0.0.0.0")
API_PORT = int(os.getenv("API_PORT", "8000"))

# Logging
LOG_LEVEL = os.getenv("LOG_LEVEL", "INFO")
`, spec.RawName)
}

func renderConfigExamplePy() string {
	return `"""Example configuration file.

Copy this file to config.py and update with your actual values.
Do not commit config.py to version control.
"""

# Environment
ENV = "development"  # development, staging, production
DEBUG = True

# API Configuration
API_HOST = "0.0.0.0"
API_PORT = 8000

# Logging
LOG_LEVEL = "INFO"
`
}

func renderPackageInit(spec project.Spec) string {
	return fmt.Sprintf(`"""Main package for %s."""
__version__ = "0.1.0"
`, spec.PackageName)
}

func renderUtilsInit() string {
	return `"""Utility modules."""
from .logging import get_logger

__all__ = ["get_logger"]
`
}

func renderLoggingPy() string {
	return `"""Logging utilities for the project."""
import logging
import sys
from typing import Optional

_loggers: dict[str, logging.Logger] = {}
_handler_attached = False


def get_logger(name: str) -> logging.Logger:
    """
    Get or create a logger with consistent formatting.

    Args:
        name: Logger name (typically __name__)

    Returns:
        Configured logger instance
    """
    global _handler_attached

    if name in _loggers:
        return _loggers[name]

    logger = logging.getLogger(name)
    logger.setLevel(logging.INFO)

    # Only attach handler once to root logger
    if not _handler_attached:
        handler = logging.StreamHandler(sys.stdout)
        handler.setLevel(logging.INFO)

        formatter = logging.Formatter(
            '%(asctime)s - %(name)s - %(levelname)s - %(message)s',
            datefmt='%Y-%m-%d %H:%M:%S'
        )
        handler.setFormatter(formatter)

        root_logger = logging.getLogger()
        root_logger.addHandler(handler)
        root_logger.setLevel(logging.INFO)
        _handler_attached = True

    _loggers[name] = logger
    return logger
`
}
