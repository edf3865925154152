// Package main is the entry point for CortexScaffold, a deterministic
// scaffolder for micromodular FastAPI projects.
package main

func main() {
	Execute()
}
