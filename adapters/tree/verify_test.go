package tree_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cortexscaffold/cortexscaffold/adapters/tree"
	"github.com/cortexscaffold/cortexscaffold/domain/artifact"
)

func TestVerifyAfterBuildReportsNothingMissing(t *testing.T) {
	base := t.TempDir()
	spec := testSpec(t)

	if err := tree.NewBuilder().Build(base, spec, artifact.Generate(spec)); err != nil {
		t.Fatalf("Build: %v", err)
	}

	res := tree.NewVerifier().Verify(filepath.Join(base, spec.KebabName), spec)
	if !res.OK {
		t.Errorf("Verify reported errors after a clean build: %v", res.Errors)
	}
}

func TestVerifyReportsEveryMissingEntry(t *testing.T) {
	base := t.TempDir()
	spec := testSpec(t)

	if err := tree.NewBuilder().Build(base, spec, artifact.Generate(spec)); err != nil {
		t.Fatalf("Build: %v", err)
	}

	root := filepath.Join(base, spec.KebabName)
	if err := os.Remove(filepath.Join(root, "main.py")); err != nil {
		t.Fatalf("remove main.py: %v", err)
	}
	if err := os.Remove(filepath.Join(root, "my_cool_api", "users.py")); err != nil {
		t.Fatalf("remove users.py: %v", err)
	}
	if err := os.RemoveAll(filepath.Join(root, "downloads")); err != nil {
		t.Fatalf("remove downloads: %v", err)
	}

	res := tree.NewVerifier().Verify(root, spec)
	if res.OK {
		t.Fatal("Verify reported OK for a broken tree")
	}

	want := []string{
		"missing directory: downloads",
		"missing: main.py",
		"missing: my_cool_api/users.py",
		"missing: downloads/.gitkeep",
	}
	for _, w := range want {
		found := false
		for _, e := range res.Errors {
			if e == w {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Verify errors missing %q; got %v", w, res.Errors)
		}
	}
}

func TestVerifyMissingRoot(t *testing.T) {
	base := t.TempDir()
	spec := testSpec(t)

	res := tree.NewVerifier().Verify(filepath.Join(base, spec.KebabName), spec)
	if res.OK {
		t.Fatal("Verify reported OK for an absent tree")
	}

	// Every derived entry should be reported, not just the first.
	var dirs, files int
	for _, e := range res.Errors {
		if strings.HasPrefix(e, "missing directory: ") {
			dirs++
		}
		if strings.HasPrefix(e, "missing: ") {
			files++
		}
	}
	if dirs == 0 || files == 0 {
		t.Errorf("expected both directory and file errors, got dirs=%d files=%d", dirs, files)
	}
}

func TestVerifyFileWhereDirectoryExpected(t *testing.T) {
	base := t.TempDir()
	spec := testSpec(t)

	if err := tree.NewBuilder().Build(base, spec, artifact.Generate(spec)); err != nil {
		t.Fatalf("Build: %v", err)
	}

	root := filepath.Join(base, spec.KebabName)
	if err := os.RemoveAll(filepath.Join(root, "test", "docs")); err != nil {
		t.Fatalf("remove test/docs: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "test", "docs"), []byte("not a dir"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	res := tree.NewVerifier().Verify(root, spec)
	if res.OK {
		t.Fatal("Verify accepted a file standing in for a directory")
	}
}
