package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/go-git/go-git/v5"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "primer.yaml"))
	assertFileExists(t, filepath.Join(tmp, "workbook.yaml"))
	assertFileExists(t, filepath.Join(tmp, "golden", "bindings.txt"))
	assertFileExists(t, filepath.Join(tmp, ".primer", "logs"))
	assertFileExists(t, filepath.Join(tmp, "transcripts"))

	if _, err := os.Stat(filepath.Join(tmp, ".git")); !os.IsNotExist(err) {
		t.Fatalf("expected no repository without Git, err=%v", err)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "primer.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing primer.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read primer.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected primer.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read primer.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "primer:") {
		t.Fatalf("expected primer.yaml overwritten with template, got %q", string(b))
	}
}

func TestInitializer_Init_Git(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp, Git: true}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if _, err := git.PlainOpen(tmp); err != nil {
		t.Fatalf("expected repository at %s: %v", tmp, err)
	}

	// A second init reuses the repository.
	if err := i.Init(domain.WorkspaceSpec{Root: tmp, Git: true}, false); err != nil {
		t.Fatalf("second Init error: %v", err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}
