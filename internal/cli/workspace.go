package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/infra/artifactstore"
	"github.com/aalvaropc/primer/internal/infra/lessoncatalog"
	"github.com/aalvaropc/primer/internal/infra/workspacefinder"
	"github.com/aalvaropc/primer/internal/infra/yamlworkbook"
	"github.com/aalvaropc/primer/internal/ports"
)

// workspaceCtx wires adapters for one command. root is empty when the
// command runs outside any workspace; nothing is persisted then.
type workspaceCtx struct {
	root string
	cfg  domain.Config

	catalog   *lessoncatalog.Catalog
	workbooks ports.WorkbookLoader
	store     ports.ArtifactStore
}

func loadWorkspace(workspaceFlag string, noSave bool) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	ws := &workspaceCtx{
		root:      root,
		cfg:       domain.DefaultConfig(),
		catalog:   lessoncatalog.Default(),
		workbooks: yamlworkbook.NewLoader(),
	}
	if root == "" {
		return ws, nil
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}
	ws.cfg = cfg

	if cfg.Transcripts.Save && !noSave {
		ws.store = artifactstore.NewJSONStore(root, cfg)
	}
	return ws, nil
}

// resolveWorkspaceRoot honours an explicit --workspace, otherwise searches
// upward from the working directory. Not finding one is not an error.
func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, _, err := workspacefinder.NewFinder().Locate(wd)
	return root, err
}

// resolveWorkbookPath picks the workbook for `check`: the flag, then the
// workspace default if that file exists, then the built-in one ("").
func resolveWorkbookPath(ws *workspaceCtx, flag string) string {
	if in := strings.TrimSpace(flag); in != "" {
		return in
	}
	if ws.root == "" || strings.TrimSpace(ws.cfg.Defaults.Workbook) == "" {
		return ""
	}

	p := ws.cfg.Defaults.Workbook
	if !filepath.IsAbs(p) {
		p = filepath.Join(ws.root, p)
	}
	if fileExists(p) {
		return p
	}
	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
