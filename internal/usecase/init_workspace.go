package usecase

import (
	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/ports"
)

type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

// Execute scaffolds a workspace at root; git also creates a repository there.
func (uc *InitWorkspace) Execute(root string, force bool, git bool) error {
	return uc.initializer.Init(domain.WorkspaceSpec{Root: root, Git: git}, force)
}
