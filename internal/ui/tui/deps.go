package tui

import (
	"log/slog"

	"github.com/aalvaropc/primer/internal/ports"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer
	Catalog              ports.LessonCatalog

	Logger *slog.Logger
	Debug  bool
}
