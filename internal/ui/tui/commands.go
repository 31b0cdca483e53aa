package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/infra/artifactstore"
	"github.com/aalvaropc/primer/internal/infra/workspacefinder"
	"github.com/aalvaropc/primer/internal/ports"
	"github.com/aalvaropc/primer/internal/usecase"
)

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, err: findErr}
		}
		return workspaceRefreshedMsg{cwd: wd, found: true, root: root}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func listenLesson(ch <-chan lessonDoneMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return lessonDoneMsg{err: errors.New("lesson channel closed")}
		}
		return msg
	}
}

// startLessonAsync runs a lesson off the UI goroutine. The transcript is
// saved when a workspace is known and its config allows it.
func startLessonAsync(
	catalog ports.LessonCatalog,
	workspaceRoot, name string,
	log *slog.Logger,
	debug bool,
) tea.Cmd {
	ch := make(chan lessonDoneMsg, 1)

	if log == nil {
		log = slog.Default()
	}

	go func() {
		defer close(ch)

		log.Info("lesson.run.start", "lesson", name, "workspace", workspaceRoot, "debug", debug)

		var store ports.ArtifactStore
		if workspaceRoot != "" {
			cfg, err := workspacefinder.LoadConfig(workspaceRoot)
			if err != nil {
				log.Error("lesson.run.load_config.failed", "err", err)
				ch <- lessonDoneMsg{err: err}
				return
			}
			if cfg.Transcripts.Save {
				store = artifactstore.NewJSONStore(workspaceRoot, cfg)
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		tr, id, err := usecase.NewRunLesson(catalog, store).Execute(ctx, name)
		if err != nil {
			log.Error("lesson.run.failed", "lesson", name, "err", err, "saved_id", id)
		} else {
			log.Info("lesson.run.ok", "lesson", tr.Lesson, "lines", len(tr.Lines), "saved_id", id)
		}

		ch <- lessonDoneMsg{transcript: tr, id: id, err: err}
	}()

	return listenLesson(ch)
}
