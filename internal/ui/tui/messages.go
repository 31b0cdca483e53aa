package tui

import "github.com/aalvaropc/primer/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type lessonDoneMsg struct {
	transcript domain.Transcript
	id         string
	err        error
}
