package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/primer/internal/infra/logger"
	"github.com/aalvaropc/primer/internal/usecase"
)

const shellHelp = `commands:
  list              list lessons
  run <lesson>...   run lessons (prefixes work: "run flow")
  help              show this help
  quit              leave the shell
`

var shellCommands = []string{"list", "run", "help", "quit", "exit"}

func shellCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive lesson shell with completion and history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace, true)
			if err != nil {
				return err
			}
			sh := &shellSession{
				out:    cmd.OutOrStdout(),
				names:  ws.catalog.Names(),
				runner: usecase.NewRunLesson(ws.catalog, nil),
			}
			return sh.loop(cmd.Context(), historyPath(ws.root))
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

// historyPath is empty outside a workspace; history is then not kept.
func historyPath(root string) string {
	if root == "" {
		return ""
	}
	return filepath.Join(root, logger.StateDir, "history")
}

type shellSession struct {
	out    io.Writer
	names  []string
	runner *usecase.RunLesson
}

func (s *shellSession) loop(ctx context.Context, histPath string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(s.complete)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	fmt.Fprintln(s.out, `primer shell. Type "help" for commands.`)
	for {
		input, err := ln.Prompt("primer> ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			break
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		if strings.TrimSpace(input) == "" {
			continue
		}
		ln.AppendHistory(input)

		if quit := s.exec(ctx, input); quit {
			break
		}
	}

	if histPath != "" {
		if err := os.MkdirAll(filepath.Dir(histPath), 0o755); err == nil {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}
	}
	return nil
}

// exec runs one shell line and reports whether the shell should exit.
func (s *shellSession) exec(ctx context.Context, input string) (quit bool) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true

	case "help":
		fmt.Fprint(s.out, shellHelp)

	case "list":
		for _, n := range s.names {
			fmt.Fprintln(s.out, n)
		}

	case "run":
		if len(fields) < 2 {
			fmt.Fprintln(s.out, "usage: run <lesson>...")
			return false
		}
		for _, name := range fields[1:] {
			tr, _, err := s.runner.Execute(ctx, name)
			if err != nil {
				logger.L().Warn("shell.run.failed", "lesson", name, "err", err)
				fmt.Fprintf(s.out, "error: %v\n", err)
				continue
			}
			logger.L().Info("shell.run.ok", "lesson", tr.Lesson, "lines", len(tr.Lines))
			_, _ = io.WriteString(s.out, tr.Text())
		}

	default:
		fmt.Fprintf(s.out, "unknown command %q. Type \"help\" for help.\n", fields[0])
	}
	return false
}

// complete offers command names for the first word and lesson names after
// "run".
func (s *shellSession) complete(line string) []string {
	fields := strings.Fields(line)
	trailingSpace := strings.HasSuffix(line, " ")

	if len(fields) == 0 || (len(fields) == 1 && !trailingSpace) {
		prefix := ""
		if len(fields) == 1 {
			prefix = strings.ToLower(fields[0])
		}
		var out []string
		for _, c := range shellCommands {
			if strings.HasPrefix(c, prefix) {
				out = append(out, c)
			}
		}
		return out
	}

	if strings.ToLower(fields[0]) != "run" {
		return nil
	}

	head := line
	prefix := ""
	if !trailingSpace {
		prefix = fields[len(fields)-1]
		head = line[:len(line)-len(prefix)]
	}

	var out []string
	for _, n := range s.names {
		if strings.HasPrefix(n, strings.ToLower(prefix)) {
			out = append(out, head+n)
		}
	}
	return out
}
