package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/primer/internal/buildinfo"
	"github.com/aalvaropc/primer/internal/infra/fsworkspace"
	"github.com/aalvaropc/primer/internal/infra/lessoncatalog"
	"github.com/aalvaropc/primer/internal/infra/logger"
	"github.com/aalvaropc/primer/internal/infra/workspacefinder"
	"github.com/aalvaropc/primer/internal/ui/tui"
)

func Execute() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// execute runs the root command and closes the workspace log on every exit
// path, including failed commands.
func execute(args []string, stdout, stderr io.Writer) error {
	cmd, closeLog := newRootCmd()
	defer closeLog()

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}

// newRootCmd returns the command tree and a func that closes whatever log
// file the run opened.
func newRootCmd() (*cobra.Command, func()) {
	var debug bool
	var cleanup func() error
	closeLog := func() {
		if cleanup != nil {
			_ = cleanup()
			cleanup = nil
		}
	}

	cmd := &cobra.Command{
		Use:          "primer",
		Short:        "primer - runnable Go walkthroughs with checkable transcripts",
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			cleanup = setupLogging(debug)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			deps := tui.Deps{
				WorkspaceLocator:     workspacefinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Catalog:              lessoncatalog.Default(),
				Logger:               logger.L(),
				Debug:                debug,
			}
			return tui.Run(deps)
		},
	}
	cmd.SetVersionTemplate(buildinfo.String() + "\n")

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .primer/logs/primer.log")

	cmd.AddCommand(
		lessonsCmd(),
		runCmd(),
		checkCmd(),
		initCmd(),
		shellCmd(),
		versionCmd(),
	)
	return cmd, closeLog
}

// setupLogging logs into the enclosing workspace, or nowhere when there is
// none.
func setupLogging(debug bool) func() error {
	wd, err := os.Getwd()
	if err != nil {
		logger.Discard()
		return nil
	}

	root, ok, _ := workspacefinder.NewFinder().Locate(wd)
	if !ok {
		logger.Discard()
		return nil
	}

	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: debug})
	if err != nil {
		return nil
	}
	return cleanup
}
