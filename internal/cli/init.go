package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/primer/internal/infra/fsworkspace"
	"github.com/aalvaropc/primer/internal/infra/logger"
	"github.com/aalvaropc/primer/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool
	var git bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a primer workspace (primer.yaml, workbook, golden files)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := path
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				root = wd
			}
			root, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force, git); err != nil {
				logger.L().Error("workspace.init.failed", "root", root, "err", err)
				return err
			}
			logger.L().Info("workspace.init.ok", "root", root, "git", git)

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized primer workspace in %s\n", root)
			if git {
				fmt.Fprintln(cmd.OutOrStdout(), "Git repository ready.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Directory to initialize (default: current directory)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing template files")
	cmd.Flags().BoolVar(&git, "git", false, "Also create a git repository")
	return cmd
}
