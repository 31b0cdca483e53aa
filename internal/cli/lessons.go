package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/infra/lessoncatalog"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

func lessonsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "lessons",
		Short: "List the available lessons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printLessons(cmd.OutOrStdout(), lessoncatalog.Default().ListLessons(), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return cmd
}

func printLessons(w io.Writer, refs []domain.LessonRef, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(refs)
	case "pretty", "":
		width := 0
		for _, r := range refs {
			width = max(width, len(r.Name))
		}
		for _, r := range refs {
			fmt.Fprintf(w, "%s  %s\n", headerStyle.Render(r.Name+strings.Repeat(" ", width-len(r.Name))), r.Title)
			fmt.Fprintf(w, "%s  %s\n", strings.Repeat(" ", width), r.Summary)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
