package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/infra/logger"
	"github.com/aalvaropc/primer/internal/usecase"
)

func runCmd() *cobra.Command {
	var workspace string
	var all bool
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "run <lesson>... | --all",
		Short: "Run lessons and print their transcripts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) > 0) {
				return errors.New("name one or more lessons, or pass --all")
			}

			ws, err := loadWorkspace(workspace, noSave)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				format = ws.cfg.Defaults.Format
			}
			if err := validateRunFormat(format); err != nil {
				return err
			}

			names := args
			if all {
				names = ws.catalog.Names()
			}

			uc := usecase.NewRunLesson(ws.catalog, ws.store)
			log := logger.L()

			var runs []savedTranscript
			for _, name := range names {
				tr, id, err := uc.Execute(cmd.Context(), name)
				if err != nil {
					log.Error("lesson.run.failed", "lesson", name, "err", err)
					return err
				}
				log.Info("lesson.run.ok", "lesson", tr.Lesson, "lines", len(tr.Lines), "saved_id", id)
				runs = append(runs, savedTranscript{ID: id, Transcript: tr})
			}

			return printTranscripts(cmd.OutOrStdout(), runs, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().BoolVar(&all, "all", false, "Run every lesson in catalog order")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save transcripts under the workspace")
	c.Flags().StringVar(&format, "format", "plain", "Output format: plain|pretty|json (default from primer.yaml)")
	return c
}

type savedTranscript struct {
	ID         string            `json:"id,omitempty"`
	Transcript domain.Transcript `json:"transcript"`
}

func validateRunFormat(format string) error {
	switch format {
	case "plain", "pretty", "json", "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected plain|pretty|json)", format)
	}
}

func printTranscripts(w io.Writer, runs []savedTranscript, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	case "pretty":
		for i, r := range runs {
			if i > 0 {
				fmt.Fprintln(w)
			}
			tr := r.Transcript
			fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("== %s (%s) ==", tr.Title, tr.Lesson)))
			for _, l := range tr.Lines {
				fmt.Fprintf(w, "  %s\n", l)
			}
			fmt.Fprintf(w, "-- %d lines in %s", len(tr.Lines), tr.EndedAt.Sub(tr.StartedAt))
			if r.ID != "" {
				fmt.Fprintf(w, ", saved as %s", r.ID)
			}
			fmt.Fprintln(w)
		}
		return nil
	case "plain", "":
		for _, r := range runs {
			io.WriteString(w, r.Transcript.Text())
		}
		return nil
	default:
		return validateRunFormat(format)
	}
}
