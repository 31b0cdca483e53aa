package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/infra/logger"
	"github.com/aalvaropc/primer/internal/usecase"
)

func checkCmd() *cobra.Command {
	var workspace string
	var workbook string
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "check",
		Short: "Run a workbook of lesson expectations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace, noSave)
			if err != nil {
				return err
			}

			path := resolveWorkbookPath(ws, workbook)
			log := logger.L()
			log.Info("check.start", "workbook", path, "workspace", ws.root)

			uc := usecase.NewCheckWorkbook(ws.workbooks, ws.catalog, ws.store)
			run, id, err := uc.Execute(cmd.Context(), path)
			if err != nil {
				log.Error("check.failed", "err", err)
				// Print what we have before reporting the error.
				_ = printCheck(cmd.OutOrStdout(), run, id, format)
				return err
			}

			for _, r := range run.Results {
				if r.Failed() {
					log.Warn("check.lesson.failed", "lesson", r.Lesson, "line_count", r.LineCount)
				}
			}

			if err := printCheck(cmd.OutOrStdout(), run, id, format); err != nil {
				return err
			}

			if fails := run.Failures(); fails > 0 {
				return fmt.Errorf("check failed (%d failed lesson(s))", fails)
			}
			log.Info("check.ok", "saved_id", id)
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&workbook, "workbook", "", "Workbook path (defaults to the workspace workbook, else the built-in one)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the check result under the workspace")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printCheck(w io.Writer, run domain.CheckRun, id string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"check_id": id,
			"check":    run,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyCheck(w, run, id)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyCheck(w io.Writer, run domain.CheckRun, id string) {
	total := run.EndedAt.Sub(run.StartedAt)
	if run.StartedAt.IsZero() || run.EndedAt.IsZero() {
		total = 0
	}

	fmt.Fprintf(w, "Workbook: %s\n", run.WorkbookName)
	fmt.Fprintf(w, "Path:     %s\n", run.WorkbookPath)
	fmt.Fprintf(w, "Started:  %s\n", run.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration: %s\n", total)
	if id != "" {
		fmt.Fprintf(w, "Check ID: %s\n", id)
	}
	fmt.Fprintln(w)

	for _, r := range run.Results {
		status := "OK"
		if r.Failed() {
			status = "FAIL"
		}

		fmt.Fprintf(w, "- [%s] %s (%d lines) %dms\n", status, r.Lesson, r.LineCount, r.DurationMS)

		if r.Error != nil {
			fmt.Fprintf(w, "  error: %s (%s)\n", r.Error.Message, r.Error.Kind)
		}

		if len(r.Assertions) > 0 {
			pass, fail := countAssertionPassFail(r.Assertions)
			fmt.Fprintf(w, "  assertions: %d pass / %d fail\n", pass, fail)
			for _, a := range r.Assertions {
				mark := "✓"
				if !a.Passed {
					mark = "✗"
				}
				fmt.Fprintf(w, "    %s %s: %s\n", mark, a.Name, a.Message)
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%d/%d lessons passed\n", len(run.Results)-run.Failures(), len(run.Results))
}

func countAssertionPassFail(in []domain.AssertionResult) (pass int, fail int) {
	for _, a := range in {
		if a.Passed {
			pass++
		} else {
			fail++
		}
	}
	return pass, fail
}
