package lessoncatalog_test

import (
	"context"
	"testing"

	"github.com/aalvaropc/primer/internal/infra/lessoncatalog"
	"github.com/aalvaropc/primer/internal/infra/yamlworkbook"
	"github.com/aalvaropc/primer/internal/usecase"
)

// The built-in workbook describes the real lesson output, so it must pass.
func TestBuiltinWorkbookPasses(t *testing.T) {
	uc := usecase.NewCheckWorkbook(yamlworkbook.NewLoader(), lessoncatalog.Default(), nil)

	run, _, err := uc.Execute(context.Background(), "")
	if err != nil {
		t.Fatalf("check error: %v", err)
	}
	if len(run.Results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(run.Results))
	}
	for _, r := range run.Results {
		if r.Error != nil {
			t.Errorf("%s: %s", r.Lesson, r.Error.Message)
		}
		for _, a := range r.Assertions {
			if !a.Passed {
				t.Errorf("%s: %s: %s", r.Lesson, a.Name, a.Message)
			}
		}
	}
}

func TestEveryLessonRunsCleanly(t *testing.T) {
	cat := lessoncatalog.Default()
	uc := usecase.NewRunLesson(cat, nil)
	for _, name := range cat.Names() {
		tr, _, err := uc.Execute(context.Background(), name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(tr.Lines) == 0 {
			t.Fatalf("%s: empty transcript", name)
		}
	}
}
