package usecase

import (
	"context"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/ports"
	ucassert "github.com/aalvaropc/primer/internal/usecase/assert"
)

type CheckWorkbook struct {
	workbooks ports.WorkbookLoader
	runner    *RunLesson
	store     ports.ArtifactStore
}

// NewCheckWorkbook wires the use case. store may be nil to skip persistence.
func NewCheckWorkbook(wl ports.WorkbookLoader, catalog ports.LessonCatalog, store ports.ArtifactStore) *CheckWorkbook {
	return &CheckWorkbook{
		workbooks: wl,
		runner:    NewRunLesson(catalog, nil),
		store:     store,
	}
}

// Execute loads the workbook at path ("" for the built-in one), runs every
// listed lesson in order and evaluates its expectations. A lesson that fails
// to run is recorded with a RunError and the rest still run. Cancellation
// stops the loop and returns the partial run with ctx's error.
func (uc *CheckWorkbook) Execute(ctx context.Context, path string) (domain.CheckRun, string, error) {
	wb, err := uc.workbooks.LoadWorkbook(path)
	if err != nil {
		return domain.CheckRun{}, "", err
	}

	run := domain.CheckRun{
		WorkbookName: wb.Name,
		WorkbookPath: wb.Path,
		StartedAt:    uc.runner.now(),
		Results:      make([]domain.LessonResult, 0, len(wb.Checks)),
	}

	readGolden := func(ref string) (string, error) {
		return uc.workbooks.ReadGolden(wb, ref)
	}

	for _, check := range wb.Checks {
		if err := ctx.Err(); err != nil {
			run.EndedAt = uc.runner.now()
			return run, "", err
		}
		run.Results = append(run.Results, uc.checkOne(ctx, check, readGolden))
	}

	run.EndedAt = uc.runner.now()

	if uc.store == nil {
		return run, "", nil
	}
	id, err := uc.store.SaveCheck(run)
	if err != nil {
		return run, "", err
	}
	return run, id, nil
}

func (uc *CheckWorkbook) checkOne(ctx context.Context, check domain.LessonCheck, readGolden ucassert.GoldenReader) domain.LessonResult {
	tr, err := uc.runner.capture(ctx, check.Lesson)

	res := domain.LessonResult{
		Lesson:     tr.Lesson,
		LineCount:  len(tr.Lines),
		DurationMS: tr.EndedAt.Sub(tr.StartedAt).Milliseconds(),
		Assertions: []domain.AssertionResult{},
	}
	if err != nil {
		res.Error = domain.NewRunError(err)
		return res
	}

	res.Assertions = ucassert.Evaluate(check.Expect, tr, readGolden)
	return res
}
