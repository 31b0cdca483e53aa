package usecase

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/ports"
)

type RunLesson struct {
	catalog ports.LessonCatalog
	store   ports.ArtifactStore
	now     func() time.Time
}

// NewRunLesson wires the use case. store may be nil to skip persistence.
func NewRunLesson(catalog ports.LessonCatalog, store ports.ArtifactStore) *RunLesson {
	return &RunLesson{
		catalog: catalog,
		store:   store,
		now:     time.Now,
	}
}

// Execute runs one lesson and returns its transcript plus the saved
// artifact id ("" when nothing was saved).
func (uc *RunLesson) Execute(ctx context.Context, name string) (domain.Transcript, string, error) {
	tr, err := uc.capture(ctx, name)
	if err != nil {
		return tr, "", err
	}

	if uc.store == nil {
		return tr, "", nil
	}
	id, err := uc.store.SaveTranscript(tr)
	if err != nil {
		return tr, "", err
	}
	return tr, id, nil
}

// capture runs the lesson without persisting anything.
func (uc *RunLesson) capture(ctx context.Context, name string) (domain.Transcript, error) {
	if err := ctx.Err(); err != nil {
		return domain.Transcript{Lesson: name}, err
	}

	lesson, err := uc.catalog.Lookup(name)
	if err != nil {
		return domain.Transcript{Lesson: name}, err
	}

	tr := domain.Transcript{
		Lesson:    lesson.Name,
		Title:     lesson.Title,
		StartedAt: uc.now(),
	}

	var buf bytes.Buffer
	err = runGuarded(lesson, &buf)
	tr.EndedAt = uc.now()
	tr.Lines = splitLines(buf.String())
	return tr, err
}

// runGuarded turns a lesson panic into a *domain.PanicError.
func runGuarded(lesson domain.Lesson, buf *bytes.Buffer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &domain.PanicError{Lesson: lesson.Name, Value: r}
		}
	}()
	lesson.Run(buf)
	return nil
}

func splitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
