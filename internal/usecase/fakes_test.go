package usecase

import (
	"fmt"
	"io"
	"strings"

	"github.com/aalvaropc/primer/internal/domain"
)

// --- fakes shared by the use case tests ---

type fakeCatalog struct {
	lessons map[string]domain.Lesson
	lookups []string
}

func newFakeCatalog(lessons ...domain.Lesson) *fakeCatalog {
	c := &fakeCatalog{lessons: map[string]domain.Lesson{}}
	for _, l := range lessons {
		c.lessons[l.Name] = l
	}
	return c
}

func (c *fakeCatalog) ListLessons() []domain.LessonRef {
	out := make([]domain.LessonRef, 0, len(c.lessons))
	for _, l := range c.lessons {
		out = append(out, l.LessonRef)
	}
	return out
}

func (c *fakeCatalog) Lookup(name string) (domain.Lesson, error) {
	c.lookups = append(c.lookups, name)
	l, ok := c.lessons[name]
	if !ok {
		return domain.Lesson{}, &domain.OpError{Op: "fake.lookup", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	}
	return l, nil
}

func printingLesson(name string, lines ...string) domain.Lesson {
	return domain.Lesson{
		LessonRef: domain.LessonRef{Name: name, Title: strings.ToUpper(name)},
		Run: func(w io.Writer) {
			for _, l := range lines {
				fmt.Fprintln(w, l)
			}
		},
	}
}

func panickingLesson(name string) domain.Lesson {
	return domain.Lesson{
		LessonRef: domain.LessonRef{Name: name},
		Run: func(w io.Writer) {
			fmt.Fprintln(w, "before")
			panic("boom")
		},
	}
}

type fakeStore struct {
	transcripts []domain.Transcript
	checks      []domain.CheckRun
	err         error
}

func (s *fakeStore) SaveTranscript(t domain.Transcript) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.transcripts = append(s.transcripts, t)
	return "tr-" + t.Lesson, nil
}

func (s *fakeStore) SaveCheck(run domain.CheckRun) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.checks = append(s.checks, run)
	return "check-1", nil
}

type fakeWorkbooks struct {
	wb     domain.Workbook
	err    error
	golden map[string]string
	asked  string
}

func (f *fakeWorkbooks) LoadWorkbook(path string) (domain.Workbook, error) {
	f.asked = path
	return f.wb, f.err
}

func (f *fakeWorkbooks) ReadGolden(_ domain.Workbook, ref string) (string, error) {
	s, ok := f.golden[ref]
	if !ok {
		return "", fmt.Errorf("golden %s: %w", ref, domain.ErrNotFound)
	}
	return s, nil
}

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec = spec
	f.force = force
	return nil
}
