package artifactstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/ports"
)

const (
	defaultTranscriptsDir = "transcripts"
	checksDir             = "checks"
	indexFile             = "index.jsonl"
)

// JSONStore writes one pretty-printed JSON file per artifact under
// <root>/<transcripts_dir>, with check runs in a checks/ subdirectory.
type JSONStore struct {
	rootDir    string
	dirName    string
	writeIndex bool
	now        func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a JSONL index: <transcripts_dir>/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Paths.TranscriptsDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultTranscriptsDir
	}

	s := &JSONStore{
		rootDir:    root,
		dirName:    dir,
		writeIndex: cfg.Transcripts.Index,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ArtifactStore = (*JSONStore)(nil)

type indexEntry struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	File      string    `json:"file"`
	Name      string    `json:"name"`
	Lines     int       `json:"lines,omitempty"`
	Failures  int       `json:"failures,omitempty"`
	StartedAt time.Time `json:"started_at"`
}

func (s *JSONStore) SaveTranscript(t domain.Transcript) (string, error) {
	ts := s.stamp(t.StartedAt)
	if t.StartedAt.IsZero() {
		t.StartedAt = ts
	}

	id, file, err := s.write("", ts, t.Lesson, "lesson", t)
	if err != nil {
		return "", err
	}
	s.appendIndex(indexEntry{
		ID:        id,
		Kind:      "transcript",
		File:      file,
		Name:      t.Lesson,
		Lines:     len(t.Lines),
		StartedAt: t.StartedAt,
	})
	return id, nil
}

func (s *JSONStore) SaveCheck(run domain.CheckRun) (string, error) {
	ts := s.stamp(run.StartedAt)
	if run.StartedAt.IsZero() {
		run.StartedAt = ts
	}

	name := run.WorkbookName
	if strings.TrimSpace(name) == "" {
		name = strings.TrimSuffix(filepath.Base(run.WorkbookPath), filepath.Ext(run.WorkbookPath))
	}

	id, file, err := s.write(checksDir, ts, name, "check", run)
	if err != nil {
		return "", err
	}
	s.appendIndex(indexEntry{
		ID:        id,
		Kind:      "check",
		File:      filepath.ToSlash(filepath.Join(checksDir, file)),
		Name:      name,
		Failures:  run.Failures(),
		StartedAt: run.StartedAt,
	})
	return id, nil
}

func (s *JSONStore) stamp(t time.Time) time.Time {
	if t.IsZero() {
		t = s.now()
	}
	return t.UTC()
}

// write marshals v to <dir>/<sub>/<ts>_<slug>.json via a temp file + rename.
// Names already taken get a -2, -3, ... suffix.
func (s *JSONStore) write(sub string, ts time.Time, name, fallback string, v any) (id, filename string, err error) {
	dir := filepath.Join(s.rootDir, s.dirName, sub)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", &domain.OpError{
			Op:   "artifactstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", "", &domain.OpError{
			Op:   "artifactstore.marshal",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	slug := slugify(name)
	if slug == "" {
		slug = fallback
	}
	id, err = reserve(dir, fmt.Sprintf("%s_%s", ts.Format("20060102T150405.000Z"), slug))
	if err != nil {
		return "", "", err
	}
	filename = id + ".json"
	path := filepath.Join(dir, filename)

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		_ = os.Remove(path)
		return "", "", &domain.OpError{
			Op:   "artifactstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		_ = os.Remove(path)
		return "", "", &domain.OpError{
			Op:   "artifactstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return id, filename, nil
}

const maxNameAttempts = 1000

// reserve creates an empty <dir>/<base>.json exclusively and returns the id
// it claimed. The caller replaces the placeholder with the real content.
func reserve(dir, base string) (string, error) {
	for i := 1; i <= maxNameAttempts; i++ {
		id := base
		if i > 1 {
			id = fmt.Sprintf("%s-%d", base, i)
		}
		path := filepath.Join(dir, id+".json")

		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", &domain.OpError{
				Op:   "artifactstore.reserve",
				Kind: domain.KindExecution,
				Path: path,
				Err:  err,
			}
		}
		_ = f.Close()
		return id, nil
	}
	return "", &domain.OpError{
		Op:   "artifactstore.reserve",
		Kind: domain.KindExecution,
		Path: filepath.Join(dir, base+".json"),
		Err:  fmt.Errorf("no free name after %d attempts", maxNameAttempts),
	}
}

// appendIndex is best effort: a broken index never fails a save.
func (s *JSONStore) appendIndex(e indexEntry) {
	if !s.writeIndex {
		return
	}
	line, err := json.Marshal(e)
	if err != nil {
		return
	}

	path := filepath.Join(s.rootDir, s.dirName, indexFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))

	lastDash := true
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
