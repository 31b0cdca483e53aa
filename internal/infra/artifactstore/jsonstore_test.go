package artifactstore

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aalvaropc/primer/internal/domain"
)

var start = time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)

func TestSaveTranscript_CreatesJSONFile(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig())

	tr := domain.Transcript{
		Lesson:    "flow_of_control",
		Title:     "Flow of control",
		StartedAt: start,
		EndedAt:   start.Add(time.Millisecond),
		Lines:     []string{"Haha, one!"},
	}

	id, err := store.SaveTranscript(tr)
	if err != nil {
		t.Fatalf("SaveTranscript error: %v", err)
	}
	if id != "20260203T101112.000Z_flow-of-control" {
		t.Fatalf("unexpected id %q", id)
	}

	b, err := os.ReadFile(filepath.Join(tmp, "transcripts", id+".json"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var got domain.Transcript
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Lesson != tr.Lesson || len(got.Lines) != 1 || got.Lines[0] != "Haha, one!" {
		t.Fatalf("unexpected saved transcript %+v", got)
	}
}

func TestSaveCheck_WritesUnderChecksAndIndexes(t *testing.T) {
	tmp := t.TempDir()
	cfg := domain.DefaultConfig()
	cfg.Paths.TranscriptsDir = "out"
	store := NewJSONStore(tmp, cfg)

	run := domain.CheckRun{
		WorkbookPath: "books/Self Check.yaml",
		StartedAt:    start,
		Results: []domain.LessonResult{
			{Lesson: "bindings", Assertions: []domain.AssertionResult{{Name: "lines", Passed: false}}},
		},
	}
	id, err := store.SaveCheck(run)
	if err != nil {
		t.Fatalf("SaveCheck error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmp, "out", "checks", id+".json")); err != nil {
		t.Fatalf("expected check file: %v", err)
	}

	entries := readIndex(t, filepath.Join(tmp, "out", "index.jsonl"))
	if len(entries) != 1 {
		t.Fatalf("expected 1 index entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Kind != "check" || e.Name != "Self Check" || e.Failures != 1 {
		t.Fatalf("unexpected index entry %+v", e)
	}
	if e.File != "checks/"+id+".json" {
		t.Fatalf("unexpected index file %q", e.File)
	}
}

func TestSave_IndexDisabled(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithIndex(false))

	if _, err := store.SaveTranscript(domain.Transcript{Lesson: "bindings", StartedAt: start}); err != nil {
		t.Fatalf("SaveTranscript error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmp, "transcripts", "index.jsonl")); !os.IsNotExist(err) {
		t.Fatalf("expected no index file, err=%v", err)
	}
}

func TestSaveTranscript_ZeroStartUsesNow(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithNow(func() time.Time { return start }))

	id, err := store.SaveTranscript(domain.Transcript{})
	if err != nil {
		t.Fatalf("SaveTranscript error: %v", err)
	}
	if id != "20260203T101112.000Z_lesson" {
		t.Fatalf("unexpected id %q", id)
	}
}

func TestSaveTranscript_SameInstantGetsDistinctFiles(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig())

	var ids []string
	for _, line := range []string{"first", "second", "third"} {
		id, err := store.SaveTranscript(domain.Transcript{Lesson: "bindings", StartedAt: start, Lines: []string{line}})
		if err != nil {
			t.Fatalf("SaveTranscript error: %v", err)
		}
		ids = append(ids, id)
	}

	want := []string{
		"20260203T101112.000Z_bindings",
		"20260203T101112.000Z_bindings-2",
		"20260203T101112.000Z_bindings-3",
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids = %v, want %v", ids, want)
		}
	}

	for i, line := range []string{"first", "second", "third"} {
		b, err := os.ReadFile(filepath.Join(tmp, "transcripts", ids[i]+".json"))
		if err != nil {
			t.Fatalf("read %s: %v", ids[i], err)
		}
		var got domain.Transcript
		if err := json.Unmarshal(b, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", ids[i], err)
		}
		if len(got.Lines) != 1 || got.Lines[0] != line {
			t.Fatalf("%s holds %v, want [%s]", ids[i], got.Lines, line)
		}
	}

	entries := readIndex(t, filepath.Join(tmp, "transcripts", "index.jsonl"))
	if len(entries) != 3 {
		t.Fatalf("expected 3 index entries, got %d", len(entries))
	}
	seen := map[string]bool{}
	for _, e := range entries {
		if seen[e.File] {
			t.Fatalf("index lists %q twice", e.File)
		}
		seen[e.File] = true
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Demo API":          "demo-api",
		"  flow_of_control": "flow-of-control",
		"a--b..c":           "a-b-c",
		"!!!":               "",
		"":                  "",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func readIndex(t *testing.T, path string) []indexEntry {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	defer f.Close()

	var out []indexEntry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e indexEntry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("bad index line %q: %v", sc.Text(), err)
		}
		out = append(out, e)
	}
	return out
}
