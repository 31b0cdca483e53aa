package yamlworkbook

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/ports"
	"gopkg.in/yaml.v3"
)

// BuiltinPath is the Workbook.Path of the embedded workbook.
const BuiltinPath = "<builtin>"

//go:embed default_workbook.yaml
var defaultWorkbook []byte

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.WorkbookLoader = (*Loader)(nil)

// LoadWorkbook reads the workbook at path, or the embedded one when path is
// empty.
func (l *Loader) LoadWorkbook(path string) (domain.Workbook, error) {
	if strings.TrimSpace(path) == "" {
		return Parse(BuiltinPath, defaultWorkbook)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Workbook{}, &domain.OpError{
			Op:   "yamlworkbook.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return Parse(path, b)
}

// ReadGolden resolves ref against the workbook's directory. The embedded
// workbook has no directory, so golden refs only work for files on disk.
func (l *Loader) ReadGolden(wb domain.Workbook, ref string) (string, error) {
	if wb.Path == BuiltinPath || wb.Path == "" {
		return "", &domain.OpError{
			Op:   "yamlworkbook.golden",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("builtin workbook cannot reference golden files"),
		}
	}

	path := ref
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(wb.Path), filepath.FromSlash(ref))
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &domain.OpError{
			Op:   "yamlworkbook.golden",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return string(b), nil
}

// Parse decodes and validates workbook YAML.
func Parse(path string, b []byte) (domain.Workbook, error) {
	var yw yamlWorkbook
	if err := yaml.Unmarshal(b, &yw); err != nil {
		return domain.Workbook{}, &domain.OpError{
			Op:   "yamlworkbook.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return mapAndValidate(path, yw)
}

type yamlWorkbook struct {
	Name    string       `yaml:"name"`
	Lessons []yamlLesson `yaml:"lessons"`
}

type yamlLesson struct {
	Lesson string     `yaml:"lesson"`
	Expect yamlExpect `yaml:"expect"`
}

type yamlExpect struct {
	Lines    *int                             `yaml:"lines"`
	Contains []string                         `yaml:"contains"`
	Golden   string                           `yaml:"golden"`
	JSONPath map[string]yamlJSONPathAssertion `yaml:"jsonpath"`
}

type yamlJSONPathAssertion struct {
	Exists   bool     `yaml:"exists"`
	Eq       *string  `yaml:"eq"`
	Contains *string  `yaml:"contains"`
	Matches  *string  `yaml:"matches"`
	Gt       *float64 `yaml:"gt"`
	Lt       *float64 `yaml:"lt"`
}

func mapAndValidate(path string, yw yamlWorkbook) (domain.Workbook, error) {
	name := strings.TrimSpace(yw.Name)
	if name == "" {
		return domain.Workbook{}, invalidField(path, "name", "workbook name is required")
	}
	if len(yw.Lessons) == 0 {
		return domain.Workbook{}, invalidField(path, "lessons", "at least one lesson is required")
	}

	wb := domain.Workbook{
		Name:   name,
		Path:   path,
		Checks: make([]domain.LessonCheck, 0, len(yw.Lessons)),
	}

	for i, yl := range yw.Lessons {
		fieldPrefix := fmt.Sprintf("lessons[%d]", i)

		lesson := strings.TrimSpace(yl.Lesson)
		if lesson == "" {
			return domain.Workbook{}, invalidField(path, fieldPrefix+".lesson", "lesson name is required")
		}
		if yl.Expect.Lines != nil && *yl.Expect.Lines < 0 {
			return domain.Workbook{}, invalidField(path, fieldPrefix+".expect.lines", "must not be negative")
		}

		wb.Checks = append(wb.Checks, domain.LessonCheck{
			Lesson: lesson,
			Expect: domain.ExpectSpec{
				Lines:    yl.Expect.Lines,
				Contains: yl.Expect.Contains,
				Golden:   strings.TrimSpace(yl.Expect.Golden),
				JSONPath: mapJSONPath(yl.Expect.JSONPath),
			},
		})
	}

	return wb, nil
}

func mapJSONPath(in map[string]yamlJSONPathAssertion) map[string]domain.JSONPathAssertion {
	out := make(map[string]domain.JSONPathAssertion, len(in))
	for k, v := range in {
		out[k] = domain.JSONPathAssertion{
			Exists:   v.Exists,
			Eq:       v.Eq,
			Contains: v.Contains,
			Matches:  v.Matches,
			Gt:       v.Gt,
			Lt:       v.Lt,
		}
	}
	return out
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlworkbook.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s", field, msg),
	}
}
