package lessoncatalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/lessons/bindings"
	"github.com/aalvaropc/primer/internal/lessons/customtypes"
	"github.com/aalvaropc/primer/internal/lessons/flowcontrol"
	"github.com/aalvaropc/primer/internal/lessons/formatting"
	"github.com/aalvaropc/primer/internal/lessons/primitives"
	"github.com/aalvaropc/primer/internal/ports"
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Catalog is an in-memory lesson registry that keeps registration order.
type Catalog struct {
	lessons *linkedhashmap.Map
}

func New() *Catalog {
	return &Catalog{lessons: linkedhashmap.New()}
}

// Default returns the catalog of built-in lessons in presentation order.
func Default() *Catalog {
	c := New()
	c.MustRegister(domain.Lesson{
		LessonRef: domain.LessonRef{
			Name:    "custom_types",
			Title:   "Custom types",
			Summary: "Structs, tagged unions, enums with values, a linked list and constants.",
			Tags:    []string{"types", "structs", "enums"},
		},
		Run: customtypes.Run,
	})
	c.MustRegister(domain.Lesson{
		LessonRef: domain.LessonRef{
			Name:    "flow_of_control",
			Title:   "Flow of control",
			Summary: "Branches, loops, FizzBuzz three ways, iteration and pattern matching.",
			Tags:    []string{"loops", "matching"},
		},
		Run: flowcontrol.Run,
	})
	c.MustRegister(domain.Lesson{
		LessonRef: domain.LessonRef{
			Name:    "formatting",
			Title:   "Formatted print",
			Summary: "Positional and named placeholders, radix, padding, precision and debug output.",
			Tags:    []string{"fmt"},
		},
		Run: formatting.Run,
	})
	c.MustRegister(domain.Lesson{
		LessonRef: domain.LessonRef{
			Name:    "primitives",
			Title:   "Primitives",
			Summary: "Literals, tuples, arrays, slices and bounds-checked access.",
			Tags:    []string{"types", "slices"},
		},
		Run: primitives.Run,
	})
	c.MustRegister(domain.Lesson{
		LessonRef: domain.LessonRef{
			Name:    "bindings",
			Title:   "Variable bindings",
			Summary: "Mutability, scope, shadowing and declare-first bindings.",
			Tags:    []string{"scope"},
		},
		Run: bindings.Run,
	})
	return c
}

var _ ports.LessonCatalog = (*Catalog)(nil)

// Register adds a lesson. Names are normalized and must be unique.
func (c *Catalog) Register(l domain.Lesson) error {
	key := normalize(l.Name)
	if key == "" {
		return &domain.OpError{Op: "lessoncatalog.register", Kind: domain.KindInvalidConfig, Err: errors.New("lesson name is required")}
	}
	if l.Run == nil {
		return &domain.OpError{Op: "lessoncatalog.register", Kind: domain.KindInvalidConfig, Err: fmt.Errorf("lesson %q has no body", l.Name)}
	}
	if _, exists := c.lessons.Get(key); exists {
		return &domain.OpError{Op: "lessoncatalog.register", Kind: domain.KindInvalidConfig, Err: fmt.Errorf("lesson %q already registered", l.Name)}
	}
	c.lessons.Put(key, l)
	return nil
}

func (c *Catalog) MustRegister(l domain.Lesson) {
	if err := c.Register(l); err != nil {
		panic(err)
	}
}

func (c *Catalog) ListLessons() []domain.LessonRef {
	out := make([]domain.LessonRef, 0, c.lessons.Size())
	it := c.lessons.Iterator()
	for it.Next() {
		out = append(out, it.Value().(domain.Lesson).LessonRef)
	}
	return out
}

// Names lists the registered lesson names in order.
func (c *Catalog) Names() []string {
	refs := c.ListLessons()
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.Name
	}
	return out
}

// Lookup matches case-insensitively, treating '-' and '_' alike. An exact
// name wins; otherwise the name must be a prefix of exactly one lesson.
func (c *Catalog) Lookup(name string) (domain.Lesson, error) {
	key := normalize(name)
	if key == "" {
		return domain.Lesson{}, &domain.OpError{
			Op:   "lessoncatalog.lookup",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("lesson name is required"),
		}
	}

	if v, ok := c.lessons.Get(key); ok {
		return v.(domain.Lesson), nil
	}

	var matches []domain.Lesson
	it := c.lessons.Iterator()
	for it.Next() {
		if strings.HasPrefix(it.Key().(string), key) {
			matches = append(matches, it.Value().(domain.Lesson))
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return domain.Lesson{}, &domain.OpError{
			Op:   "lessoncatalog.lookup",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("lesson %q: %w", name, domain.ErrNotFound),
		}
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		sort.Strings(names)
		return domain.Lesson{}, &domain.OpError{
			Op:   "lessoncatalog.lookup",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("lesson %q is ambiguous: %s", name, strings.Join(names, ", ")),
		}
	}
}

func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}
