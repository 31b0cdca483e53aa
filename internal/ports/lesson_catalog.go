package ports

import "github.com/aalvaropc/primer/internal/domain"

// LessonCatalog exposes the registered lessons in presentation order.
type LessonCatalog interface {
	ListLessons() []domain.LessonRef
	// Lookup accepts an exact name or an unambiguous prefix.
	Lookup(name string) (domain.Lesson, error)
}
