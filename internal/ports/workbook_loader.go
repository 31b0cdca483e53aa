package ports

import "github.com/aalvaropc/primer/internal/domain"

// WorkbookLoader loads a workbook from a source (e.g., filesystem).
// An empty path selects the built-in workbook.
type WorkbookLoader interface {
	LoadWorkbook(path string) (domain.Workbook, error)
	// ReadGolden returns the golden transcript referenced by a workbook.
	ReadGolden(wb domain.Workbook, ref string) (string, error)
}
