// Package domain contains the core domain model for primer.
//
// The domain does not depend on YAML parsing, the terminal or the filesystem.
// Infra/adapters map into/from these types. Lesson bodies live under
// internal/lessons and are referenced here only through Lesson.Run.
package domain
