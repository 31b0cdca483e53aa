package domain

// Config represents the primer configuration loaded from primer.yaml.
type Config struct {
	Defaults    DefaultsConfig
	Paths       PathsConfig
	Transcripts TranscriptsConfig
}

type DefaultsConfig struct {
	Format   string
	Workbook string
}

type PathsConfig struct {
	TranscriptsDir string
}

type TranscriptsConfig struct {
	Save  bool
	Index bool
}

// DefaultConfig provides sane defaults if primer.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Format:   "plain",
			Workbook: "workbook.yaml",
		},
		Paths: PathsConfig{
			TranscriptsDir: "transcripts",
		},
		Transcripts: TranscriptsConfig{
			Save:  true,
			Index: true,
		},
	}
}

// WorkspaceSpec describes where and how to scaffold a workspace.
type WorkspaceSpec struct {
	Root string
	Git  bool
}
