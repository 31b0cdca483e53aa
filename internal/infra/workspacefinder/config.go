package workspacefinder

import (
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/aalvaropc/primer/internal/domain"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the marker file that identifies a workspace root.
const ConfigFile = "primer.yaml"

// LoadConfig loads primer.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	cfg, err := ParseConfig(b)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}

// ParseConfig decodes primer.yaml content. Fields left empty take their
// values from domain.DefaultConfig.
func ParseConfig(b []byte) (domain.Config, error) {
	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return domain.DefaultConfig(), err
	}

	cfg := domain.Config{
		Defaults: domain.DefaultsConfig{
			Format:   y.Primer.Defaults.Format,
			Workbook: y.Primer.Defaults.Workbook,
		},
		Paths: domain.PathsConfig{
			TranscriptsDir: y.Primer.Paths.TranscriptsDir,
		},
	}
	if err := mergo.Merge(&cfg, domain.DefaultConfig()); err != nil {
		return domain.DefaultConfig(), err
	}

	// Booleans default to true, so an explicit false must win over the merge.
	if y.Primer.Transcripts.Save != nil {
		cfg.Transcripts.Save = *y.Primer.Transcripts.Save
	}
	if y.Primer.Transcripts.Index != nil {
		cfg.Transcripts.Index = *y.Primer.Transcripts.Index
	}

	return cfg, nil
}

type yamlConfig struct {
	Primer struct {
		Defaults struct {
			Format   string `yaml:"format"`
			Workbook string `yaml:"workbook"`
		} `yaml:"defaults"`

		Paths struct {
			TranscriptsDir string `yaml:"transcripts_dir"`
		} `yaml:"paths"`

		Transcripts struct {
			Save  *bool `yaml:"save"`
			Index *bool `yaml:"index"`
		} `yaml:"transcripts"`
	} `yaml:"primer"`
}
