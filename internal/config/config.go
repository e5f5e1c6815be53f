package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds project-level settings loaded from userstore.yml.
type ProjectConfig struct {
	SeedFiles []string `yaml:"seedFiles,omitempty"`
	Verbose   bool     `yaml:"verbose,omitempty"`
}

// Load attempts to read userstore.yml or userstore.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range []string{"userstore.yml", "userstore.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &ProjectConfig{}, nil
}

// ResolveSeedFiles returns the configured seed files with relative paths
// resolved against dir.
func (c *ProjectConfig) ResolveSeedFiles(dir string) []string {
	out := make([]string, 0, len(c.SeedFiles))
	for _, p := range c.SeedFiles {
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		out = append(out, p)
	}
	return out
}
