// Package projectconfig loads optional per-project command defaults from
// .archplan/config.yaml.
package projectconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

const DefaultPath = ".archplan/config.yaml"

type Config struct {
	Catalog CatalogDefaults `yaml:"catalog"`
	Export  ExportDefaults  `yaml:"export"`
	Serve   ServeDefaults   `yaml:"serve"`
}

type CatalogDefaults struct {
	Path    string `yaml:"path"`
	Profile string `yaml:"profile"`
}

type ExportDefaults struct {
	OutDir string `yaml:"out_dir"`
}

type ServeDefaults struct {
	Listen string `yaml:"listen"`
}

// Load reads the project config at path. A missing file is not an error when
// allowMissing is set; an empty file yields the zero config.
func Load(path string, allowMissing bool) (Config, error) {
	trimmedPath := strings.TrimSpace(path)
	if trimmedPath == "" {
		return Config{}, fmt.Errorf("project config path is required")
	}

	// #nosec G304 -- project config path is explicit local user input.
	content, err := os.ReadFile(trimmedPath)
	if err != nil {
		if os.IsNotExist(err) && allowMissing {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read project config: %w", err)
	}
	if len(strings.TrimSpace(string(content))) == 0 {
		return Config{}, nil
	}

	var configuration Config
	if err := yaml.Unmarshal(content, &configuration); err != nil {
		return Config{}, fmt.Errorf("parse project config: %w", err)
	}
	configuration.normalize()
	return configuration, nil
}

func (configuration *Config) normalize() {
	configuration.Catalog.Path = strings.TrimSpace(configuration.Catalog.Path)
	configuration.Catalog.Profile = strings.TrimSpace(configuration.Catalog.Profile)
	configuration.Export.OutDir = strings.TrimSpace(configuration.Export.OutDir)
	configuration.Serve.Listen = strings.TrimSpace(configuration.Serve.Listen)
}
