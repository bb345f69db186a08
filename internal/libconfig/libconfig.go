// Package libconfig models lib.config.json: the file a publishable
// directory carries describing its name, version, and dependencies.
package libconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const FileName = "lib.config.json"

// Config is the parsed lib.config.json. Dependencies maps a LibraryName
// string to a VersionConstraint string.
type Config struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Description  string            `json:"description,omitempty"`
	Language     string            `json:"language,omitempty"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// Load reads and parses lib.config.json from dir, validating that the
// required fields (name, version) are present.
func Load(dir string) (Config, error) {
	path := filepath.Join(dir, FileName)
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Name == "" {
		return Config{}, fmt.Errorf("%s is missing required field \"name\"", path)
	}
	if cfg.Version == "" {
		return Config{}, fmt.Errorf("%s is missing required field \"version\"", path)
	}
	return cfg, nil
}

// Template returns the starter config `tpkm init` writes.
func Template(name string) Config {
	return Config{
		Name:         name,
		Version:      "0.1.0",
		Description:  "",
		Language:     "",
		Dependencies: map[string]string{},
	}
}

// WriteTemplate writes Template(name) to dir/lib.config.json. It refuses
// to overwrite an existing file; the caller is responsible for confirming
// an overwrite first if that is ever wanted.
func WriteTemplate(dir, name string) error {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	raw, err := json.MarshalIndent(Template(name), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding template: %w", err)
	}
	return os.WriteFile(path, raw, 0o644)
}
