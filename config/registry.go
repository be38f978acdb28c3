package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LogFileName is the name of the operation log kept next to the release configurations
const LogFileName = "BM_log"

// ReleaseLine describes one selectable release configuration in the registry
type ReleaseLine struct {
	File string `yaml:"file"`
	Name string `yaml:"name,omitempty"` // Optional display name; defaults to the file name without its suffix
}

// DisplayName returns the name shown in the selection menu
func (l ReleaseLine) DisplayName() string {
	if l.Name != "" {
		return l.Name
	}
	return strings.TrimSuffix(l.File, filepath.Ext(l.File))
}

// Registry lists the release lines available for tagging, in menu order.
// Menu keys are the 1-based positions of the entries.
type Registry struct {
	Dir   string        `yaml:"-"` // Directory containing the registry, the XML files and the log
	Lines []ReleaseLine `yaml:"lines"`
}

// ReadRegistry reads and parses the release-line registry file
func ReadRegistry(registryPath string) (*Registry, error) {
	absPath, err := filepath.Abs(registryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path: %v", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %v", err)
	}

	var registry Registry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("failed to parse registry file: %v", err)
	}

	registry.Dir = filepath.Dir(absPath)
	return &registry, nil
}

// Lookup returns the release line behind a 1-based menu key
func (r *Registry) Lookup(key int) (ReleaseLine, bool) {
	if key < 1 || key > len(r.Lines) {
		return ReleaseLine{}, false
	}
	return r.Lines[key-1], true
}

// FilePath returns the on-disk path of a release line's XML file
func (r *Registry) FilePath(line ReleaseLine) string {
	return filepath.Join(r.Dir, line.File)
}

// LogPath returns the path of the operation log kept in the registry directory
func (r *Registry) LogPath() string {
	return filepath.Join(r.Dir, LogFileName)
}
