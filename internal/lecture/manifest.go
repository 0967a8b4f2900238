// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lecture

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Manifest is the on-disk representation of an explicit lecture working
// set. It lets a run name a handful of lectures without processing the
// whole slices directory or repeating --lecture invocations.
type Manifest struct {
	// Lectures lists lecture file names relative to the slices directory.
	Lectures []string `yaml:"lectures"`
}

// ReadManifest loads a lecture manifest from a YAML file.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// SelectManifest resolves the manifest entries against slicesDir, in
// manifest order. A missing entry is an error, matching the --lecture
// behavior for a single named file.
func SelectManifest(slicesDir string, m *Manifest) ([]string, error) {
	if len(m.Lectures) == 0 {
		return nil, fmt.Errorf("manifest lists no lectures")
	}
	files := make([]string, 0, len(m.Lectures))
	for _, name := range m.Lectures {
		path := filepath.Join(slicesDir, name)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("lecture file does not exist: %s", path)
		}
		files = append(files, path)
	}
	return files, nil
}
