// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest records what went into a build. The manifest is written
// beside the archive so a release can be audited without unpacking it.
package manifest

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Manifest is the on-disk YAML record of one packaging run.
type Manifest struct {
	Package   string    `yaml:"package"`
	Version   string    `yaml:"version"`
	Archive   string    `yaml:"archive"`
	CreatedAt time.Time `yaml:"created_at"`
	Files     []string  `yaml:"files"`
	Excluded  []string  `yaml:"excluded,omitempty"`
}

// Write serializes m to path as YAML.
func Write(path string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("serializing manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// Read loads a manifest previously written by Write.
func Read(path string) (*Manifest, error) {
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
