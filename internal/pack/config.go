// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pack assembles the versioned release tarball: it resolves the
// package version, collects the fixed file set, stages it under a
// version-named directory, and drives the external archive utility.
package pack

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/redhat-storage/rhs-pack/pkg/types"
)

const (
	// PackageName is the stem of the produced archive and of the staging
	// directory.
	PackageName = "rhs-hadoop-install"

	// utilityDir is always folded into the extra-directory set.
	utilityDir = "bin"
)

// Config is the validated, defaulted form of a types.PackConfig. It is
// constructed once by NewConfig and passed by value through the build; no
// step mutates it.
type Config struct {
	Source    string
	TargetDir string
	// PkgVersion is the raw override; version resolution normalizes it.
	PkgVersion string
	// ExtraDirs is the user set merged with the mandatory utility
	// directory, relative to Source.
	ExtraDirs []string
	Manifest  bool
}

// NewConfig applies defaults to opts and validates that every referenced
// directory exists. Extra directories are merged with the mandatory utility
// directory and deduplicated before validation, so a missing directory is
// reported before any collection work begins.
func NewConfig(opts types.PackConfig) (Config, error) {
	src := opts.Source
	if src == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("determining working directory: %w", err)
		}
		src = wd
	}
	src, err := filepath.Abs(src)
	if err != nil {
		return Config{}, fmt.Errorf("resolving source directory: %w", err)
	}

	target := opts.TargetDir
	if target == "" {
		target = src
	}
	target, err = filepath.Abs(target)
	if err != nil {
		return Config{}, fmt.Errorf("resolving target directory: %w", err)
	}

	cfg := Config{
		Source:     src,
		TargetDir:  target,
		PkgVersion: opts.PkgVersion,
		ExtraDirs:  mergeDirs(opts.ExtraDirs),
		Manifest:   opts.Manifest,
	}

	if err := requireDir(cfg.Source, "source directory"); err != nil {
		return Config{}, err
	}
	// Target must pre-exist; packaging fails loudly rather than creating it.
	if err := requireDir(cfg.TargetDir, "target directory"); err != nil {
		return Config{}, err
	}
	for _, d := range cfg.ExtraDirs {
		if err := requireDir(filepath.Join(cfg.Source, d), "package directory"); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// mergeDirs folds the mandatory utility directory into the user-supplied
// set, dropping duplicates and empty entries while preserving order.
func mergeDirs(dirs []string) []string {
	merged := make([]string, 0, len(dirs)+1)
	seen := map[string]bool{}
	for _, d := range append([]string{utilityDir}, dirs...) {
		d = filepath.Clean(d)
		if d == "." || d == "" || seen[d] {
			continue
		}
		seen[d] = true
		merged = append(merged, d)
	}
	return merged
}

func requireDir(path, label string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s %s does not exist", label, path)
		}
		return fmt.Errorf("checking %s %s: %w", label, path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s %s is not a directory", label, path)
	}
	return nil
}
