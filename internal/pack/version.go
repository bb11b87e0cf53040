// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pack

import (
	"fmt"
	"strings"

	"github.com/redhat-storage/rhs-pack/internal/extrun"
)

// Versioner derives a package version from source-control metadata.
type Versioner interface {
	// LatestTag returns the most recent version tag of the working tree
	// at dir.
	LatestTag(dir string) (string, error)
}

// GitVersioner queries tags with the git command line.
type GitVersioner struct {
	exec extrun.Executor
}

// NewGitVersioner returns a Versioner backed by the git binary.
func NewGitVersioner(exec extrun.Executor) *GitVersioner {
	return &GitVersioner{exec: exec}
}

func (g *GitVersioner) LatestTag(dir string) (string, error) {
	tag, err := g.exec.Output(dir, "git", "describe", "--tags", "--abbrev=0")
	if err != nil {
		return "", fmt.Errorf("querying latest tag in %s: %w", dir, err)
	}
	if tag == "" {
		return "", fmt.Errorf("no version tag found in %s", dir)
	}
	return tag, nil
}

// ResolveVersion produces the normalized package version: the explicit
// override when present, otherwise the most recent source-control tag of
// srcDir. Packaging cannot proceed without a determinable version.
func ResolveVersion(explicit, srcDir string, v Versioner) (string, error) {
	if explicit != "" {
		return normalizeVersion(explicit), nil
	}
	tag, err := v.LatestTag(srcDir)
	if err != nil {
		return "", fmt.Errorf("cannot determine package version (supply --pkg-version or tag the source tree): %w", err)
	}
	return normalizeVersion(tag), nil
}

// normalizeVersion replaces dots with underscores so the version is safe in
// filenames and in the archive's top-level directory name.
func normalizeVersion(v string) string {
	return strings.ReplaceAll(strings.TrimSpace(v), ".", "_")
}
