// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pack

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redhat-storage/rhs-pack/pkg/types"
)

// fakeArchiver writes an empty archive file unless broken is set, in which
// case it silently produces nothing.
type fakeArchiver struct {
	broken   bool
	excludes []string
	root     string
}

func (f *fakeArchiver) Create(dir, archive, root string, excludes []string) error {
	f.excludes = excludes
	f.root = root
	if f.broken {
		return nil
	}
	return os.WriteFile(filepath.Join(dir, archive), []byte("tarball"), 0o644)
}

// fakeMover relocates with os.Rename and records the call.
type fakeMover struct {
	calls []string
}

func (f *fakeMover) Move(src, dstDir string) error {
	f.calls = append(f.calls, src+" -> "+dstDir)
	return os.Rename(src, filepath.Join(dstDir, filepath.Base(src)))
}

// sampleSourceTree builds the worked example: install.sh, README.md, VERSION,
// and bin/{a.sh,b.sh}.
func sampleSourceTree(t *testing.T) string {
	t.Helper()
	src := t.TempDir()
	writeTestFile(t, src, "install.sh", "#!/bin/sh\n")
	writeTestFile(t, src, "README.md", "readme\n")
	writeTestFile(t, src, "VERSION", "2.0\n")
	writeTestFile(t, src, "bin/a.sh", "a\n")
	writeTestFile(t, src, "bin/b.sh", "b\n")
	return src
}

func buildDeps(archiver Archiver, mover Mover) Deps {
	return Deps{
		Versioner: stubVersioner{err: os.ErrNotExist},
		Archiver:  archiver,
		Mover:     mover,
	}
}

func TestBuildProducesNamedArchive(t *testing.T) {
	src := sampleSourceTree(t)
	cfg, err := NewConfig(types.PackConfig{Source: src, PkgVersion: "2.0"})
	require.NoError(t, err)

	archiver := &fakeArchiver{}
	mover := &fakeMover{}
	var out bytes.Buffer

	res, err := Build(cfg, buildDeps(archiver, mover), &out)
	require.NoError(t, err)

	assert.Equal(t, "2_0", res.Version)
	assert.Equal(t, filepath.Join(src, "rhs-hadoop-install-2_0.tar.gz"), res.Archive)
	assert.NotContains(t, filepath.Base(res.Archive), "2.0", "dots must be normalized")
	assert.FileExists(t, res.Archive)
	assert.Empty(t, mover.calls, "no relocation when target equals source")

	assert.ElementsMatch(t, []string{
		"install.sh", "README.md", "VERSION",
		filepath.Join("bin", "a.sh"), filepath.Join("bin", "b.sh"),
	}, res.Files)

	assert.Equal(t, "rhs-hadoop-install-2_0", archiver.root)
	assert.Equal(t, []string{"prep_repo.sh", "*.swp"}, archiver.excludes)
}

func TestBuildRemovesStagingDirectory(t *testing.T) {
	src := sampleSourceTree(t)
	cfg, err := NewConfig(types.PackConfig{Source: src, PkgVersion: "2.0"})
	require.NoError(t, err)

	_, err = Build(cfg, buildDeps(&fakeArchiver{}, &fakeMover{}), &bytes.Buffer{})
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(src, "rhs-hadoop-install-2_0"))
	assert.True(t, os.IsNotExist(statErr), "staging directory must be removed after the build")
}

func TestBuildRelocatesToTarget(t *testing.T) {
	src := sampleSourceTree(t)
	target := t.TempDir()
	cfg, err := NewConfig(types.PackConfig{Source: src, TargetDir: target, PkgVersion: "2.0"})
	require.NoError(t, err)

	mover := &fakeMover{}
	res, err := Build(cfg, buildDeps(&fakeArchiver{}, mover), &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(target, "rhs-hadoop-install-2_0.tar.gz"), res.Archive)
	assert.FileExists(t, res.Archive)
	require.Len(t, mover.calls, 1)
	assert.True(t, strings.HasSuffix(mover.calls[0], " -> "+target))
}

func TestBuildFailsWhenNoArchiveProduced(t *testing.T) {
	src := sampleSourceTree(t)
	cfg, err := NewConfig(types.PackConfig{Source: src, PkgVersion: "2.0"})
	require.NoError(t, err)

	_, err = Build(cfg, buildDeps(&fakeArchiver{broken: true}, &fakeMover{}), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "archive creation failed")

	// Staging is cleaned up even on the failure path.
	_, statErr := os.Stat(filepath.Join(src, "rhs-hadoop-install-2_0"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestBuildFailsWithoutResolvableVersion(t *testing.T) {
	src := sampleSourceTree(t)
	cfg, err := NewConfig(types.PackConfig{Source: src})
	require.NoError(t, err)

	_, err = Build(cfg, buildDeps(&fakeArchiver{}, &fakeMover{}), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot determine package version")

	// Version resolution fails before anything is written.
	entries, readErr := os.ReadDir(src)
	require.NoError(t, readErr)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tar.gz")
	}
}

func TestBuildClearsStaleState(t *testing.T) {
	src := sampleSourceTree(t)
	// Leftovers from an interrupted earlier run.
	writeTestFile(t, src, "rhs-hadoop-install-2_0/stray.sh", "stray\n")
	writeTestFile(t, src, "rhs-hadoop-install-2_0.tar.gz", "old tarball")

	cfg, err := NewConfig(types.PackConfig{Source: src, PkgVersion: "2.0"})
	require.NoError(t, err)

	res, err := Build(cfg, buildDeps(&fakeArchiver{}, &fakeMover{}), &bytes.Buffer{})
	require.NoError(t, err)

	data, err := os.ReadFile(res.Archive)
	require.NoError(t, err)
	assert.Equal(t, "tarball", string(data), "stale archive must be replaced")
}

func TestBuildIsRepeatable(t *testing.T) {
	src := sampleSourceTree(t)
	cfg, err := NewConfig(types.PackConfig{Source: src, PkgVersion: "2.0"})
	require.NoError(t, err)

	first, err := Build(cfg, buildDeps(&fakeArchiver{}, &fakeMover{}), &bytes.Buffer{})
	require.NoError(t, err)
	second, err := Build(cfg, buildDeps(&fakeArchiver{}, &fakeMover{}), &bytes.Buffer{})
	require.NoError(t, err)

	assert.ElementsMatch(t, first.Files, second.Files,
		"unchanged source tree yields identical file-set membership")
}
