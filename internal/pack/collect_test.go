// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pack

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	src := t.TempDir()
	for rel, content := range map[string]string{
		"install.sh":       "#!/bin/sh\n",
		"setup.sh":         "#!/bin/sh\n",
		"VERSION":          "2.0\n",
		"README.md":        "readme\n",
		"notes.txt":        "not packaged\n",
		"bin/a.sh":         "a\n",
		"bin/b.sh":         "b\n",
		"bin/nested/c.sh":  "never collected\n",
		"devutils/tool.sh": "tool\n",
	} {
		writeTestFile(t, src, rel, content)
	}

	files, err := Collect(src, []string{"bin", "devutils"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"install.sh",
		"setup.sh",
		"VERSION",
		"README.md",
		filepath.Join("bin", "a.sh"),
		filepath.Join("bin", "b.sh"),
		filepath.Join("devutils", "tool.sh"),
	}, files)
}

func TestCollectIsShallow(t *testing.T) {
	src := t.TempDir()
	writeTestFile(t, src, "bin/a.sh", "a\n")
	writeTestFile(t, src, "bin/nested/deep.sh", "deep\n")

	files, err := Collect(src, []string{"bin"})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join("bin", "a.sh")}, files,
		"nested subdirectory contents must not be collected")
}

func TestCollectTopLevelOnlyMatchesPatterns(t *testing.T) {
	src := t.TempDir()
	writeTestFile(t, src, "install.sh", "x\n")
	writeTestFile(t, src, "VERSION.bak", "ignored\n")
	writeTestFile(t, src, "LICENSE", "ignored\n")

	files, err := Collect(src, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"install.sh"}, files)
}

func TestCollectMissingDir(t *testing.T) {
	src := t.TempDir()

	_, err := Collect(src, []string{"devutils"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "devutils")
}
