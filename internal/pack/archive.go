// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pack

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/redhat-storage/rhs-pack/internal/extrun"
)

// archiveExcludes are dropped from the archive regardless of where they
// appear: the repository-preparation script and editor swap files.
var archiveExcludes = []string{"prep_repo.sh", "*.swp"}

// Archiver builds a compressed tar archive of a staged directory.
type Archiver interface {
	// Create runs in dir and archives root (a directory name relative to
	// dir) into the named archive file, excluding the given patterns.
	Create(dir, archive, root string, excludes []string) error
}

// Mover relocates a file into a directory.
type Mover interface {
	Move(src, dstDir string) error
}

// TarArchiver invokes the system tar utility.
type TarArchiver struct {
	exec extrun.Executor
}

// NewTarArchiver returns an Archiver backed by the tar binary.
func NewTarArchiver(exec extrun.Executor) *TarArchiver {
	return &TarArchiver{exec: exec}
}

func (t *TarArchiver) Create(dir, archive, root string, excludes []string) error {
	args := []string{"czf", archive}
	for _, pat := range excludes {
		args = append(args, "--exclude="+pat)
	}
	args = append(args, root)
	if err := t.exec.Run(dir, "tar", args...); err != nil {
		return fmt.Errorf("tar failed for %s: %w", archive, err)
	}
	return nil
}

// MvMover invokes the system mv utility.
type MvMover struct {
	exec extrun.Executor
}

// NewMvMover returns a Mover backed by the mv binary.
func NewMvMover(exec extrun.Executor) *MvMover {
	return &MvMover{exec: exec}
}

func (m *MvMover) Move(src, dstDir string) error {
	if err := m.exec.Run("", "mv", "-f", src, dstDir); err != nil {
		return fmt.Errorf("moving %s to %s: %w", src, dstDir, err)
	}
	return nil
}

// stage copies the collected files under stageDir, recreating each file's
// relative directory structure ("with parents").
func stage(src, stageDir string, files []string) error {
	for _, f := range files {
		dst := filepath.Join(stageDir, f)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("creating staging path for %s: %w", f, err)
		}
		if err := copyFile(filepath.Join(src, f), dst); err != nil {
			return fmt.Errorf("staging %s: %w", f, err)
		}
	}
	return nil
}

// copyFile copies a regular file preserving its permission bits.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// verifyArchive checks that exactly one archive artifact exists at the
// expected path. Any other count is a build failure.
func verifyArchive(dir, archive string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, archive))
	if err != nil {
		return "", fmt.Errorf("verifying archive %s: %w", archive, err)
	}
	if len(matches) != 1 {
		return "", fmt.Errorf("archive creation failed: expected exactly one %s, found %d", archive, len(matches))
	}
	return matches[0], nil
}
