// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pack

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Deps bundles the external capabilities the build requires. Production
// wiring uses the git, tar, and mv binaries; tests substitute fakes.
type Deps struct {
	Versioner Versioner
	Archiver  Archiver
	Mover     Mover
}

// Result describes a completed build.
type Result struct {
	// Version is the normalized package version.
	Version string
	// Archive is the absolute path of the produced archive after any
	// relocation.
	Archive string
	// Files are the packaged paths, relative to the source directory.
	Files []string
	// Excluded are the patterns withheld from the archive.
	Excluded []string
}

// Build runs the packaging workflow: resolve the version, collect the file
// set, stage it under a version-named directory inside the source working
// directory, archive it, verify the artifact, and relocate it to the target
// directory when that differs from the source. Progress is reported on w.
// Packaging is all-or-nothing; the first failure aborts the build.
func Build(cfg Config, deps Deps, w io.Writer) (*Result, error) {
	version, err := ResolveVersion(cfg.PkgVersion, cfg.Source, deps.Versioner)
	if err != nil {
		return nil, err
	}
	if version == "" {
		return nil, fmt.Errorf("resolved package version is empty")
	}
	fmt.Fprintf(w, "packaging %s version %s\n", PackageName, version)

	files, err := Collect(cfg.Source, cfg.ExtraDirs)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("nothing to package in %s", cfg.Source)
	}

	stem := PackageName + "-" + version
	stageDir := filepath.Join(cfg.Source, stem)
	archive := stem + ".tar.gz"

	// A stale staging tree or archive from an earlier run must not leak
	// into this build.
	if err := os.RemoveAll(stageDir); err != nil {
		return nil, fmt.Errorf("clearing stale staging directory %s: %w", stageDir, err)
	}
	if err := os.Remove(filepath.Join(cfg.Source, archive)); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("removing stale archive %s: %w", archive, err)
	}

	if err := os.Mkdir(stageDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating staging directory %s: %w", stageDir, err)
	}
	// The staging directory is scratch space; remove it whether the
	// archive step succeeds or fails.
	defer os.RemoveAll(stageDir)

	if err := stage(cfg.Source, stageDir, files); err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "staged %d files under %s\n", len(files), stem)

	if err := deps.Archiver.Create(cfg.Source, archive, stem, archiveExcludes); err != nil {
		return nil, err
	}

	archivePath, err := verifyArchive(cfg.Source, archive)
	if err != nil {
		return nil, err
	}

	if cfg.TargetDir != cfg.Source {
		if err := deps.Mover.Move(archivePath, cfg.TargetDir); err != nil {
			return nil, err
		}
		archivePath = filepath.Join(cfg.TargetDir, archive)
	}
	fmt.Fprintf(w, "created %s\n", archivePath)

	return &Result{
		Version:  version,
		Archive:  archivePath,
		Files:    files,
		Excluded: archiveExcludes,
	}, nil
}
