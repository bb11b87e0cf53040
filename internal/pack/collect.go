// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pack

import (
	"fmt"
	"os"
	"path/filepath"
)

// topLevelPatterns are the fixed files packaged from the source root.
var topLevelPatterns = []string{"*.sh", "VERSION", "README*"}

// Collect enumerates the file set to package: every source-root file
// matching the fixed patterns plus the regular files directly inside each
// extra directory. Collection is shallow — nested subdirectories are never
// descended into. Returned paths are relative to src; their order carries no
// guarantee.
func Collect(src string, extraDirs []string) ([]string, error) {
	var files []string

	for _, pat := range topLevelPatterns {
		matches, err := filepath.Glob(filepath.Join(src, pat))
		if err != nil {
			return nil, fmt.Errorf("matching %s in %s: %w", pat, src, err)
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil {
				return nil, fmt.Errorf("inspecting %s: %w", m, err)
			}
			if !info.Mode().IsRegular() {
				continue
			}
			files = append(files, filepath.Base(m))
		}
	}

	for _, dir := range extraDirs {
		entries, err := os.ReadDir(filepath.Join(src, dir))
		if err != nil {
			return nil, fmt.Errorf("listing package directory %s: %w", dir, err)
		}
		for _, entry := range entries {
			if !entry.Type().IsRegular() {
				continue
			}
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	return files, nil
}
