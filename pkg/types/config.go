// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PackConfig holds settings for the pack stage. Empty fields are filled with
// defaults before validation: Source defaults to the current working
// directory, TargetDir to the resolved source, and ExtraDirs is merged with
// the mandatory utility directory.
type PackConfig struct {
	// Source is the version-controlled working directory to package.
	Source string `json:"source" yaml:"source"`

	// TargetDir is the directory the finished archive is moved to.
	TargetDir string `json:"target_dir" yaml:"target_dir"`

	// PkgVersion is an explicit version override. When empty, the version
	// is resolved from the most recent source-control tag.
	PkgVersion string `json:"pkg_version,omitempty" yaml:"pkg_version,omitempty"`

	// ExtraDirs lists directories whose top-level files are folded into the
	// package alongside the fixed top-level files.
	ExtraDirs []string `json:"dirs,omitempty" yaml:"dirs,omitempty"`

	// Manifest enables writing a YAML build manifest beside the archive.
	Manifest bool `json:"manifest" yaml:"manifest"`
}

// ConvertConfig holds settings for the documentation conversion stage.
type ConvertConfig struct {
	// Doc is the office-format documentation file to convert to PDF.
	Doc string `json:"doc" yaml:"doc"`

	// OutDir is the directory the PDF is written to (default: the
	// document's directory).
	OutDir string `json:"out_dir,omitempty" yaml:"out_dir,omitempty"`
}

// PublishConfig holds settings for the archive upload stage.
type PublishConfig struct {
	// Bucket is the object-storage bucket name (without scheme prefix).
	Bucket string `json:"bucket" yaml:"bucket"`

	// Archive is the path of the archive to upload.
	Archive string `json:"archive,omitempty" yaml:"archive,omitempty"`
}

// ReleaseConfig groups the stage configurations for a full release run.
type ReleaseConfig struct {
	Pack    PackConfig    `json:"pack" yaml:"pack"`
	Convert ConvertConfig `json:"convert" yaml:"convert"`
	Publish PublishConfig `json:"publish" yaml:"publish"`
}
