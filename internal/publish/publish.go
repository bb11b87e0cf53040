// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package publish uploads a produced archive to object storage by driving a
// detected uploader command line. The upload protocol stays external; this
// package only selects and invokes the tool.
package publish

import (
	"fmt"
	"io"
	"os"

	"github.com/redhat-storage/rhs-pack/internal/extrun"
)

const (
	binS3cmd = "s3cmd"
	binAws   = "aws"
)

// Uploader pushes a local file to an object-storage bucket.
type Uploader interface {
	// Name returns the uploader binary name.
	Name() string

	// Upload copies archive into the named bucket. env entries are
	// appended to the subprocess environment (credentials).
	Upload(archive, bucket string, env []string) error
}

// uploader drives one uploader binary. s3cmd and the aws CLI differ only in
// binary name and argument shape.
type uploader struct {
	bin  string
	args func(archive, bucket string) []string
	exec extrun.Executor
}

func (u *uploader) Name() string { return u.bin }

func (u *uploader) Upload(archive, bucket string, env []string) error {
	if err := u.exec.RunEnv("", env, u.bin, u.args(archive, bucket)...); err != nil {
		return fmt.Errorf("uploading %s to %s with %s: %w", archive, bucket, u.bin, err)
	}
	return nil
}

func newS3cmdUploader(exec extrun.Executor) *uploader {
	return &uploader{
		bin: binS3cmd,
		args: func(archive, bucket string) []string {
			return []string{"put", archive, "s3://" + bucket + "/"}
		},
		exec: exec,
	}
}

func newAwsUploader(exec extrun.Executor) *uploader {
	return &uploader{
		bin: binAws,
		args: func(archive, bucket string) []string {
			return []string{"s3", "cp", archive, "s3://" + bucket + "/"}
		},
		exec: exec,
	}
}

// DetectUploader tries s3cmd first, falls back to the aws CLI. Returns an
// error if neither tool is on PATH.
func DetectUploader(exec extrun.Executor) (Uploader, error) {
	for _, mk := range []func(extrun.Executor) *uploader{newS3cmdUploader, newAwsUploader} {
		u := mk(exec)
		if _, err := exec.LookPath(u.bin); err == nil {
			return u, nil
		}
	}
	return nil, fmt.Errorf(
		"no uploader available: neither %s nor %s found on PATH",
		binS3cmd, binAws,
	)
}

// Publish validates the archive exists and uploads it, reporting progress
// on w. secrets become KEY=VALUE environment entries for the uploader.
func Publish(u Uploader, archive, bucket string, secrets map[string]string, w io.Writer) error {
	if bucket == "" {
		return fmt.Errorf("no bucket configured for upload")
	}
	if _, err := os.Stat(archive); err != nil {
		return fmt.Errorf("archive %s: %w", archive, err)
	}

	env := make([]string, 0, len(secrets))
	for k, v := range secrets {
		env = append(env, k+"="+v)
	}

	if err := u.Upload(archive, bucket, env); err != nil {
		return err
	}
	fmt.Fprintf(w, "published: %s -> s3://%s/ (via %s)\n", archive, bucket, u.Name())
	return nil
}
