package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/redhat-storage/rhs-pack/internal/extrun"
	"github.com/redhat-storage/rhs-pack/internal/publish"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload a release tarball to object storage",
	Long: `Publish pushes a produced archive to an object-storage bucket using a
detected uploader tool (s3cmd, falling back to the aws CLI). Credentials may
be provided as plain files in .secrets/ (e.g. AWS_ACCESS_KEY_ID); they are
passed to the uploader as environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		archive := stringOpt(cmd, "archive", "publish.archive")
		if archive == "" {
			return fmt.Errorf("no archive given (use --archive)")
		}
		bucket := stringOpt(cmd, "bucket", "publish.bucket")

		u, err := publish.DetectUploader(extrun.System())
		if err != nil {
			return err
		}
		return publish.Publish(u, archive, bucket, loadedSecrets, os.Stderr)
	},
}

func init() {
	publishCmd.Flags().String("archive", "", "archive file to upload")
	publishCmd.Flags().String("bucket", "", "object-storage bucket name")

	rootCmd.AddCommand(publishCmd)
}
