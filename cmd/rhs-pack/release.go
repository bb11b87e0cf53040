package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/redhat-storage/rhs-pack/internal/convert"
	"github.com/redhat-storage/rhs-pack/internal/extrun"
	"github.com/redhat-storage/rhs-pack/internal/publish"
)

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Run the full release workflow: convert, pack, publish",
	Long: `Release chains the packaging stages: convert the documentation file to
PDF when --doc is given, assemble the tarball, and upload it when --bucket
is given. The workflow stops at the first failure; there is no partial
release.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := stringOpt(cmd, "doc", "convert.doc")
		bucket := stringOpt(cmd, "bucket", "publish.bucket")
		exec := extrun.System()

		if doc != "" {
			c, err := convert.DetectConverter(exec)
			if err != nil {
				return err
			}
			outDir := stringOpt(cmd, "out-dir", "convert.out_dir")
			if _, err := convert.ConvertDoc(c, doc, outDir, os.Stderr); err != nil {
				return err
			}
		}

		res, err := runPack(packOptions(cmd))
		if err != nil {
			return err
		}

		if bucket != "" {
			u, err := publish.DetectUploader(exec)
			if err != nil {
				return err
			}
			if err := publish.Publish(u, res.Archive, bucket, loadedSecrets, os.Stderr); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	releaseCmd.Flags().String("source", "", "source directory (default: current working directory)")
	releaseCmd.Flags().String("target-dir", "", "output directory for the archive (default: source directory)")
	releaseCmd.Flags().String("pkg-version", "", "explicit version override; dots normalized to underscores")
	releaseCmd.Flags().StringSlice("dirs", nil, "comma-separated extra directories whose top-level files are included (bin/ is always included)")
	releaseCmd.Flags().Bool("manifest", false, "write a YAML build manifest beside the archive")
	releaseCmd.Flags().String("doc", "", "documentation file to convert before packaging")
	releaseCmd.Flags().String("out-dir", "", "directory for the converted PDF")
	releaseCmd.Flags().String("bucket", "", "object-storage bucket to publish the archive to")

	rootCmd.AddCommand(releaseCmd)
}
