package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/redhat-storage/rhs-pack/internal/extrun"
	"github.com/redhat-storage/rhs-pack/internal/manifest"
	"github.com/redhat-storage/rhs-pack/internal/pack"
	"github.com/redhat-storage/rhs-pack/pkg/types"
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Assemble the versioned release tarball",
	Long: `Pack collects the fixed top-level files (*.sh, VERSION, README*) plus the
shallow contents of each --dirs directory (bin/ is always included), stages
them under rhs-hadoop-install-<version>/, and builds
rhs-hadoop-install-<version>.tar.gz with the external tar utility. The
version comes from --pkg-version or from the most recent git tag of the
source tree; dots are normalized to underscores.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := packOptions(cmd)
		_, err := runPack(opts)
		return err
	},
}

// packOptions reads the pack flags, letting the config file supply values
// for flags left unset.
func packOptions(cmd *cobra.Command) types.PackConfig {
	manifestFlag, _ := cmd.Flags().GetBool("manifest")
	if !cmd.Flags().Changed("manifest") && viper.IsSet("pack.manifest") {
		manifestFlag = viper.GetBool("pack.manifest")
	}
	return types.PackConfig{
		Source:     stringOpt(cmd, "source", "pack.source"),
		TargetDir:  stringOpt(cmd, "target-dir", "pack.target_dir"),
		PkgVersion: stringOpt(cmd, "pkg-version", "pack.pkg_version"),
		ExtraDirs:  sliceOpt(cmd, "dirs", "pack.dirs"),
		Manifest:   manifestFlag,
	}
}

// runPack executes the full pack stage and writes the manifest when asked.
func runPack(opts types.PackConfig) (*pack.Result, error) {
	cfg, err := pack.NewConfig(opts)
	if err != nil {
		return nil, err
	}

	exec := extrun.System()
	deps := pack.Deps{
		Versioner: pack.NewGitVersioner(exec),
		Archiver:  pack.NewTarArchiver(exec),
		Mover:     pack.NewMvMover(exec),
	}

	res, err := pack.Build(cfg, deps, os.Stderr)
	if err != nil {
		return nil, err
	}

	if cfg.Manifest {
		m := manifest.Manifest{
			Package:   pack.PackageName,
			Version:   res.Version,
			Archive:   res.Archive,
			CreatedAt: time.Now().UTC(),
			Files:     res.Files,
			Excluded:  res.Excluded,
		}
		if err := manifest.Write(res.Archive+".manifest.yaml", m); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func init() {
	packCmd.Flags().String("source", "", "source directory (default: current working directory)")
	packCmd.Flags().String("target-dir", "", "output directory for the archive (default: source directory)")
	packCmd.Flags().String("pkg-version", "", "explicit version override; dots normalized to underscores")
	packCmd.Flags().StringSlice("dirs", nil, "comma-separated extra directories whose top-level files are included (bin/ is always included)")
	packCmd.Flags().Bool("manifest", false, "write a YAML build manifest beside the archive")

	rootCmd.AddCommand(packCmd)
}
