// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the rhs-pack CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/redhat-storage/rhs-pack/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds storage credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the rhs-pack CLI.
var rootCmd = &cobra.Command{
	Use:   "rhs-pack",
	Short: "Build and publish rhs-hadoop-install release tarballs",
	Long: `rhs-pack assembles versioned release tarballs for rhs-hadoop-install. It
collects the fixed top-level files and the shallow contents of the configured
package directories, stages them under a version-named directory, and drives
the external tar utility to produce <package>-<version>.tar.gz.

Each release stage is a subcommand: convert (documentation to PDF), pack
(tarball assembly), and publish (object-storage upload). The release
subcommand chains them.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./rhs-pack.yaml or ~/.config/rhs-pack/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("rhs-pack")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "rhs-pack"))
		}
	}

	viper.SetEnvPrefix("RHS_PACK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringOpt returns the flag value, falling back to the viper key when the
// flag was not set on the command line.
func stringOpt(cmd *cobra.Command, flag, key string) string {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

// sliceOpt is stringOpt for comma-separated list flags.
func sliceOpt(cmd *cobra.Command, flag, key string) []string {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetStringSlice(key)
	}
	v, _ := cmd.Flags().GetStringSlice(flag)
	return v
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
