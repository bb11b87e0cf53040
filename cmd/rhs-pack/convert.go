package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/redhat-storage/rhs-pack/internal/convert"
	"github.com/redhat-storage/rhs-pack/internal/extrun"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the documentation file to PDF",
	Long: `Convert renders the office-format documentation file as PDF using a
headless office suite (soffice, falling back to libreoffice). The PDF is
written next to the document unless --out-dir is given. Conversion is
skipped when the PDF already exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := stringOpt(cmd, "doc", "convert.doc")
		if doc == "" {
			return fmt.Errorf("no documentation file given (use --doc)")
		}
		outDir := stringOpt(cmd, "out-dir", "convert.out_dir")

		c, err := convert.DetectConverter(extrun.System())
		if err != nil {
			return err
		}
		_, err = convert.ConvertDoc(c, doc, outDir, os.Stderr)
		return err
	},
}

func init() {
	convertCmd.Flags().String("doc", "", "office-format documentation file to convert")
	convertCmd.Flags().String("out-dir", "", "directory for the PDF (default: the document's directory)")

	rootCmd.AddCommand(convertCmd)
}
