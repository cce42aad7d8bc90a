package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	zebra "github.com/mortonl/zebra-label-generator-sub001"
)

// Build information (set by goreleaser)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "zebra-label-generator",
		Short: "Generate printer command streams from YAML label documents",
		Long: `zebra-label-generator turns YAML label documents into the command streams
thermal label printers consume. A document names a label size, the destination
printer and the elements on the label: text, fonts, barcodes, boxes and
images. Elements are validated against the label before anything is emitted.`,
		Example: `  zebra-label-generator generate shipping.yaml
  zebra-label-generator generate shipping.yaml --dpi 300 -o shipping.zpl
  zebra-label-generator preview shipping.yaml
  zebra-label-generator densities`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zebra.Flags.UseFlags()
		},
	}

	zebra.BindAllFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newPreviewCommand())
	rootCmd.AddCommand(newDensitiesCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getVersionInfo())
		},
	}
}

func getVersionInfo() string {
	return fmt.Sprintf("zebra-label-generator %s (commit: %s, built: %s, go: %s)",
		version, commit, date, runtime.Version())
}
