package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/flanksource/commons/logger"
	"github.com/spf13/cobra"

	zebra "github.com/mortonl/zebra-label-generator-sub001"
	"github.com/mortonl/zebra-label-generator-sub001/api"
)

func newGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <label-document>",
		Short: "Render a label document to a printer command stream",
		Long: `Render a YAML label document to the command stream its printer consumes.

The document's printer block names the destination printer; --printer swaps in
a profile from the profiles file instead, and --dpi proofs the same label at
another density without touching the document.`,
		Example: `  zebra-label-generator generate shipping.yaml
  zebra-label-generator generate shipping.yaml --printer office
  zebra-label-generator generate shipping.yaml --dpi 300 -o shipping.zpl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label, err := buildLabel(args[0])
			if err != nil {
				return err
			}

			output := label.Render()
			if zebra.Flags.DPI != 0 {
				density, err := api.FromDotsPerInch(zebra.Flags.DPI)
				if err != nil {
					return err
				}
				output = label.RenderAt(density)
			}

			if zebra.Flags.Output == "" {
				fmt.Println(output)
				return nil
			}
			if err := os.WriteFile(zebra.Flags.Output, []byte(output+"\n"), 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			logger.Infof("wrote %d bytes to %s", len(output)+1, zebra.Flags.Output)
			return nil
		},
	}
}

// buildLabel loads a label document, applying the --printer profile override
// before the document is built.
func buildLabel(path string) (*zebra.Label, error) {
	document, err := zebra.LoadLabelDocument(path)
	if err != nil {
		return nil, err
	}

	if zebra.Flags.Profile != "" {
		profiles, err := zebra.LoadPrinterProfiles(zebra.Flags.Profiles)
		if err != nil {
			return nil, err
		}
		printer, ok := profiles.Profiles[zebra.Flags.Profile]
		if !ok {
			return nil, fmt.Errorf("unknown printer profile %q, known profiles: %v",
				zebra.Flags.Profile, profiles.Names())
		}
		logger.Debugf("rendering for printer profile %s (%ddpi)", zebra.Flags.Profile, printer.DPI)
		document.Printer = zebra.PrinterSpec{
			DPI:         printer.DPI,
			MediaWidth:  printer.MediaWidth,
			MediaLength: printer.MediaLength,
		}
	}

	return document.Build(filepath.Dir(path))
}
