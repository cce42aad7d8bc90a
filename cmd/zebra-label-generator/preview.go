package main

import (
	"fmt"
	"strconv"

	"github.com/flanksource/commons/logger"
	"github.com/spf13/cobra"

	zebra "github.com/mortonl/zebra-label-generator-sub001"
	"github.com/mortonl/zebra-label-generator-sub001/elements"
	"github.com/mortonl/zebra-label-generator-sub001/preview"
)

func newPreviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <label-document>",
		Short: "Show a label document's elements and graphics in the terminal",
		Long: `Build a label document and show what would be printed: the element list
with the command each one emits, and terminal art for every embedded bitmap.`,
		Example: `  zebra-label-generator preview shipping.yaml
  zebra-label-generator preview shipping.yaml --max-width 60 --no-color`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label, err := buildLabel(args[0])
			if err != nil {
				return err
			}

			printer := label.Printer()
			fmt.Printf("%s label for a %s printer with %s media\n\n",
				label.Size(), printer.Density, printer.Media)

			rows := make([][]string, 0, len(label.Elements()))
			for i, element := range label.Elements() {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					elementName(element),
					truncate(element.ZPL(printer.Density), 60),
				})
			}
			fmt.Println(renderTable(
				[]string{"#", "Element", "Command"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft},
			))

			opts := preview.Options{
				MaxWidth: zebra.Flags.MaxWidth,
				NoColor:  zebra.Flags.NoColor,
			}
			for i, element := range label.Elements() {
				field, ok := element.(*elements.GraphicField)
				if !ok {
					continue
				}
				art, err := preview.Field(field, opts)
				if err != nil {
					logger.Debugf("element %d is not previewable: %v", i+1, err)
					continue
				}
				fmt.Printf("\nelement %d:\n%s\n", i+1, art)
			}
			return nil
		},
	}
}

func elementName(element elements.Element) string {
	switch element.(type) {
	case *elements.Text:
		return "text"
	case *elements.DefaultFont:
		return "default font"
	case *elements.GraphicBox:
		return "graphic box"
	case *elements.GraphicField:
		return "graphic field"
	case *elements.Code128Barcode:
		return "code 128"
	case *elements.Comment:
		return "comment"
	}
	return fmt.Sprintf("%T", element)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
