package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mortonl/zebra-label-generator-sub001/api"
)

func newDensitiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "densities",
		Short: "List the supported print densities and label stocks",
		Long: `List the print density presets and, for each known label stock, the dot
dimensions a label of that stock has at every density.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			densityRows := make([][]string, 0, len(api.Densities))
			for _, density := range api.Densities {
				densityRows = append(densityRows, []string{
					strconv.Itoa(density.DotsPerInch()),
					strconv.Itoa(density.DotsPerMillimetre()),
				})
			}
			fmt.Println(renderTable(
				[]string{"DPI", "Dots/mm"},
				densityRows,
				[]columnAlignment{alignRight, alignRight},
			))

			headers := []string{"Stock", "Size (mm)"}
			aligns := []columnAlignment{alignLeft, alignLeft}
			for _, density := range api.Densities {
				headers = append(headers, density.String())
				aligns = append(aligns, alignRight)
			}

			stockRows := make([][]string, 0)
			for _, name := range api.LabelSizeNames() {
				size, err := api.FindLabelSize(name)
				if err != nil {
					continue
				}
				row := []string{name, size.String()}
				for _, density := range api.Densities {
					row = append(row, fmt.Sprintf("%dx%d",
						density.ToDots(size.Width), density.ToDots(size.Height)))
				}
				stockRows = append(stockRows, row)
			}
			fmt.Println(renderTable(headers, stockRows, aligns))
		},
	}
}
