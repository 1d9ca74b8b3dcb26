package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

type identifyResult struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

func newIdentifyCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "identify FILE...",
		Short: "Report the dimensions and format of images",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]identifyResult, 0, len(args))
			for _, path := range args {
				img, err := ctx.openImage(cmd.Context(), path)
				if err != nil {
					return fmt.Errorf("identify %s: %w", path, err)
				}
				results = append(results, identifyResult{
					Path:   img.SourcePath(),
					Width:  img.Width(),
					Height: img.Height(),
					Format: img.Format(),
				})
				img.Close()
			}

			if jsonOutput {
				return writeJSON(cmd, results)
			}
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{r.Path, strconv.Itoa(r.Width), strconv.Itoa(r.Height), r.Format})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"File", "Width", "Height", "Format"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}
