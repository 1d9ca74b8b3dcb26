package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newTransformCommand(ctx *commandContext) *cobra.Command {
	var crop, resize, fit string
	var interlace bool
	var rotate, round int
	var export exportFlags

	cmd := &cobra.Command{
		Use:   "transform FILE DEST",
		Short: "Apply a sequence of transformations and write the result",
		Long: `Apply a sequence of transformations to FILE and write the result to DEST.

Steps run in this order, each committed before the next:
crop, resize, fit, rotate, round.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var steps []imageStep
			var names []string

			if strings.TrimSpace(crop) != "" {
				geom, err := parseCrop(crop)
				if err != nil {
					return err
				}
				steps = append(steps, cropStep(geom))
				names = append(names, "crop")
			}
			if strings.TrimSpace(resize) != "" {
				w, h, err := parseSize(resize)
				if err != nil {
					return err
				}
				steps = append(steps, resizeStep(w, h))
				names = append(names, "resize")
			}
			if strings.TrimSpace(fit) != "" {
				w, h, err := parseSize(fit)
				if err != nil {
					return err
				}
				steps = append(steps, fitStep(w, h, interlace))
				names = append(names, "fit")
			} else if interlace {
				return errors.New("--interlace requires --fit")
			}
			if cmd.Flags().Changed("rotate") {
				steps = append(steps, rotateStep(rotate))
				names = append(names, "rotate")
			}
			if cmd.Flags().Changed("round") {
				steps = append(steps, roundStep(round))
				names = append(names, "round")
			}

			img, err := ctx.openImage(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer img.Close()

			for i, step := range steps {
				if err := step(cmd.Context(), img); err != nil {
					return fmt.Errorf("%s: %w", names[i], err)
				}
			}
			if err := img.Export(cmd.Context(), args[1], export.options(cmd)...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", args[1], dimensions(img.Width(), img.Height()))
			return nil
		},
	}

	cmd.Flags().StringVar(&crop, "crop", "", "Crop region as WxH+X+Y")
	cmd.Flags().StringVar(&resize, "resize", "", "Resize to exactly WxH")
	cmd.Flags().StringVar(&fit, "fit", "", "Resize proportionally to fit inside WxH")
	cmd.Flags().BoolVar(&interlace, "interlace", false, "With --fit, scale by the smaller ratio and write line-interlaced RGB")
	cmd.Flags().IntVar(&rotate, "rotate", 0, "Rotate by degrees")
	cmd.Flags().IntVar(&round, "round", 0, "Round corners with this radius")
	export.register(cmd)
	return cmd
}
