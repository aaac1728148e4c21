package main

import (
	"fmt"

	"github.com/spf13/cobra"

	appcontext "github.com/scopelens/assetprep/internal/app_context"
	"github.com/scopelens/assetprep/pkg/svghue"
)

func newRecolorCmd(app *appcontext.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recolor",
		Short: "Wrap an SVG icon in a hue-rotation filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config.Icon
			in := stringFlag(cmd, "in", cfg.InputSVG)
			out := stringFlag(cmd, "out", cfg.OutputSVG)

			opts := svghue.Options{
				FilterID:  stringFlag(cmd, "filter-id", cfg.FilterID),
				HueRotate: cfg.HueRotate,
			}
			if cmd.Flags().Changed("hue") {
				opts.HueRotate, _ = cmd.Flags().GetFloat64("hue")
			}

			res, err := svghue.RecolorFile(in, out, opts)
			if err != nil {
				return fmt.Errorf("recolor %s: %w", in, err)
			}
			app.Logger.Debugw("Recolored icon", "moved", res.Moved, "filter", opts.FilterID, "hue", opts.HueRotate)

			fmt.Fprintf(app.Out, "Icon saved to %s\n", out)
			return nil
		},
	}

	cmd.Flags().String("in", "", "input SVG (default $ICON_INPUT_SVG)")
	cmd.Flags().String("out", "", "output SVG (default $ICON_OUTPUT_SVG)")
	cmd.Flags().String("filter-id", "", "id of the generated filter (default $ICON_FILTER_ID)")
	cmd.Flags().Float64("hue", 0, "hue rotation in degrees (default $ICON_HUE_ROTATE)")
	return cmd
}
