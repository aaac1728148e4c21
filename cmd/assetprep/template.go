package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	appcontext "github.com/scopelens/assetprep/internal/app_context"
	"github.com/scopelens/assetprep/pkg/pagetemplate"
)

func newTemplateCmd(app *appcontext.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Turn the report page template into a form with read-only fields",
		Long: `template blanks out the header and footer bands and the stale numbers of the
page template, rewrites the brand mentions, and adds the read-only text fields
the report generator fills in. The built-in layout is used unless a YAML or
JSON layout file is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config.Template
			in := stringFlag(cmd, "in", cfg.InputPDF)
			out := stringFlag(cmd, "out", cfg.OutputPDF)
			layoutFile := stringFlag(cmd, "layout", cfg.LayoutFile)

			layout := pagetemplate.DefaultLayout()
			if layoutFile != "" {
				var err error
				if layout, err = pagetemplate.LoadLayout(layoutFile); err != nil {
					return err
				}
				app.Logger.Infof("Using layout %s", layoutFile)
			}

			injector := pagetemplate.NewInjector(pagetemplate.Config{TmpDir: cfg.TmpDir}, layout, app.Logger)
			app.Logger.Debugw("Injecting template fields", "id", injector.ID, "in", in, "out", out)

			res, err := injector.Inject(in, out)
			if err != nil {
				return fmt.Errorf("template %s: %w", in, err)
			}

			fmt.Fprintf(app.Out, "Template saved to %s\n", res.OutputFile)
			fmt.Fprintf(app.Out, "Form fields: %s\n", strings.Join(res.Fields, ", "))
			return nil
		},
	}

	cmd.Flags().String("in", "", "input PDF (default $TEMPLATE_INPUT_PDF)")
	cmd.Flags().String("out", "", "output PDF (default $TEMPLATE_OUTPUT_PDF)")
	cmd.Flags().String("layout", "", "YAML or JSON layout file (default $TEMPLATE_LAYOUT_FILE, else the built-in layout)")
	return cmd
}
