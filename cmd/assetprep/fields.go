package main

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/spf13/cobra"

	appcontext "github.com/scopelens/assetprep/internal/app_context"
	"github.com/scopelens/assetprep/pkg/pagetemplate"
)

func newFieldsCmd(app *appcontext.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the page size and form fields of a PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := stringFlag(cmd, "pdf", app.Config.Template.OutputPDF)

			dims, err := api.PageDimsFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			if len(dims) < 1 {
				return fmt.Errorf("%s has no pages", path)
			}

			fields, err := pagetemplate.ReadFields(path)
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "PDF Page Count: %d\n", len(dims))
			fmt.Fprintf(app.Out, "Page Size: %.2f x %.2f pt\n", dims[0].Width, dims[0].Height)
			fmt.Fprintf(app.Out, "Form fields: %d\n", len(fields))
			for _, f := range fields {
				ro := ""
				if f.ReadOnly {
					ro = " read-only"
				}
				fmt.Fprintf(app.Out, "  %s = %q%s [%.1f %.1f %.1f %.1f] %s\n",
					f.Name, f.Value, ro, f.Rect[0], f.Rect[1], f.Rect[2], f.Rect[3], f.DA)
			}
			return nil
		},
	}

	cmd.Flags().String("pdf", "", "PDF to inspect (default $TEMPLATE_OUTPUT_PDF)")
	return cmd
}
