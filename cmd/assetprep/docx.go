package main

import (
	"fmt"

	"github.com/spf13/cobra"

	appcontext "github.com/scopelens/assetprep/internal/app_context"
	"github.com/scopelens/assetprep/pkg/docxinspect"
)

func openDocx(app *appcontext.Application, cmd *cobra.Command) (*docxinspect.Reader, error) {
	path := stringFlag(cmd, "docx", app.Config.Docx.Path)
	r, err := docxinspect.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	app.Logger.Debugw("Opened document", "path", path, "paragraphs", len(r.Paragraphs), "tables", len(r.Tables))
	return r, nil
}

func newDocxDetailCmd(app *appcontext.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docx-detail",
		Short: "Print the formatting of every paragraph, run, picture and section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openDocx(app, cmd)
			if err != nil {
				return err
			}
			defer r.Close()

			return docxinspect.WriteDetail(app.Out, r)
		},
	}

	cmd.Flags().String("docx", "", "Word document (default $DOCX_PATH)")
	return cmd
}

func newDocxSummaryCmd(app *appcontext.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docx-summary",
		Short: "Extract embedded media and summarize fonts, styles, tables and page setup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openDocx(app, cmd)
			if err != nil {
				return err
			}
			defer r.Close()

			return docxinspect.WriteSummary(app.Out, r, stringFlag(cmd, "extract-dir", app.Config.Docx.ExtractDir))
		},
	}

	cmd.Flags().String("docx", "", "Word document (default $DOCX_PATH)")
	cmd.Flags().String("extract-dir", "", "directory receiving the embedded media (default $DOCX_EXTRACT_DIR)")
	return cmd
}
