// Package main is the entry point for the assetprep CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	appcontext "github.com/scopelens/assetprep/internal/app_context"
	"github.com/scopelens/assetprep/internal/config"
	"github.com/scopelens/assetprep/internal/env"
	"github.com/scopelens/assetprep/internal/util"
)

// version is set at build time via ldflags.
var version = "dev"

func newRootCmd(app *appcontext.Application) *cobra.Command {
	root := &cobra.Command{
		Use:     util.GetAppName(),
		Short:   "Prepare static assets for the ScopeLens report",
		Version: version,
		Long: `assetprep prepares the static assets used by the report generator: it turns
the dashboard page template into a fillable form, dumps the formatting of the
reference Word report, and recolors icons.

Every subcommand is a single run against one input. Paths default to the
environment (optionally loaded from a .env file) and can be overridden by flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			env.LoadEnv(envFile)

			cfg := config.GetConfig()
			app.Config = &cfg
			app.Logger = util.NewLogger(cfg.IsProduction())
			app.Out = cmd.OutOrStdout()

			app.Logger.Debugf("Configuration: %+v", cfg)
			return nil
		},
	}

	root.PersistentFlags().String("env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(
		newTemplateCmd(app),
		newDocxDetailCmd(app),
		newDocxSummaryCmd(app),
		newRecolorCmd(app),
		newFieldsCmd(app),
	)
	return root
}

// stringFlag returns the flag value when it was set on the command line and the
// configured value otherwise.
func stringFlag(cmd *cobra.Command, name, configured string) string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return configured
}

func main() {
	app := &appcontext.Application{}
	if err := newRootCmd(app).Execute(); err != nil {
		logger := app.Logger
		if logger == nil {
			logger = util.NewLogger(false)
		}
		logger.Error(err)
		_ = logger.Sync()
		os.Exit(1)
	}
	if app.Logger != nil {
		_ = app.Logger.Sync()
	}
}
