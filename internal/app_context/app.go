package appcontext

import (
	"io"

	"github.com/scopelens/assetprep/internal/config"
	"go.uber.org/zap"
)

// Application contains core dependencies shared by the subcommands.
type Application struct {
	// Config holds settings provided from the environment or a .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Out receives reports and status lines, logs go to stderr.
	Out io.Writer
}
