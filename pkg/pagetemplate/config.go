package pagetemplate

import (
	"os"
	"path/filepath"
)

type Config struct {
	// Directory where the temporary files are stored during processing, the files are deleted after processing
	TmpDir string
}

func NewDefaultConfig() *Config {
	return &Config{
		TmpDir: filepath.Join(os.TempDir(), "assetprep", "template"),
	}
}
