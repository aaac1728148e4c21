package config

import (
	"strings"

	"github.com/scopelens/assetprep/internal/env"
	"github.com/scopelens/assetprep/pkg/pagetemplate"
)

type Config struct {
	ENV      string
	Template TemplateConfig
	Docx     DocxConfig
	Icon     IconConfig
}

type TemplateConfig struct {
	InputPDF  string
	OutputPDF string
	// Optional YAML/JSON layout file, the built-in page 2 layout is used when empty
	LayoutFile string
	// Directory where intermediate PDFs are written during a run, removed afterwards
	TmpDir string
}

type DocxConfig struct {
	Path       string
	ExtractDir string
}

type IconConfig struct {
	InputSVG  string
	OutputSVG string
	FilterID  string
	HueRotate float64
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	defaults := pagetemplate.NewDefaultConfig()

	return Config{
		ENV: env.GetString("ENV", "development"),
		Template: TemplateConfig{
			InputPDF:   env.GetString("TEMPLATE_INPUT_PDF", "scopelens-dashboard/public/templates/page2_template.pdf"),
			OutputPDF:  env.GetString("TEMPLATE_OUTPUT_PDF", "scopelens-dashboard/public/templates/page2_template_fields.pdf"),
			LayoutFile: env.GetString("TEMPLATE_LAYOUT_FILE", ""),
			TmpDir:     env.GetString("TEMPLATE_TMP_DIR", defaults.TmpDir),
		},
		Docx: DocxConfig{
			Path:       env.GetString("DOCX_PATH", "AI_Final Report.docx"),
			ExtractDir: env.GetString("DOCX_EXTRACT_DIR", "docx_extracted"),
		},
		Icon: IconConfig{
			InputSVG:  env.GetString("ICON_INPUT_SVG", "file.svg"),
			OutputSVG: env.GetString("ICON_OUTPUT_SVG", "scopelens-dashboard/public/icons/ai-paraphrased-icon.svg"),
			// Shifts teal to purple
			FilterID:  env.GetString("ICON_FILTER_ID", "purple-filter"),
			HueRotate: env.GetFloat("ICON_HUE_ROTATE", 100),
		},
	}
}
