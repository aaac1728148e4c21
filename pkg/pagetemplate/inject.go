package pagetemplate

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/scopelens/assetprep/internal/util"
	"go.uber.org/zap"
)

type Result struct {
	OutputFile string
	Fields     []string
}

// Injector runs the template pipeline once: blank out, replace text, add fields.
// Each step writes a new temporary PDF that becomes the input of the next step.
type Injector struct {
	ID     string
	Cfg    Config
	Layout Layout
	logger *zap.SugaredLogger
}

func NewInjector(cfg Config, layout Layout, logger *zap.SugaredLogger) *Injector {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Injector{
		ID:     uuid.NewString(),
		Cfg:    cfg,
		Layout: layout,
		logger: logger,
	}
}

func (inj *Injector) TempDir() string {
	return filepath.Join(inj.Cfg.TmpDir, inj.ID)
}

func (inj *Injector) createTemp(pattern string) (string, error) {
	f, err := os.CreateTemp(inj.TempDir(), pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		return "", err
	}
	return name, nil
}

func (inj *Injector) selectedPages() []string {
	return []string{strconv.Itoa(inj.Layout.Page)}
}

func (inj *Injector) blankOut(inputFile string, pageWidth, pageHeight float64) (string, error) {
	rects := inj.Layout.BackgroundRects()
	if len(rects) == 0 {
		return inputFile, nil
	}

	overlay, err := inj.createTemp("assetprep_overlay_*.pdf")
	if err != nil {
		return "", err
	}
	if err := RenderRectOverlay(overlay, pageWidth, pageHeight, rects, inj.Layout.Background); err != nil {
		return "", err
	}

	tmpOut, err := inj.createTemp("assetprep_*.pdf")
	if err != nil {
		return "", err
	}
	if err := ApplyOverlayToPdf(inputFile, tmpOut, inj.selectedPages(), overlay); err != nil {
		return "", err
	}

	inj.logger.Debugw("Blanked out regions", "count", len(rects))
	return tmpOut, nil
}

func (inj *Injector) replaceText(inputFile string, pageHeight float64) (string, error) {
	currentFile := inputFile

	for _, rep := range inj.Layout.Replacements {
		tmpOut, err := inj.createTemp("assetprep_*.pdf")
		if err != nil {
			return "", err
		}

		if err := StampTextToPdf(currentFile, tmpOut, inj.selectedPages(), rep, pageHeight); err != nil {
			return "", err
		}

		inj.logger.Debugw("Replaced text", "text", rep.Text, "x", rep.Rect.X0, "y", rep.Rect.Y1-2, "size", rep.Font.Size)
		currentFile = tmpOut
	}

	return currentFile, nil
}

func (inj *Injector) addFields(inputFile string, pageHeight float64) (string, error) {
	if len(inj.Layout.Fields) == 0 {
		return inputFile, nil
	}

	tmpOut, err := inj.createTemp("assetprep_fields_*.pdf")
	if err != nil {
		return "", err
	}
	if err := AddTextFields(inputFile, tmpOut, inj.Layout.Page, pageHeight, inj.Layout.Fields); err != nil {
		return "", err
	}
	return tmpOut, nil
}

// Inject writes the edited template to outFile. The temporary directory of the
// run is removed whether or not it succeeds.
func (inj *Injector) Inject(inFile, outFile string) (*Result, error) {
	if _, err := os.Stat(inFile); err != nil {
		return nil, fmt.Errorf("input PDF: %w", err)
	}

	if err := os.MkdirAll(inj.TempDir(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create tmp directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(inj.TempDir()); err != nil {
			inj.logger.Warnf("Failed to remove tmp directory %s: %v", inj.TempDir(), err)
		}
	}()

	dims, err := api.PageDimsFile(inFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read page dimensions: %w", err)
	}
	if inj.Layout.Page < 1 || inj.Layout.Page > len(dims) {
		return nil, fmt.Errorf("page %d out of range, document has %d pages", inj.Layout.Page, len(dims))
	}
	page := dims[inj.Layout.Page-1]
	inj.logger.Debugw("Template page", "page", inj.Layout.Page, "width", page.Width, "height", page.Height)

	currentFile, err := inj.blankOut(inFile, page.Width, page.Height)
	if err != nil {
		return nil, err
	}

	currentFile, err = inj.replaceText(currentFile, page.Height)
	if err != nil {
		return nil, err
	}

	currentFile, err = inj.addFields(currentFile, page.Height)
	if err != nil {
		return nil, err
	}

	if err := util.EnsureParentDir(outFile); err != nil {
		return nil, err
	}
	if currentFile != outFile {
		if err := util.CopyFile(currentFile, outFile); err != nil {
			return nil, fmt.Errorf("failed to write output file: %w", err)
		}
	}

	return &Result{
		OutputFile: outFile,
		Fields:     inj.Layout.FieldNames(),
	}, nil
}
