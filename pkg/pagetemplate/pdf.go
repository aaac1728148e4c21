package pagetemplate

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/font"
)

// ApplyOverlayToPdf stamps a page-sized PDF over the selected pages,
// if no pages are selected it is stamped on every page.
func ApplyOverlayToPdf(inFile, outFile string, selectedPages []string, overlayFile string) error {
	// bottom-left anchor with no offset lines the overlay page up with the target page
	description := "pos: bl, off: 0 0, scale:1 abs, rotation:0"
	if err := api.AddPDFWatermarksFile(inFile, outFile, selectedPages, true, overlayFile, description, nil); err != nil {
		return fmt.Errorf("failed to apply overlay to PDF: %w", err)
	}
	return nil
}

// textStampDescription positions a text stamp so the baseline of the text lands
// 2pt above the bottom edge of the replaced rect.
func textStampDescription(rep Replacement, pageHeight float64) string {
	// pdfcpu only accepts whole font sizes
	points := int(math.Round(rep.Font.Size))
	baseline := pageHeight - (rep.Rect.Y1 - 2)
	// pdfcpu draws the text inside the stamp box at the font descent rounded up
	offY := baseline - math.Ceil(font.Descent(rep.Font.BaseFont(), points))

	return fmt.Sprintf(
		"pos: bl, off: %.2f %.2f, scale:1 abs, rotation:0, font:%s, points:%s, fillcolor:%s, opacity:1",
		rep.Rect.X0, offY, rep.Font.BaseFont(), strconv.Itoa(points), rep.Font.Color,
	)
}

// StampTextToPdf writes one replacement string on top of the selected pages.
func StampTextToPdf(inFile, outFile string, selectedPages []string, rep Replacement, pageHeight float64) error {
	description := textStampDescription(rep, pageHeight)
	if err := api.AddTextWatermarksFile(inFile, outFile, selectedPages, true, rep.Text, description, nil); err != nil {
		return fmt.Errorf("failed to stamp %q to PDF: %w", rep.Text, err)
	}
	return nil
}
