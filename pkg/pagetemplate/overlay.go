package pagetemplate

import (
	"fmt"
	"math"
	"strconv"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

/*
 * Attention: tdewolff/canvas uses mm as the unit of measurement and a bottom-left origin,
 * layouts are in points from the top-left corner and are converted when drawing.
 */

const DPI = 72

// Converts points to millimeters
func ptToMM(pt float64) float64 {
	return (pt * 25.4) / DPI
}

// RenderRectOverlay writes a transparent one-page PDF the size of the target page
// where every rect is filled with the fill color.
func RenderRectOverlay(outFile string, pageWidth, pageHeight float64, rects []Rect, fill string) error {
	if pageWidth <= 0 || pageHeight <= 0 {
		return fmt.Errorf("invalid page size %.1fx%.1f", pageWidth, pageHeight)
	}

	c := canvas.New(ptToMM(pageWidth), ptToMM(pageHeight))
	ctx := canvas.NewContext(c)
	ctx.SetFillColor(canvas.Hex(fill))
	ctx.SetStrokeColor(canvas.Transparent)

	for _, r := range rects {
		y := pageHeight - r.Y1
		ctx.DrawPath(ptToMM(r.X0), ptToMM(y), canvas.Rectangle(ptToMM(r.Width()), ptToMM(r.Height())))
	}

	if err := renderers.Write(outFile, c); err != nil {
		return fmt.Errorf("failed to write overlay: %w", err)
	}
	return nil
}

// rgbOperands formats a hex color as the operands of a PDF rg operator, e.g. "0.12 0.16 0.23".
func rgbOperands(hex string) string {
	c := canvas.Hex(hex)
	return fmt.Sprintf("%s %s %s", formatNumber(float64(c.R)/255), formatNumber(float64(c.G)/255), formatNumber(float64(c.B)/255))
}

// formatNumber prints at most three decimals and drops trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
