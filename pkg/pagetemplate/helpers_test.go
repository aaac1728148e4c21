package pagetemplate

import (
	"path/filepath"
	"testing"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

// writeFixturePDF renders a letter-sized page with some gray blocks where the
// dashboard template has text.
func writeFixturePDF(t *testing.T) string {
	t.Helper()

	c := canvas.New(ptToMM(612), ptToMM(792))
	ctx := canvas.NewContext(c)
	ctx.SetFillColor(canvas.Hex("#D1D5DB"))
	ctx.SetStrokeColor(canvas.Transparent)
	for _, r := range DefaultLayout().BackgroundRects() {
		ctx.DrawPath(ptToMM(r.X0), ptToMM(792-r.Y1), canvas.Rectangle(ptToMM(r.Width()), ptToMM(r.Height())))
	}

	path := filepath.Join(t.TempDir(), "page2_template.pdf")
	if err := renderers.Write(path, c); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}
