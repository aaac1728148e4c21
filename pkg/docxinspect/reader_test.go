package docxinspect

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOpen(t *testing.T) {
	r := openFixture(t)

	var texts []string
	var indexes []int
	for _, p := range r.Paragraphs {
		texts = append(texts, p.Text)
		indexes = append(indexes, p.Index)
	}
	wantTexts := []string{"AI Detection Report", "", "   ", "Visit scopelens.ai1", "Closing"}
	if diff := cmp.Diff(wantTexts, texts); diff != "" {
		t.Errorf("paragraph texts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, indexes); diff != "" {
		t.Errorf("paragraph indexes mismatch (-want +got):\n%s", diff)
	}

	if got := len(r.Paragraphs[3].Runs); got != 3 {
		t.Errorf("paragraph 3 has %d runs, want 3 (hyperlink runs excluded)", got)
	}

	wantDrawings := []Drawing{
		{Paragraph: 3, RelID: "rId2", Width: 914400, Height: 457200},
		{Paragraph: 8, RelID: "rId9", Width: 182880, Height: 182880},
	}
	if diff := cmp.Diff(wantDrawings, r.Drawings); diff != "" {
		t.Errorf("drawings mismatch (-want +got):\n%s", diff)
	}

	wantSections := []Section{
		{PageWidth: 12240, PageHeight: 15840, Top: 1440, Bottom: 1440, Left: 1080, Right: 1080, Header: 720},
		{PageWidth: 11906, PageHeight: 16838, Top: 720, Bottom: 720, Left: 720, Right: 720, Header: 360, Footer: 360},
	}
	if diff := cmp.Diff(wantSections, r.Sections); diff != "" {
		t.Errorf("sections mismatch (-want +got):\n%s", diff)
	}

	wantTables := []Table{{
		Columns: 2,
		Rows: [][]string{
			{"Summary", "Summary"},
			{"Group", "12%"},
			{"Group", ""},
		},
	}}
	if diff := cmp.Diff(wantTables, r.Tables); diff != "" {
		t.Errorf("tables mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"word/media/image1.png", "word/media/image2.emf"}, r.Media()); diff != "" {
		t.Errorf("media mismatch (-want +got):\n%s", diff)
	}

	if target, ok := r.RelationshipTarget("rId3"); !ok || target != "https://scopelens.ai" {
		t.Errorf("RelationshipTarget(rId3) = %q, %v", target, ok)
	}
}

func TestOpenParagraphProperties(t *testing.T) {
	r := openFixture(t)

	heading := r.Paragraphs[0]
	if heading.Style.DisplayName() != "Heading 1" || heading.Alignment != "center" {
		t.Errorf("heading style = %s, alignment = %s", heading.Style.DisplayName(), heading.Alignment)
	}
	if heading.Line != (LineSpacing{Line: 276, Rule: "auto"}) {
		t.Errorf("heading line spacing = %+v", heading.Line)
	}

	body := r.Paragraphs[3]
	if body.LeftIndent == nil || *body.LeftIndent != 720 {
		t.Errorf("LeftIndent = %v, want 720", body.LeftIndent)
	}
	if body.FirstLineIndent == nil || *body.FirstLineIndent != -360 {
		t.Errorf("FirstLineIndent = %v, want -360", body.FirstLineIndent)
	}

	run := body.Runs[1].Font
	if !isTrue(run.Italic) || !run.Underline || !run.Superscript || run.Subscript {
		t.Errorf("unexpected run flags: %+v", run)
	}
	if run.Color != (Color{Theme: "accent1"}) {
		t.Errorf("run color = %+v, want theme accent1", run.Color)
	}

	if got := r.Paragraphs[4].Style.DisplayName(); got != "Normal" {
		t.Errorf("unknown style id resolved to %s, want Normal", got)
	}
}

func TestOpenInvalid(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr string
	}{
		{
			name: "not a zip",
			path: func(t *testing.T) string {
				return writeFile(t, "report.docx", "plain text")
			},
			wantErr: "opening ZIP archive",
		},
		{
			name: "missing document part",
			path: func(t *testing.T) string {
				return writeDocx(t, [][2]string{{"[Content_Types].xml", fixtureContentTypes}})
			},
			wantErr: "missing required file: word/document.xml",
		},
		{
			name: "broken document part",
			path: func(t *testing.T) string {
				return writeDocx(t, [][2]string{
					{"[Content_Types].xml", fixtureContentTypes},
					{"word/document.xml", "<w:document><w:body>"},
				})
			},
			wantErr: "document.xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(tt.path(t))
			if err == nil {
				t.Fatalf("Open() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Open() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing.docx")); err == nil {
		t.Error("Open() expected error for missing file")
	}
}
