package docxinspect

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteSummary(t *testing.T) {
	r := openFixture(t)
	dir := filepath.Join(t.TempDir(), "docx_extracted")

	var buf bytes.Buffer
	if err := WriteSummary(&buf, r, dir); err != nil {
		t.Fatalf("WriteSummary() error = %v", err)
	}
	out := buf.String()

	wantLines := []string{
		"1. EMBEDDED IMAGES / ICONS",
		"  image2.emf (1,500 bytes) → " + filepath.Join(dir, "image2.emf"),
		"2. FONTS & SIZES USED",
		"  Default paragraph font: Arial, size: 10.0pt",
		"  Document default run font: Calibri, size: 11.0pt",
		"  Style 'Normal': font=Arial, size=10.0pt, bold=inherit, italic=inherit, color=none",
		"  Style 'Heading 1': font=(inherited), size=16.0pt, bold=true, italic=inherit, color=#1F293B",
		"  Font: Arial",
		"    Regular sizes: [10.5]",
		`    Sample: [inherited, bold=false, italic=false, color=none] "Visit"`,
		`    Sample: [inherited, bold=false, italic=true, color=none] "1"`,
		"  Font: Inter",
		"    Bold sizes: [18.0]",
		"    Colors: [#1F293B]",
		`    Sample: [18.0pt, bold=true, italic=false, color=#1F293B] "AI Detection Report"`,
		"3. PARAGRAPH STYLES BREAKDOWN",
		"  Normal: 2 paragraphs",
		"  Heading 1: 1 paragraphs",
		"  Total tables: 1",
		"  Table 1: 3 rows x 2 cols",
		`    Row 0: ["Summary", "Summary"]`,
		`    Row 1: ["Group", "12%"]`,
		`    Row 2: ["Group", ""]`,
		"    Page width: 8.50 in",
		"    Left margin: 0.75 in",
		"  image: media/image1.png",
		"  hyperlink: https://scopelens.ai",
		"Images saved to: " + dir,
	}
	for _, line := range wantLines {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("summary report is missing line %q", line)
		}
	}

	if !strings.Contains(out, "image1.png (") || !strings.Contains(out, "[3x2 px]") {
		t.Errorf("summary report is missing the png dimensions:\n%s", out)
	}
	for _, absent := range []string{"No List", "Strong", "styles.xml", "Closing"} {
		if strings.Contains(out, absent) {
			t.Errorf("summary report should not contain %q", absent)
		}
	}
	if strings.Index(out, "Font: Arial") > strings.Index(out, "Font: Inter") {
		t.Error("fonts are not sorted by name")
	}

	got, err := os.ReadFile(filepath.Join(dir, "image1.png"))
	if err != nil {
		t.Fatalf("media not extracted: %v", err)
	}
	if !bytes.Equal(got, pngBytes(t, 3, 2)) {
		t.Error("extracted media differs from the embedded file")
	}
}

func TestWriteSummaryWithoutMedia(t *testing.T) {
	r, err := Open(writeDocx(t, [][2]string{
		{"[Content_Types].xml", fixtureContentTypes},
		{"word/document.xml", fixtureDocument},
	}))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	var buf bytes.Buffer
	if err := WriteSummary(&buf, r, filepath.Join(t.TempDir(), "media")); err != nil {
		t.Fatalf("WriteSummary() error = %v", err)
	}

	out := buf.String()
	for _, line := range []string{"  No embedded media found", "  None: 3 paragraphs", "  Font: Default", "  Font: Inter"} {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("summary report is missing line %q", line)
		}
	}
}

func TestCountStyles(t *testing.T) {
	normal := &Style{Name: "Normal"}
	heading := &Style{Name: "heading 2"}
	quote := &Style{Name: "Quote"}

	paragraphs := []Paragraph{
		{Style: quote, Text: "q"},
		{Style: normal, Text: "a"},
		{Style: heading, Text: "h"},
		{Style: normal, Text: " "},
		{Style: normal, Text: "b"},
		{Style: heading, Text: "h2"},
		{Text: "orphan"},
	}

	want := []styleCount{
		{"Normal", 2},
		{"Heading 2", 2},
		{"Quote", 1},
		{"None", 1},
	}
	if diff := cmp.Diff(want, countStyles(paragraphs), cmp.AllowUnexported(styleCount{})); diff != "" {
		t.Errorf("countStyles() mismatch (-want +got):\n%s", diff)
	}
}
