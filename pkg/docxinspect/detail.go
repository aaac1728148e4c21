package docxinspect

import (
	"io"
	"strings"
)

// WriteDetail prints every paragraph and run with its direct formatting, then the
// pictures and the page geometry of every section.
func WriteDetail(w io.Writer, r *Reader) error {
	rep := &report{w: w}

	rep.banner(80, "COMPLETE LINE-BY-LINE FORMATTING BREAKDOWN")
	for _, p := range r.Paragraphs {
		writeParagraph(rep, p)
	}

	rep.printf("\n")
	rep.banner(80, "INLINE IMAGES IN DOCUMENT")
	for _, d := range r.Drawings {
		target, ok := r.RelationshipTarget(d.RelID)
		if !ok {
			target = "unknown"
		}
		rep.printf("  Para %d: Image %s | %.1fpt × %.1fpt (%.2fin × %.2fin)\n",
			d.Paragraph, target, d.Width.Points(), d.Height.Points(), d.Width.Inches(), d.Height.Inches())
	}

	rep.printf("\n")
	rep.banner(80, "PAGE MARGINS & DIMENSIONS")
	for i, s := range r.Sections {
		rep.printf("Section %d:\n", i+1)
		rep.printf("  Page: %.2fin × %.2fin (%.1fpt × %.1fpt)\n",
			s.PageWidth.Inches(), s.PageHeight.Inches(), s.PageWidth.Points(), s.PageHeight.Points())
		rep.printf("  Margins: top=%.1fpt  bottom=%.1fpt  left=%.1fpt  right=%.1fpt\n",
			s.Top.Points(), s.Bottom.Points(), s.Left.Points(), s.Right.Points())
		if s.Header != 0 {
			rep.printf("  Header distance: %.1fpt\n", s.Header.Points())
		}
		if s.Footer != 0 {
			rep.printf("  Footer distance: %.1fpt\n", s.Footer.Points())
		}
	}

	return rep.err
}

func writeParagraph(rep *report, p Paragraph) {
	text := strings.TrimSpace(p.Text)
	if text == "" && len(p.Runs) == 0 {
		return
	}

	rep.printf("\n%s\n", strings.Repeat("─", 80))
	rep.printf("P%03d | Style: %s | Align: %s\n", p.Index, p.Style.DisplayName(), alignmentName(p.Alignment))
	rep.printf("     | SpaceBefore: %s | SpaceAfter: %s | LineSpacing: %s\n",
		spacingString(p.SpaceBefore), spacingString(p.SpaceAfter), p.Line)
	rep.printf("     | LeftIndent: %s | FirstLineIndent: %s\n", indentString(p.LeftIndent), indentString(p.FirstLineIndent))

	if text == "" {
		rep.printf("     | [EMPTY PARAGRAPH]\n")
		return
	}

	for j, run := range p.Runs {
		if run.Text == "" {
			continue
		}

		font := run.Font
		name := font.Name
		if name == "" {
			name = "(inherit from style)"
		}

		flags := []string{"regular"}
		if isTrue(font.Bold) {
			flags[0] = "BOLD"
		}
		if isTrue(font.Italic) {
			flags = append(flags, "ITALIC")
		}
		if font.Underline {
			flags = append(flags, "UNDERLINE")
		}
		if font.Subscript {
			flags = append(flags, "SUBSCRIPT")
		}
		if font.Superscript {
			flags = append(flags, "SUPERSCRIPT")
		}

		rep.printf("  R%d: font=%s | size=%s | %s | color=%s\n",
			j, name, sizeString(font.Size, "(inherit)"), strings.Join(flags, " "), font.Color)
		rep.printf("       \"%s\"\n", truncate(run.Text, 80))
	}
}
