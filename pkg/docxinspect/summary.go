package docxinspect

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type fontUsage struct {
	sizes     map[float64]bool
	boldSizes map[float64]bool
	colors    map[string]bool
	samples   []string
}

type styleCount struct {
	name  string
	count int
}

// WriteSummary copies the embedded media to extractDir and prints the fonts,
// paragraph styles, tables, page setup and relationships of the document.
func WriteSummary(w io.Writer, r *Reader, extractDir string) error {
	rep := &report{w: w}

	rep.banner(60, "1. EMBEDDED IMAGES / ICONS")
	items, err := ExtractMedia(r, extractDir)
	if err != nil {
		return err
	}
	writeMedia(rep, items)

	rep.printf("\n")
	rep.banner(60, "2. FONTS & SIZES USED")
	writeStyleFonts(rep, r.Styles)
	writeFontUsage(rep, r)

	rep.printf("\n")
	rep.banner(60, "3. PARAGRAPH STYLES BREAKDOWN")
	for _, sc := range countStyles(r.Paragraphs) {
		rep.printf("  %s: %d paragraphs\n", sc.name, sc.count)
	}

	rep.printf("\n")
	rep.banner(60, "4. TABLES")
	rep.printf("  Total tables: %d\n", len(r.Tables))
	for i, t := range r.Tables {
		rep.printf("  Table %d: %d rows x %d cols\n", i+1, len(t.Rows), t.Columns)
		for ri, row := range t.Rows {
			if ri >= 3 {
				break
			}
			cells := make([]string, len(row))
			for ci, c := range row {
				cells[ci] = strconv.Quote(prefix(c, 30))
			}
			rep.printf("    Row %d: [%s]\n", ri, strings.Join(cells, ", "))
		}
	}

	rep.printf("\n")
	rep.banner(60, "5. PAGE SETUP")
	for i, s := range r.Sections {
		rep.printf("  Section %d:\n", i+1)
		rep.printf("    Page width: %.2f in\n", s.PageWidth.Inches())
		rep.printf("    Page height: %.2f in\n", s.PageHeight.Inches())
		rep.printf("    Top margin: %.2f in\n", s.Top.Inches())
		rep.printf("    Bottom margin: %.2f in\n", s.Bottom.Inches())
		rep.printf("    Left margin: %.2f in\n", s.Left.Inches())
		rep.printf("    Right margin: %.2f in\n", s.Right.Inches())
	}

	rep.printf("\n")
	rep.banner(60, "6. EMBEDDED RELATIONSHIPS (images, links)")
	for _, rel := range r.Relationships {
		if kind := rel.Kind(); kind == "image" || kind == "hyperlink" {
			rep.printf("  %s: %s\n", kind, rel.Target)
		}
	}

	rep.printf("\nExtraction complete!\n")
	rep.printf("Images saved to: %s\n", extractDir)
	return rep.err
}

func writeMedia(rep *report, items []MediaItem) {
	if len(items) == 0 {
		rep.println("  No embedded media found")
		return
	}

	p := message.NewPrinter(language.English)
	for _, item := range items {
		line := p.Sprintf("  %s (%d bytes) → %s", item.Name, item.Size, item.Path)
		if item.Width > 0 && item.Height > 0 {
			line += fmt.Sprintf(" [%dx%d px]", item.Width, item.Height)
		}
		rep.println(line)
	}
}

func writeStyleFonts(rep *report, styles *Styles) {
	if def := styles.DefaultParagraphStyle(); def != nil {
		rep.printf("\n  Default paragraph font: %s, size: %s\n", orDefault(def.Font.Name, "(inherited)"), sizeString(def.Font.Size, "(inherited)"))
	}
	if f := styles.DefaultFont; f.Name != "" || f.Size != nil {
		rep.printf("  Document default run font: %s, size: %s\n", orDefault(f.Name, "(inherited)"), sizeString(f.Size, "(inherited)"))
	}

	rep.printf("\n  --- Document Styles ---\n")
	for _, st := range styles.All {
		if st.Type == "numbering" || (st.Font.Name == "" && st.Font.Size == nil) {
			continue
		}
		size := "(inherited)"
		if st.Font.Size != nil {
			size = formatFloat(*st.Font.Size) + "pt"
		}
		color := "none"
		if st.Font.Color.RGB != "" {
			color = "#" + st.Font.Color.RGB
		}
		rep.printf("  Style '%s': font=%s, size=%s, bold=%s, italic=%s, color=%s\n",
			st.DisplayName(), orDefault(st.Font.Name, "(inherited)"), size, boolString(st.Font.Bold), boolString(st.Font.Italic), color)
	}
}

// writeFontUsage aggregates runs of non-empty paragraphs per font name. A run
// without a font name, bold or italic takes the paragraph style's own value.
func writeFontUsage(rep *report, r *Reader) {
	rep.printf("\n  --- Paragraph-level Analysis ---\n")

	usage := map[string]*fontUsage{}
	for _, p := range r.Paragraphs {
		if strings.TrimSpace(p.Text) == "" {
			continue
		}

		var styleFont Font
		if p.Style != nil {
			styleFont = p.Style.Font
		}

		for _, run := range p.Runs {
			name := orDefault(run.Font.Name, orDefault(styleFont.Name, "Default"))
			bold := isTrue(run.Font.Bold) || isTrue(styleFont.Bold)
			italic := isTrue(run.Font.Italic) || isTrue(styleFont.Italic)

			entry, ok := usage[name]
			if !ok {
				entry = &fontUsage{sizes: map[float64]bool{}, boldSizes: map[float64]bool{}, colors: map[string]bool{}}
				usage[name] = entry
			}

			size := "inherited"
			if run.Font.Size != nil {
				size = formatFloat(*run.Font.Size) + "pt"
				if bold {
					entry.boldSizes[*run.Font.Size] = true
				} else {
					entry.sizes[*run.Font.Size] = true
				}
			}
			color := "none"
			if run.Font.Color.RGB != "" {
				color = "#" + run.Font.Color.RGB
				entry.colors[color] = true
			}

			if len(entry.samples) < 2 {
				if sample := strings.TrimSpace(prefix(run.Text, 60)); sample != "" {
					entry.samples = append(entry.samples,
						fmt.Sprintf("[%s, bold=%t, italic=%t, color=%s] \"%s\"", size, bold, italic, color, sample))
				}
			}
		}
	}

	for _, name := range slices.Sorted(maps.Keys(usage)) {
		info := usage[name]
		rep.printf("\n  Font: %s\n", name)
		if len(info.sizes) > 0 {
			rep.printf("    Regular sizes: %s\n", sizeList(info.sizes))
		}
		if len(info.boldSizes) > 0 {
			rep.printf("    Bold sizes: %s\n", sizeList(info.boldSizes))
		}
		if len(info.colors) > 0 {
			rep.printf("    Colors: [%s]\n", strings.Join(slices.Sorted(maps.Keys(info.colors)), ", "))
		}
		for _, s := range info.samples {
			rep.printf("    Sample: %s\n", s)
		}
	}
}

func sizeList(set map[float64]bool) string {
	sizes := slices.Sorted(maps.Keys(set))
	out := make([]string, len(sizes))
	for i, s := range sizes {
		out[i] = formatFloat(s)
	}
	return "[" + strings.Join(out, ", ") + "]"
}

// countStyles counts non-empty paragraphs per style name, most frequent first and
// ties in first-seen order.
func countStyles(paragraphs []Paragraph) []styleCount {
	var counts []styleCount
	index := map[string]int{}
	for _, p := range paragraphs {
		if strings.TrimSpace(p.Text) == "" {
			continue
		}
		name := p.Style.DisplayName()
		if i, ok := index[name]; ok {
			counts[i].count++
			continue
		}
		index[name] = len(counts)
		counts = append(counts, styleCount{name: name, count: 1})
	}

	slices.SortStableFunc(counts, func(a, b styleCount) int {
		return cmp.Compare(b.count, a.count)
	})
	return counts
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
