package docxinspect

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// report is a writer that keeps the first error, so report code can print freely
// and check once at the end.
type report struct {
	w   io.Writer
	err error
}

func (r *report) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *report) println(s string) {
	r.printf("%s\n", s)
}

func (r *report) banner(width int, title string) {
	rule := strings.Repeat("=", width)
	r.println(rule)
	r.println(title)
	r.println(rule)
}

func alignmentName(jc string) string {
	switch jc {
	case "", "left", "start":
		return "left"
	case "center":
		return "center"
	case "right", "end":
		return "right"
	case "both":
		return "justify"
	}
	return jc
}

// spacingString prints a spacing in points, zero counts as not set.
func spacingString(t *Twips) string {
	if t == nil || *t == 0 {
		return "inherit"
	}
	return fmt.Sprintf("%.1fpt", t.Points())
}

func (l LineSpacing) String() string {
	if l.Line == 0 {
		return "inherit"
	}
	switch l.Rule {
	case "", "auto":
		return formatFloat(float64(l.Line) / 240)
	case "exact", "atLeast":
		return fmt.Sprintf("%.1fpt", Twips(l.Line).Points())
	}
	return "inherit"
}

func indentString(t *Twips) string {
	if t == nil || *t == 0 {
		return "0"
	}
	return fmt.Sprintf("%.2fin", t.Inches())
}

func (c Color) String() string {
	switch {
	case c.RGB != "":
		return "#" + c.RGB
	case c.Theme != "":
		return "theme:" + c.Theme
	}
	return "inherit"
}

// truncate cuts s to n characters, adding an ellipsis when anything was cut.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

// prefix returns the first n characters of s.
func prefix(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func sizeString(size *float64, unset string) string {
	if size == nil {
		return unset
	}
	return fmt.Sprintf("%.1fpt", *size)
}

func boolString(b *bool) string {
	if b == nil {
		return "inherit"
	}
	if *b {
		return "true"
	}
	return "false"
}

func isTrue(b *bool) bool {
	return b != nil && *b
}
