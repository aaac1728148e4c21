package docxinspect

import (
	"math"
	"strconv"
	"strings"
)

// Twips are twentieths of a point, the unit of most WordprocessingML lengths.
type Twips int

func (t Twips) Points() float64 { return float64(t) / 20 }
func (t Twips) Inches() float64 { return float64(t) / 1440 }

// EMU are English Metric Units, used by DrawingML extents.
type EMU int64

const emuPerInch = 914400

func (e EMU) Inches() float64 { return float64(e) / emuPerInch }
func (e EMU) Points() float64 { return e.Inches() * 72 }

// parseTwips accepts integer or decimal attribute values. ok is false for missing
// or malformed values.
func parseTwips(s string) (Twips, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return Twips(math.Round(f)), true
}

// optionalTwips returns nil when the attribute is missing.
func optionalTwips(s string) *Twips {
	t, ok := parseTwips(s)
	if !ok {
		return nil
	}
	return &t
}

// halfPoints converts a w:sz value to points.
func halfPoints(v *valXML) *float64 {
	if v == nil {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.Val), 64)
	if err != nil {
		return nil
	}
	pt := f / 2
	return &pt
}

// formatFloat prints whole numbers with one decimal, e.g. 12.0 and 10.5.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
