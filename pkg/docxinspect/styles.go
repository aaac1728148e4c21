package docxinspect

import (
	"encoding/xml"
	"strings"
)

// stylesXML represents the structure of word/styles.xml
type stylesXML struct {
	XMLName     xml.Name `xml:"styles"`
	DocDefaults struct {
		RPr runPropsXML `xml:"rPrDefault>rPr"`
	} `xml:"docDefaults"`
	Styles []styleXML `xml:"style"`
}

// styleXML represents a style definition.
type styleXML struct {
	Type    string      `xml:"type,attr"` // paragraph, character, table, numbering
	StyleID string      `xml:"styleId,attr"`
	Default string      `xml:"default,attr"`
	Name    *valXML     `xml:"name"`
	BasedOn *valXML     `xml:"basedOn"`
	RPr     runPropsXML `xml:"rPr"`
}

// Font is the character formatting set directly on a run or a style.
// Nil fields are inherited.
type Font struct {
	Name        string
	Size        *float64 // points
	Bold        *bool
	Italic      *bool
	Underline   bool
	Subscript   bool
	Superscript bool
	Color       Color
}

type Color struct {
	RGB   string // RRGGBB, upper case
	Theme string
}

func fontFromXML(p runPropsXML) Font {
	f := Font{
		Size:   halfPoints(p.Size),
		Bold:   p.Bold.value(),
		Italic: p.Italic.value(),
	}
	if p.Fonts != nil {
		f.Name = p.Fonts.ASCII
	}
	if p.Underline != nil {
		f.Underline = p.Underline.Val != "none" && p.Underline.Val != "0" && p.Underline.Val != "false"
	}
	if p.VertAlign != nil {
		f.Subscript = p.VertAlign.Val == "subscript"
		f.Superscript = p.VertAlign.Val == "superscript"
	}
	if p.Color != nil {
		if p.Color.Val != "" && !strings.EqualFold(p.Color.Val, "auto") {
			f.Color.RGB = strings.ToUpper(p.Color.Val)
		}
		f.Color.Theme = p.Color.Theme
	}
	return f
}

type Style struct {
	ID      string
	Name    string
	Type    string
	Default bool
	BasedOn string
	Font    Font
}

// builtinNames maps the lower-case names Word stores for some built-in styles
// to the names shown in its UI.
var builtinNames = map[string]string{
	"caption":   "Caption",
	"footer":    "Footer",
	"header":    "Header",
	"heading 1": "Heading 1",
	"heading 2": "Heading 2",
	"heading 3": "Heading 3",
	"heading 4": "Heading 4",
	"heading 5": "Heading 5",
	"heading 6": "Heading 6",
	"heading 7": "Heading 7",
	"heading 8": "Heading 8",
	"heading 9": "Heading 9",
}

// DisplayName returns the UI name of the style, "None" for a nil style.
func (s *Style) DisplayName() string {
	if s == nil || s.Name == "" {
		return "None"
	}
	if ui, ok := builtinNames[s.Name]; ok {
		return ui
	}
	return s.Name
}

// Styles holds the style definitions in declaration order.
type Styles struct {
	All         []*Style
	DefaultFont Font // docDefaults run properties
	byID        map[string]*Style
}

func newStyles(x *stylesXML) *Styles {
	s := &Styles{byID: map[string]*Style{}}
	if x == nil {
		return s
	}

	s.DefaultFont = fontFromXML(x.DocDefaults.RPr)
	for _, sx := range x.Styles {
		st := &Style{
			ID:      sx.StyleID,
			Type:    sx.Type,
			Default: sx.Default == "1" || sx.Default == "true",
			Font:    fontFromXML(sx.RPr),
		}
		if st.Type == "" {
			st.Type = "paragraph"
		}
		if sx.Name != nil {
			st.Name = sx.Name.Val
		}
		if sx.BasedOn != nil {
			st.BasedOn = sx.BasedOn.Val
		}
		s.All = append(s.All, st)
		s.byID[st.ID] = st
	}
	return s
}

// DefaultParagraphStyle returns the last paragraph style flagged as default.
func (s *Styles) DefaultParagraphStyle() *Style {
	var def *Style
	for _, st := range s.All {
		if st.Type == "paragraph" && st.Default {
			def = st
		}
	}
	return def
}

// ParagraphStyle resolves a pStyle id. Unknown ids, empty ids and ids of
// non-paragraph styles resolve to the default paragraph style.
func (s *Styles) ParagraphStyle(id string) *Style {
	if st, ok := s.byID[id]; ok && id != "" && st.Type == "paragraph" {
		return st
	}
	return s.DefaultParagraphStyle()
}
