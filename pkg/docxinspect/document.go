package docxinspect

import (
	"encoding/xml"
	"strings"
)

// XML namespaces used in DOCX files
const (
	nsW  = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsWP = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	nsA  = "http://schemas.openxmlformats.org/drawingml/2006/main"
)

// documentXML represents the structure of word/document.xml
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    bodyXML  `xml:"body"`
}

// bodyXML holds the top-level paragraphs and tables of the body, nested ones are
// reached through their table.
type bodyXML struct {
	Paragraphs []paragraphXML `xml:"p"`
	Tables     []tableXML     `xml:"tbl"`
}

// valXML is any element whose only interesting content is w:val.
type valXML struct {
	Val string `xml:"val,attr"`
}

// onOffXML is a toggle property such as <w:b/>; a missing val means on.
type onOffXML struct {
	Val string `xml:"val,attr"`
}

func (o *onOffXML) value() *bool {
	if o == nil {
		return nil
	}
	v := true
	switch strings.ToLower(o.Val) {
	case "0", "false", "off", "none":
		v = false
	}
	return &v
}

// paragraphXML represents a paragraph element (<w:p>).
// Text concatenates runs and hyperlinks in document order.
type paragraphXML struct {
	Properties paragraphPropsXML
	Runs       []runXML
	Text       string
}

func (p *paragraphXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				if err := d.DecodeElement(&p.Properties, &t); err != nil {
					return err
				}
			case "r":
				var r runXML
				if err := d.DecodeElement(&r, &t); err != nil {
					return err
				}
				p.Runs = append(p.Runs, r)
				text.WriteString(r.Text)
			case "hyperlink":
				var h hyperlinkXML
				if err := d.DecodeElement(&h, &t); err != nil {
					return err
				}
				for _, r := range h.Runs {
					text.WriteString(r.Text)
				}
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			p.Text = text.String()
			return nil
		}
	}
}

// hyperlinkXML contributes to the paragraph text but its runs are not paragraph runs.
type hyperlinkXML struct {
	Runs []runXML `xml:"r"`
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	Style         *valXML     `xml:"pStyle"`
	Justification *valXML     `xml:"jc"`
	Spacing       *spacingXML `xml:"spacing"`
	Indent        *indentXML  `xml:"ind"`
}

// spacingXML represents paragraph spacing.
type spacingXML struct {
	Before   string `xml:"before,attr"` // twips
	After    string `xml:"after,attr"`  // twips
	Line     string `xml:"line,attr"`   // 240ths of a line for auto, twips otherwise
	LineRule string `xml:"lineRule,attr"`
}

// indentXML represents paragraph indentation.
type indentXML struct {
	Left      string `xml:"left,attr"`
	Start     string `xml:"start,attr"`
	FirstLine string `xml:"firstLine,attr"`
	Hanging   string `xml:"hanging,attr"`
}

// runXML represents a text run (<w:r>).
type runXML struct {
	Properties runPropsXML
	Text       string
}

func (r *runXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				if err := d.DecodeElement(&r.Properties, &t); err != nil {
					return err
				}
				continue
			case "t":
				var s string
				if err := d.DecodeElement(&s, &t); err != nil {
					return err
				}
				text.WriteString(s)
				continue
			case "tab", "ptab":
				text.WriteString("\t")
			case "cr":
				text.WriteString("\n")
			case "br":
				// page and column breaks carry no text
				if brType := attr(t, "type"); brType == "" || brType == "textWrapping" {
					text.WriteString("\n")
				}
			case "noBreakHyphen":
				text.WriteString("-")
			}
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			r.Text = text.String()
			return nil
		}
	}
}

func attr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	Fonts     *fontsXML `xml:"rFonts"`
	Bold      *onOffXML `xml:"b"`
	Italic    *onOffXML `xml:"i"`
	Underline *valXML   `xml:"u"`
	Size      *valXML   `xml:"sz"` // half-points
	Color     *colorXML `xml:"color"`
	VertAlign *valXML   `xml:"vertAlign"`
}

// fontsXML represents font settings.
type fontsXML struct {
	ASCII string `xml:"ascii,attr"`
	HAnsi string `xml:"hAnsi,attr"`
}

// colorXML represents text color.
type colorXML struct {
	Val   string `xml:"val,attr"` // hex color or "auto"
	Theme string `xml:"themeColor,attr"`
}

// tableXML represents a table (<w:tbl>).
type tableXML struct {
	Grid []struct{} `xml:"tblGrid>gridCol"`
	Rows []rowXML   `xml:"tr"`
}

type rowXML struct {
	Cells []cellXML `xml:"tc"`
}

type cellXML struct {
	Properties struct {
		GridSpan *valXML `xml:"gridSpan"`
		VMerge   *valXML `xml:"vMerge"`
	} `xml:"tcPr"`
	Paragraphs []paragraphXML `xml:"p"`
}

// relationshipsXML represents word/_rels/document.xml.rels
type relationshipsXML struct {
	Relationships []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

// sectPrXML represents section properties (<w:sectPr>).
type sectPrXML struct {
	PageSize *struct {
		W string `xml:"w,attr"`
		H string `xml:"h,attr"`
	} `xml:"pgSz"`
	Margins *struct {
		Top    string `xml:"top,attr"`
		Bottom string `xml:"bottom,attr"`
		Left   string `xml:"left,attr"`
		Right  string `xml:"right,attr"`
		Header string `xml:"header,attr"`
		Footer string `xml:"footer,attr"`
	} `xml:"pgMar"`
}
