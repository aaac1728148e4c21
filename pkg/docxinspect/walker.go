package docxinspect

import (
	"encoding/xml"
	"io"
	"strconv"
)

// bodyWalker streams document.xml to find pictures and section properties
// anywhere in the body, tables and text boxes included.
type bodyWalker struct {
	nextParagraph int
	paragraphs    []int // open w:p elements, innermost last
	open          []*drawingState
	drawings      []Drawing
	sections      []Section
}

type drawingFrame struct {
	hasExtent bool
	cx, cy    int64
	hasBlip   bool
	embed     string
}

type drawingState struct {
	paragraph      int
	inline, anchor *drawingFrame
	frame          *drawingFrame // wp:inline or wp:anchor being read
	frameDepth     int
}

func isW(name xml.Name, local string) bool {
	return name.Space == nsW && name.Local == local
}

func (w *bodyWalker) walk(dec *xml.Decoder) error {
	depth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch {
			case isW(t.Name, "p"):
				w.paragraphs = append(w.paragraphs, w.nextParagraph)
				w.nextParagraph++
			case isW(t.Name, "drawing"):
				para := -1
				if n := len(w.paragraphs); n > 0 {
					para = w.paragraphs[n-1]
				}
				w.open = append(w.open, &drawingState{paragraph: para})
			case isW(t.Name, "sectPr"):
				var s sectPrXML
				if err := dec.DecodeElement(&s, &t); err != nil {
					return err
				}
				depth--
				w.sections = append(w.sections, newSection(s))
			case len(w.open) > 0:
				w.open[len(w.open)-1].start(t, depth)
			}
		case xml.EndElement:
			switch {
			case isW(t.Name, "p"):
				if n := len(w.paragraphs); n > 0 {
					w.paragraphs = w.paragraphs[:n-1]
				}
			case isW(t.Name, "drawing"):
				if n := len(w.open); n > 0 {
					w.finish(w.open[n-1])
					w.open = w.open[:n-1]
				}
			case len(w.open) > 0:
				w.open[len(w.open)-1].end(depth)
			}
			depth--
		}
	}
}

func (d *drawingState) start(t xml.StartElement, depth int) {
	switch {
	case t.Name.Space == nsWP && (t.Name.Local == "inline" || t.Name.Local == "anchor") && d.frame == nil:
		f := &drawingFrame{}
		if t.Name.Local == "inline" {
			if d.inline != nil {
				return
			}
			d.inline = f
		} else {
			if d.anchor != nil {
				return
			}
			d.anchor = f
		}
		d.frame, d.frameDepth = f, depth
	case d.frame == nil:
	case t.Name.Space == nsWP && t.Name.Local == "extent" && depth == d.frameDepth+1 && !d.frame.hasExtent:
		d.frame.hasExtent = true
		for _, a := range t.Attr {
			switch a.Name.Local {
			case "cx":
				d.frame.cx, _ = strconv.ParseInt(a.Value, 10, 64)
			case "cy":
				d.frame.cy, _ = strconv.ParseInt(a.Value, 10, 64)
			}
		}
	case t.Name.Space == nsA && t.Name.Local == "blip" && !d.frame.hasBlip:
		d.frame.hasBlip = true
		for _, a := range t.Attr {
			if a.Name.Space == nsR && a.Name.Local == "embed" {
				d.frame.embed = a.Value
			}
		}
	}
}

func (d *drawingState) end(depth int) {
	if d.frame != nil && depth == d.frameDepth {
		d.frame = nil
	}
}

// finish records the drawing when its inline frame, or else its anchor frame,
// has both an extent and a picture.
func (w *bodyWalker) finish(d *drawingState) {
	f := d.inline
	if f == nil {
		f = d.anchor
	}
	if f == nil || !f.hasExtent || !f.hasBlip || d.paragraph < 0 {
		return
	}
	w.drawings = append(w.drawings, Drawing{
		Paragraph: d.paragraph,
		RelID:     f.embed,
		Width:     EMU(f.cx),
		Height:    EMU(f.cy),
	})
}

func newSection(s sectPrXML) Section {
	var sec Section
	twips := func(v string) Twips {
		t, _ := parseTwips(v)
		return t
	}
	if s.PageSize != nil {
		sec.PageWidth = twips(s.PageSize.W)
		sec.PageHeight = twips(s.PageSize.H)
	}
	if m := s.Margins; m != nil {
		sec.Top, sec.Bottom = twips(m.Top), twips(m.Bottom)
		sec.Left, sec.Right = twips(m.Left), twips(m.Right)
		sec.Header, sec.Footer = twips(m.Header), twips(m.Footer)
	}
	return sec
}
