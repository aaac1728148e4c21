// Package docxinspect reads the formatting of Word documents for the detail and
// summary reports.
package docxinspect

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"
)

const mediaPrefix = "word/media/"

// Paragraph is a body paragraph with the properties set directly on it.
type Paragraph struct {
	// Index among all body paragraphs, empty ones included
	Index           int
	Style           *Style
	Alignment       string // raw w:jc value
	SpaceBefore     *Twips
	SpaceAfter      *Twips
	Line            LineSpacing
	LeftIndent      *Twips
	FirstLineIndent *Twips // negative for hanging indents
	Runs            []Run
	Text            string
}

type Run struct {
	Text string
	Font Font
}

// LineSpacing is a w:spacing line value with its rule. Zero means unset.
type LineSpacing struct {
	Line int
	Rule string
}

type Table struct {
	Columns int
	// Cell text per row, merged cells repeated in every grid column they cover
	Rows [][]string
}

type Section struct {
	PageWidth, PageHeight    Twips
	Top, Bottom, Left, Right Twips
	Header, Footer           Twips
}

// Drawing is a picture placed in a paragraph.
type Drawing struct {
	Paragraph int // document-order index over every w:p, table cells included
	RelID     string
	Width     EMU
	Height    EMU
}

type Relationship struct {
	ID         string
	Type       string
	Target     string
	TargetMode string
}

// Kind is the last segment of the relationship type, e.g. image or hyperlink.
func (r Relationship) Kind() string {
	return path.Base(r.Type)
}

// Reader provides access to DOCX document content.
type Reader struct {
	zipReader     *zip.ReadCloser
	Paragraphs    []Paragraph
	Tables        []Table
	Sections      []Section
	Drawings      []Drawing
	Styles        *Styles
	Relationships []Relationship
}

// Open opens a DOCX file for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r := &Reader{zipReader: zr}
	if err := r.parse(); err != nil {
		zr.Close()
		return nil, err
	}
	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.zipReader != nil {
		err := r.zipReader.Close()
		r.zipReader = nil
		return err
	}
	return nil
}

func (r *Reader) parse() error {
	if err := r.validate(); err != nil {
		return err
	}

	// Relationships and styles are optional
	if data, err := r.getFileContent("word/_rels/document.xml.rels"); err == nil {
		var rels relationshipsXML
		if err := xml.Unmarshal(data, &rels); err != nil {
			return fmt.Errorf("parsing relationships: %w", err)
		}
		for _, rel := range rels.Relationships {
			r.Relationships = append(r.Relationships, Relationship(rel))
		}
	}

	var styles *stylesXML
	if data, err := r.getFileContent("word/styles.xml"); err == nil {
		styles = &stylesXML{}
		if err := xml.Unmarshal(data, styles); err != nil {
			return fmt.Errorf("parsing styles: %w", err)
		}
	}
	r.Styles = newStyles(styles)

	data, err := r.getFileContent("word/document.xml")
	if err != nil {
		return err
	}

	var doc documentXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshaling document.xml: %w", err)
	}
	for i, p := range doc.Body.Paragraphs {
		r.Paragraphs = append(r.Paragraphs, r.paragraph(i, p))
	}
	for _, t := range doc.Body.Tables {
		r.Tables = append(r.Tables, newTable(t))
	}

	w := &bodyWalker{}
	if err := w.walk(xml.NewDecoder(bytes.NewReader(data))); err != nil {
		return fmt.Errorf("walking document.xml: %w", err)
	}
	r.Drawings = w.drawings
	r.Sections = w.sections

	return nil
}

// validate checks that required DOCX files exist.
func (r *Reader) validate() error {
	required := []string{
		"[Content_Types].xml",
		"word/document.xml",
	}

	for _, name := range required {
		if r.getFile(name) == nil {
			return fmt.Errorf("missing required file: %s", name)
		}
	}
	return nil
}

// getFile returns a zip.File by name.
func (r *Reader) getFile(name string) *zip.File {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	f := r.getFile(name)
	if f == nil {
		return nil, fmt.Errorf("file not found: %s", name)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Media returns the archive names of the embedded media in archive order.
func (r *Reader) Media() []string {
	var names []string
	for _, f := range r.zipReader.File {
		if strings.HasPrefix(f.Name, mediaPrefix) && !strings.HasSuffix(f.Name, "/") {
			names = append(names, f.Name)
		}
	}
	return names
}

// OpenMedia opens one embedded media item by archive name.
func (r *Reader) OpenMedia(name string) (io.ReadCloser, error) {
	f := r.getFile(name)
	if f == nil {
		return nil, fmt.Errorf("file not found: %s", name)
	}
	return f.Open()
}

// RelationshipTarget returns the target of a relationship id, ok is false when
// the id is unknown.
func (r *Reader) RelationshipTarget(id string) (string, bool) {
	for _, rel := range r.Relationships {
		if rel.ID == id {
			return rel.Target, true
		}
	}
	return "", false
}

func (r *Reader) paragraph(index int, p paragraphXML) Paragraph {
	props := p.Properties
	para := Paragraph{
		Index: index,
		Text:  p.Text,
	}

	styleID := ""
	if props.Style != nil {
		styleID = props.Style.Val
	}
	para.Style = r.Styles.ParagraphStyle(styleID)

	if props.Justification != nil {
		para.Alignment = props.Justification.Val
	}

	if sp := props.Spacing; sp != nil {
		para.SpaceBefore = optionalTwips(sp.Before)
		para.SpaceAfter = optionalTwips(sp.After)
		if line, ok := parseTwips(sp.Line); ok {
			para.Line = LineSpacing{Line: int(line), Rule: sp.LineRule}
		}
	}

	if ind := props.Indent; ind != nil {
		para.LeftIndent = optionalTwips(ind.Left)
		if para.LeftIndent == nil {
			para.LeftIndent = optionalTwips(ind.Start)
		}
		if hanging, ok := parseTwips(ind.Hanging); ok {
			neg := -hanging
			para.FirstLineIndent = &neg
		} else {
			para.FirstLineIndent = optionalTwips(ind.FirstLine)
		}
	}

	for _, run := range p.Runs {
		para.Runs = append(para.Runs, Run{Text: run.Text, Font: fontFromXML(run.Properties)})
	}
	return para
}
