package svghue

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"maps"
	"regexp"

	"github.com/beevik/etree"
)

// Illustrator exports declare the SVG namespaces as internal DTD entities and
// reference them from the root, e.g. xmlns="&ns_svg;".
var entityDecl = regexp.MustCompile(`<!ENTITY\s+([^\s%]+)\s+(?:"([^"]*)"|'([^']*)')\s*>`)

// declaredEntities collects the general entities declared in the DOCTYPE
// internal subset, on top of the HTML entity set.
func declaredEntities(data []byte) map[string]string {
	entities := maps.Clone(xml.HTMLEntity)

	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false
	for {
		tok, err := dec.RawToken()
		if err != nil {
			return entities
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return entities
		case xml.Directive:
			for _, m := range entityDecl.FindAllSubmatch(t, -1) {
				entities[string(m[1])] = string(m[2]) + string(m[3])
			}
		}
	}
}

// parse reads an SVG document. Prefixes are kept as written in the source.
func parse(r io.Reader) (*etree.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		Entity:        declaredEntities(data),
		PreserveCData: true,
		ValidateInput: true,
	}
	if _, err := doc.ReadFrom(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	switch n := len(doc.ChildElements()); {
	case n == 0:
		return nil, errors.New("no root element")
	case n > 1:
		return nil, errors.New("more than one root element")
	}

	normalizeProlog(doc)
	return doc, nil
}

// normalizeProlog replaces the input's XML declaration with a UTF-8 one and puts
// every top-level node on its own line.
func normalizeProlog(doc *etree.Document) {
	var kept []etree.Token
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.ProcInst:
			if t.Target == "xml" {
				continue
			}
		case *etree.CharData:
			if t.IsWhitespace() {
				continue
			}
		}
		kept = append(kept, tok)
	}

	for i := len(doc.Child) - 1; i >= 0; i-- {
		doc.RemoveChildAt(i)
	}
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateText("\n")
	for _, tok := range kept {
		doc.AddChild(tok)
		doc.CreateText("\n")
	}
}
