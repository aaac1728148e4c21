package docxinspect

import (
	"archive/zip"
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

const fixtureStyles = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:docDefaults>
    <w:rPrDefault><w:rPr><w:rFonts w:ascii="Calibri" w:hAnsi="Calibri"/><w:sz w:val="22"/></w:rPr></w:rPrDefault>
  </w:docDefaults>
  <w:style w:type="paragraph" w:default="1" w:styleId="Normal">
    <w:name w:val="Normal"/>
    <w:rPr><w:rFonts w:ascii="Arial"/><w:sz w:val="20"/></w:rPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Heading1">
    <w:name w:val="heading 1"/>
    <w:basedOn w:val="Normal"/>
    <w:rPr><w:b/><w:sz w:val="32"/><w:color w:val="1f293b"/></w:rPr>
  </w:style>
  <w:style w:type="character" w:styleId="Strong">
    <w:name w:val="Strong"/>
    <w:rPr><w:b w:val="0"/></w:rPr>
  </w:style>
  <w:style w:type="numbering" w:styleId="NoList">
    <w:name w:val="No List"/>
    <w:rPr><w:sz w:val="20"/></w:rPr>
  </w:style>
</w:styles>`

const fixtureDocument = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"
  xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"
  xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
  xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
  xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture">
<w:body>
  <w:p>
    <w:pPr><w:pStyle w:val="Heading1"/><w:jc w:val="center"/><w:spacing w:before="240" w:after="120" w:line="276" w:lineRule="auto"/></w:pPr>
    <w:r><w:rPr><w:rFonts w:ascii="Inter"/><w:b/><w:sz w:val="36"/><w:color w:val="1F293B"/></w:rPr><w:t>AI Detection Report</w:t></w:r>
  </w:p>
  <w:p/>
  <w:p><w:r><w:t xml:space="preserve">   </w:t></w:r></w:p>
  <w:p>
    <w:pPr><w:spacing w:line="240" w:lineRule="exact"/><w:ind w:left="720" w:hanging="360"/></w:pPr>
    <w:r><w:t xml:space="preserve">Visit </w:t></w:r>
    <w:hyperlink r:id="rId3"><w:r><w:t>scopelens.ai</w:t></w:r></w:hyperlink>
    <w:r><w:rPr><w:i/><w:u w:val="single"/><w:vertAlign w:val="superscript"/><w:color w:val="auto" w:themeColor="accent1"/></w:rPr><w:t>1</w:t></w:r>
    <w:r><w:rPr><w:sz w:val="21"/></w:rPr><w:drawing><wp:inline><wp:extent cx="914400" cy="457200"/><a:graphic><a:graphicData><pic:pic><pic:blipFill><a:blip r:embed="rId2"/></pic:blipFill></pic:pic></a:graphicData></a:graphic></wp:inline></w:drawing></w:r>
  </w:p>
  <w:tbl>
    <w:tblGrid><w:gridCol w:w="4000"/><w:gridCol w:w="4000"/></w:tblGrid>
    <w:tr><w:tc><w:tcPr><w:gridSpan w:val="2"/></w:tcPr><w:p><w:r><w:t>Summary</w:t></w:r></w:p></w:tc></w:tr>
    <w:tr>
      <w:tc><w:tcPr><w:vMerge w:val="restart"/></w:tcPr><w:p><w:r><w:t>Group</w:t></w:r></w:p></w:tc>
      <w:tc><w:p><w:r><w:t>12%</w:t></w:r></w:p></w:tc>
    </w:tr>
    <w:tr>
      <w:tc><w:tcPr><w:vMerge/></w:tcPr><w:p/></w:tc>
      <w:tc><w:p><w:r><w:drawing><wp:anchor><wp:extent cx="182880" cy="182880"/><a:graphic><a:graphicData><pic:pic><pic:blipFill><a:blip r:embed="rId9"/></pic:blipFill></pic:pic></a:graphicData></a:graphic></wp:anchor></w:drawing></w:r></w:p></w:tc>
    </w:tr>
  </w:tbl>
  <w:p>
    <w:pPr><w:pStyle w:val="Missing"/><w:sectPr><w:pgSz w:w="12240" w:h="15840"/><w:pgMar w:top="1440" w:bottom="1440" w:left="1080" w:right="1080" w:header="720" w:footer="0"/></w:sectPr></w:pPr>
    <w:r><w:t>Closing</w:t></w:r>
  </w:p>
  <w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="720" w:bottom="720" w:left="720" w:right="720" w:header="360" w:footer="360"/></w:sectPr>
</w:body>
</w:document>`

const fixtureRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/image1.png"/>
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="https://scopelens.ai" TargetMode="External"/>
</Relationships>`

const fixtureContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// writeDocx writes a DOCX archive with the given parts in order.
func writeDocx(t *testing.T, parts [][2]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "report.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, part := range parts {
		w, err := zw.Create(part[0])
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(part[1])); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeFixtureDocx(t *testing.T) string {
	t.Helper()
	return writeDocx(t, [][2]string{
		{"[Content_Types].xml", fixtureContentTypes},
		{"word/document.xml", fixtureDocument},
		{"word/styles.xml", fixtureStyles},
		{"word/_rels/document.xml.rels", fixtureRels},
		{"word/media/image1.png", string(pngBytes(t, 3, 2))},
		{"word/media/image2.emf", string(bytes.Repeat([]byte{0x01}, 1500))},
	})
}

func openFixture(t *testing.T) *Reader {
	t.Helper()
	r, err := Open(writeFixtureDocx(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
