package pagetemplate

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/font"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

const (
	fieldFlagReadOnly = 1
	annotFlagPrint    = 4
)

// formFonts registers each core font once and hands out its indirect reference.
type formFonts struct {
	ctx  *model.Context
	refs map[string]types.IndirectRef
}

func newFormFonts(ctx *model.Context) *formFonts {
	return &formFonts{ctx: ctx, refs: map[string]types.IndirectRef{}}
}

func (ff *formFonts) ref(f Font) (types.IndirectRef, error) {
	name := f.ResourceName()
	if ir, ok := ff.refs[name]; ok {
		return ir, nil
	}

	d := types.Dict{
		"Type":     types.Name("Font"),
		"Subtype":  types.Name("Type1"),
		"BaseFont": types.Name(f.BaseFont()),
		"Encoding": types.Name("WinAnsiEncoding"),
	}
	ir, err := ff.ctx.IndRefForNewObject(d)
	if err != nil {
		return types.IndirectRef{}, fmt.Errorf("failed to add font %s: %w", f.BaseFont(), err)
	}
	ff.refs[name] = *ir
	return *ir, nil
}

func (ff *formFonts) resources() types.Dict {
	d := types.Dict{}
	for name, ir := range ff.refs {
		d[name] = ir
	}
	return d
}

// textLiteral encodes a field name or value the way pdfcpu writes form text,
// as an escaped UTF-16BE string literal.
func textLiteral(s string) (types.StringLiteral, error) {
	e, err := types.EscapedUTF16String(s)
	if err != nil {
		return "", err
	}
	return types.StringLiteral(*e), nil
}

// defaultAppearance is the DA string of a field, e.g. "/HeBo 17 Tf 0.122 0.161 0.231 rg".
func defaultAppearance(f Font) string {
	return fmt.Sprintf("/%s %s Tf %s rg", f.ResourceName(), formatNumber(f.Size), rgbOperands(f.Color))
}

// appearanceStream draws the field value the way a viewer would before any edit.
func appearanceStream(ctx *model.Context, spec FieldSpec, fontRef types.IndirectRef) (*types.IndirectRef, error) {
	w, h := spec.Rect.Width(), spec.Rect.Height()
	baseFont := spec.Font.BaseFont()
	// vertically centered on the font bounding box, as pdfcpu lays out text fields
	lineHeight := font.LineHeight(baseFont, 1) * spec.Font.Size
	ty := (h-lineHeight)/2 + font.Descent(baseFont, 1)*spec.Font.Size

	// core fonts use WinAnsiEncoding
	text, err := types.Escape(model.DecodeUTF8ToByte(spec.Value))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("/Tx BMC\nq\nBT\n")
	fmt.Fprintf(&buf, "%s\n", defaultAppearance(spec.Font))
	fmt.Fprintf(&buf, "2 %s Td\n", formatNumber(ty))
	fmt.Fprintf(&buf, "(%s) Tj\n", *text)
	buf.WriteString("ET\nQ\nEMC\n")

	sd, err := ctx.XRefTable.NewStreamDictForBuf(buf.Bytes())
	if err != nil {
		return nil, err
	}
	sd.InsertName("Type", "XObject")
	sd.InsertName("Subtype", "Form")
	sd.Insert("BBox", types.NewRectangle(0, 0, w, h).Array())
	sd.Insert("Resources", types.Dict{"Font": types.Dict{spec.Font.ResourceName(): fontRef}})
	if err := sd.Encode(); err != nil {
		return nil, fmt.Errorf("failed to encode appearance of field %s: %w", spec.Name, err)
	}

	ir, err := ctx.IndRefForNewObject(*sd)
	if err != nil {
		return nil, fmt.Errorf("failed to add appearance of field %s: %w", spec.Name, err)
	}
	return ir, nil
}

// AddTextFields adds one read-only text field per FieldSpec to the given page. Existing
// annotations and form fields are kept, so fields with the same name are appended
// rather than replaced.
func AddTextFields(inFile, outFile string, pageNr int, pageHeight float64, specs []FieldSpec) error {
	ctx, err := api.ReadContextFile(inFile)
	if err != nil {
		return fmt.Errorf("failed to read PDF %s: %w", inFile, err)
	}

	if pageNr < 1 || pageNr > ctx.PageCount {
		return fmt.Errorf("page %d out of range, document has %d pages", pageNr, ctx.PageCount)
	}

	pageDict, pageRef, _, err := ctx.PageDict(pageNr, false)
	if err != nil {
		return fmt.Errorf("failed to get page %d: %w", pageNr, err)
	}
	if pageDict == nil {
		return fmt.Errorf("page %d not found", pageNr)
	}

	fonts := newFormFonts(ctx)
	// the form default appearance refers to Helv
	if _, err := fonts.ref(Font{Name: "Helvetica"}); err != nil {
		return err
	}

	var widgets types.Array
	for _, spec := range specs {
		fontRef, err := fonts.ref(spec.Font)
		if err != nil {
			return err
		}

		apRef, err := appearanceStream(ctx, spec, fontRef)
		if err != nil {
			return err
		}

		name, err := textLiteral(spec.Name)
		if err != nil {
			return err
		}
		value, err := textLiteral(spec.Value)
		if err != nil {
			return err
		}

		// the field and its only widget share one dictionary
		d := types.Dict{
			"Type":    types.Name("Annot"),
			"Subtype": types.Name("Widget"),
			"FT":      types.Name("Tx"),
			"T":       name,
			"V":       value,
			"DV":      value,
			"DA":      types.StringLiteral(defaultAppearance(spec.Font)),
			"Ff":      types.Integer(fieldFlagReadOnly),
			"F":       types.Integer(annotFlagPrint),
			"Rect":    types.NewRectangle(spec.Rect.X0, pageHeight-spec.Rect.Y1, spec.Rect.X1, pageHeight-spec.Rect.Y0).Array(),
			"AP":      types.Dict{"N": *apRef},
		}
		if pageRef != nil {
			d["P"] = *pageRef
		}

		ir, err := ctx.IndRefForNewObject(d)
		if err != nil {
			return fmt.Errorf("failed to add field %s: %w", spec.Name, err)
		}
		widgets = append(widgets, *ir)
	}

	annots, err := ctx.DereferenceArray(pageDict["Annots"])
	if err != nil {
		return fmt.Errorf("failed to read annotations of page %d: %w", pageNr, err)
	}
	pageDict["Annots"] = append(annots, widgets...)

	if err := extendAcroForm(ctx, widgets, fonts); err != nil {
		return err
	}

	if err := api.WriteContextFile(ctx, outFile); err != nil {
		return fmt.Errorf("failed to write PDF %s: %w", outFile, err)
	}
	return nil
}

// extendAcroForm creates the catalog AcroForm when missing and registers the new
// fields and fonts in it.
func extendAcroForm(ctx *model.Context, fields types.Array, fonts *formFonts) error {
	catalog, err := ctx.Catalog()
	if err != nil {
		return fmt.Errorf("failed to get catalog: %w", err)
	}

	form, err := ctx.DereferenceDict(catalog["AcroForm"])
	if err != nil {
		return fmt.Errorf("failed to read AcroForm: %w", err)
	}
	if form == nil {
		form = types.Dict{}
	}

	existing, err := ctx.DereferenceArray(form["Fields"])
	if err != nil {
		return fmt.Errorf("failed to read AcroForm fields: %w", err)
	}
	form["Fields"] = append(existing, fields...)
	form["NeedAppearances"] = types.Boolean(true)
	if _, ok := form["DA"]; !ok {
		form["DA"] = types.StringLiteral("/Helv 0 Tf 0 g")
	}

	dr, err := ctx.DereferenceDict(form["DR"])
	if err != nil {
		return fmt.Errorf("failed to read AcroForm resources: %w", err)
	}
	if dr == nil {
		dr = types.Dict{}
	}
	fontRes, err := ctx.DereferenceDict(dr["Font"])
	if err != nil {
		return fmt.Errorf("failed to read AcroForm fonts: %w", err)
	}
	if fontRes == nil {
		fontRes = types.Dict{}
	}
	for name, ir := range fonts.resources() {
		if _, ok := fontRes[name]; !ok {
			fontRes[name] = ir
		}
	}
	dr["Font"] = fontRes
	form["DR"] = dr

	catalog["AcroForm"] = form
	return nil
}
