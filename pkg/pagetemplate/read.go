package pagetemplate

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Field is a form field as found in a PDF. Rect is in PDF user space.
type Field struct {
	Name     string
	Value    string
	ReadOnly bool
	Rect     [4]float64
	DA       string
}

// ReadFields returns the terminal fields of the document AcroForm in document order.
func ReadFields(inFile string) ([]Field, error) {
	ctx, err := api.ReadContextFile(inFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF %s: %w", inFile, err)
	}

	catalog, err := ctx.Catalog()
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}
	form, err := ctx.DereferenceDict(catalog["AcroForm"])
	if err != nil {
		return nil, fmt.Errorf("failed to read AcroForm: %w", err)
	}
	if form == nil {
		return nil, nil
	}

	refs, err := ctx.DereferenceArray(form["Fields"])
	if err != nil {
		return nil, fmt.Errorf("failed to read AcroForm fields: %w", err)
	}

	var fields []Field
	for _, o := range refs {
		collected, err := collectFields(ctx, o, "")
		if err != nil {
			return nil, err
		}
		fields = append(fields, collected...)
	}
	return fields, nil
}

// collectFields walks a field and its kids, joining partial names with dots.
func collectFields(ctx *model.Context, o types.Object, parent string) ([]Field, error) {
	d, err := ctx.DereferenceDict(o)
	if err != nil {
		return nil, fmt.Errorf("failed to read field: %w", err)
	}
	if d == nil {
		return nil, nil
	}

	name := textString(d["T"])
	if parent != "" && name != "" {
		name = parent + "." + name
	} else if name == "" {
		name = parent
	}

	kids, err := ctx.DereferenceArray(d["Kids"])
	if err != nil {
		return nil, fmt.Errorf("failed to read kids of field %s: %w", name, err)
	}
	// kids without a name of their own are widgets of this field
	var named []types.Object
	for _, k := range kids {
		kd, err := ctx.DereferenceDict(k)
		if err != nil {
			return nil, fmt.Errorf("failed to read kid of field %s: %w", name, err)
		}
		if _, ok := kd["T"]; ok {
			named = append(named, k)
		}
	}
	if len(named) > 0 {
		var fields []Field
		for _, k := range named {
			collected, err := collectFields(ctx, k, name)
			if err != nil {
				return nil, err
			}
			fields = append(fields, collected...)
		}
		return fields, nil
	}

	f := Field{
		Name:  name,
		Value: textString(d["V"]),
		DA:    textString(d["DA"]),
	}
	if ff, ok := d["Ff"].(types.Integer); ok {
		f.ReadOnly = ff.Value()&fieldFlagReadOnly != 0
	}
	if rect, err := ctx.DereferenceArray(d["Rect"]); err == nil && len(rect) == 4 {
		for i, v := range rect {
			f.Rect[i] = number(v)
		}
	}
	return []Field{f}, nil
}

func number(o types.Object) float64 {
	switch v := o.(type) {
	case types.Integer:
		return float64(v.Value())
	case types.Float:
		return v.Value()
	}
	return 0
}

// textString decodes a PDF text string, literal or hex, PDFDocEncoding or UTF-16BE.
func textString(o types.Object) string {
	switch v := o.(type) {
	case types.Name:
		return string(v)
	case types.StringLiteral, types.HexLiteral:
		s, err := types.StringOrHexLiteral(v)
		if err != nil || s == nil {
			return ""
		}
		return *s
	}
	return ""
}
