package pagetemplate

import "strings"

type FontWeight string

const (
	FontWeightRegular FontWeight = "regular"
	FontWeightBold    FontWeight = "bold"
)

// Font describes text drawn with one of the standard 14 PDF fonts, so nothing
// has to be embedded in the template.
type Font struct {
	Name   string     `mapstructure:"name" validate:"strNotEmpty"`
	Size   float64    `mapstructure:"size" validate:"gt=0"`
	Color  string     `mapstructure:"color" validate:"hexcolor"`
	Weight FontWeight `mapstructure:"weight" validate:"omitempty,oneof=regular bold"`
}

type coreFamily struct {
	regular, bold string
}

var coreFamilies = map[string]coreFamily{
	"helvetica":   {"Helvetica", "Helvetica-Bold"},
	"helv":        {"Helvetica", "Helvetica-Bold"},
	"times":       {"Times-Roman", "Times-Bold"},
	"times-roman": {"Times-Roman", "Times-Bold"},
	"courier":     {"Courier", "Courier-Bold"},
}

// Resource names follow the Acrobat convention for form fonts.
var coreResourceNames = map[string]string{
	"Helvetica":      "Helv",
	"Helvetica-Bold": "HeBo",
	"Times-Roman":    "TiRo",
	"Times-Bold":     "TiBo",
	"Courier":        "Cour",
	"Courier-Bold":   "CoBo",
}

// BaseFont returns the PDF base font name for the family and weight,
// e.g. Helvetica + bold is Helvetica-Bold.
func (f Font) BaseFont() string {
	if _, ok := coreResourceNames[f.Name]; ok && f.Weight != FontWeightBold {
		return f.Name
	}

	family, ok := coreFamilies[strings.ToLower(f.Name)]
	if !ok {
		return f.Name
	}
	if f.Weight == FontWeightBold {
		return family.bold
	}
	return family.regular
}

// IsCoreFont reports whether the font resolves to a font every viewer carries.
func (f Font) IsCoreFont() bool {
	_, ok := coreResourceNames[f.BaseFont()]
	return ok
}

// ResourceName is the key under which the font is registered in resource dictionaries.
func (f Font) ResourceName() string {
	if name, ok := coreResourceNames[f.BaseFont()]; ok {
		return name
	}
	return strings.NewReplacer("-", "", " ", "").Replace(f.BaseFont())
}
