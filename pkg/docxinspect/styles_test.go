package docxinspect

import (
	"encoding/xml"
	"testing"
)

func TestOnOffValue(t *testing.T) {
	tests := []struct {
		name string
		in   *onOffXML
		want *bool
	}{
		{"missing", nil, nil},
		{"bare element", &onOffXML{}, ptr(true)},
		{"true", &onOffXML{Val: "true"}, ptr(true)},
		{"one", &onOffXML{Val: "1"}, ptr(true)},
		{"zero", &onOffXML{Val: "0"}, ptr(false)},
		{"off", &onOffXML{Val: "off"}, ptr(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.value()
			if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
				t.Errorf("value() = %v, want %v", boolString(got), boolString(tt.want))
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestStyles(t *testing.T) {
	var x stylesXML
	if err := xml.Unmarshal([]byte(fixtureStyles), &x); err != nil {
		t.Fatal(err)
	}
	styles := newStyles(&x)

	tests := []struct {
		id   string
		want string
	}{
		{"Heading1", "Heading 1"},
		{"Normal", "Normal"},
		{"", "Normal"},
		{"Missing", "Normal"},
		// character styles cannot be paragraph styles
		{"Strong", "Normal"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := styles.ParagraphStyle(tt.id).DisplayName(); got != tt.want {
				t.Errorf("ParagraphStyle(%q) = %s, want %s", tt.id, got, tt.want)
			}
		})
	}

	heading := styles.ParagraphStyle("Heading1")
	if heading.Font.Color.RGB != "1F293B" || !isTrue(heading.Font.Bold) || *heading.Font.Size != 16 {
		t.Errorf("unexpected heading font: %+v", heading.Font)
	}
	if styles.DefaultFont.Name != "Calibri" || *styles.DefaultFont.Size != 11 {
		t.Errorf("unexpected document default font: %+v", styles.DefaultFont)
	}

	if got := newStyles(nil).ParagraphStyle("Normal").DisplayName(); got != "None" {
		t.Errorf("style of a document without styles = %s, want None", got)
	}
}
