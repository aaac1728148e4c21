package pagetemplate

import (
	"errors"
	"fmt"

	"github.com/scopelens/assetprep/internal/util"
	"github.com/spf13/viper"
	"golang.org/x/text/encoding/charmap"
)

// Rect is measured in PDF points from the top-left corner of the page.
type Rect struct {
	X0 float64 `mapstructure:"x0" json:"x0"`
	Y0 float64 `mapstructure:"y0" json:"y0"`
	X1 float64 `mapstructure:"x1" json:"x1" validate:"gtfield=X0"`
	Y1 float64 `mapstructure:"y1" json:"y1" validate:"gtfield=Y0"`
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Replacement covers Rect with the background color, then writes Text with its
// baseline 2pt above the bottom edge of Rect.
type Replacement struct {
	Rect Rect   `mapstructure:"rect"`
	Text string `mapstructure:"text" validate:"strNotEmpty"`
	Font Font   `mapstructure:"font"`
}

type FieldSpec struct {
	Name  string `mapstructure:"name" validate:"strNotEmpty"`
	Value string `mapstructure:"value"`
	Rect  Rect   `mapstructure:"rect"`
	Font  Font   `mapstructure:"font"`
}

type Layout struct {
	// 1-based page the layout applies to
	Page int `mapstructure:"page" validate:"gte=1"`
	// Color used to cover bands, stale text and replaced text
	Background   string        `mapstructure:"background" validate:"hexcolor"`
	Bands        []Rect        `mapstructure:"bands" validate:"dive"`
	Stale        []Rect        `mapstructure:"stale" validate:"dive"`
	Replacements []Replacement `mapstructure:"replacements" validate:"dive"`
	Fields       []FieldSpec   `mapstructure:"fields" validate:"unique=Name,dive"`
}

const (
	defaultBackground = "#FFFFFF"
	defaultTextColor  = "#1F293B"
	brandText         = "ScopeLens's"
)

// brandFontSize keeps the smaller size for mentions in the upper part of the page.
func brandFontSize(r Rect) float64 {
	if r.Y0 < 200 {
		return 6
	}
	return 7
}

func brandReplacement(r Rect) Replacement {
	return Replacement{
		Rect: r,
		Text: brandText,
		Font: Font{Name: "Helvetica", Size: brandFontSize(r), Color: defaultTextColor, Weight: FontWeightRegular},
	}
}

func field(name, value string, r Rect, weight FontWeight, size float64) FieldSpec {
	return FieldSpec{
		Name:  name,
		Value: value,
		Rect:  r,
		Font:  Font{Name: "Helvetica", Size: size, Color: defaultTextColor, Weight: weight},
	}
}

// DefaultLayout returns the geometry of the dashboard's second report page.
func DefaultLayout() Layout {
	return Layout{
		Page:       1,
		Background: defaultBackground,
		Bands: []Rect{
			{0, 0, 612, 48},
			{0, 745, 612, 792},
		},
		Stale: []Rect{
			{36, 79, 195, 104},
			{51, 187, 57, 199},
			{119, 187, 134, 199},
			{51, 215, 57, 227},
			{200, 215, 216, 227},
		},
		Replacements: []Replacement{
			brandReplacement(Rect{493, 108, 530, 119}),
			brandReplacement(Rect{147, 379, 188, 391}),
			brandReplacement(Rect{367, 389, 407, 401}),
		},
		Fields: []FieldSpec{
			field("main_percent", "0% detected as AI", Rect{36, 79, 260, 104}, FontWeightBold, 17),
			field("group1_count", "0", Rect{51, 187, 57, 199}, FontWeightBold, 7),
			field("group1_percent", "0%", Rect{119, 187, 140, 199}, FontWeightRegular, 7),
			field("group2_count", "0", Rect{51, 215, 57, 227}, FontWeightBold, 7),
			field("group2_percent", "0%", Rect{200, 215, 225, 227}, FontWeightRegular, 7),
		},
	}
}

// BackgroundRects lists every region painted with the background color, in drawing order.
func (l Layout) BackgroundRects() []Rect {
	rects := make([]Rect, 0, len(l.Bands)+len(l.Stale)+len(l.Replacements))
	rects = append(rects, l.Bands...)
	rects = append(rects, l.Stale...)
	for _, r := range l.Replacements {
		rects = append(rects, r.Rect)
	}
	return rects
}

func (l Layout) FieldNames() []string {
	names := make([]string, len(l.Fields))
	for i, f := range l.Fields {
		names[i] = f.Name
	}
	return names
}

// winAnsi reports whether s can be drawn with the WinAnsiEncoding of the core fonts.
func winAnsi(s string) bool {
	_, err := charmap.Windows1252.NewEncoder().String(s)
	return err == nil
}

// Validate checks the struct tags and that every text can be drawn with one of
// the standard 14 fonts.
func (l Layout) Validate() error {
	if err := util.ValidationError(util.NewValidator().Struct(l)); err != nil {
		return err
	}

	var errs []error
	for _, r := range l.Replacements {
		if !r.Font.IsCoreFont() {
			errs = append(errs, fmt.Errorf("replacement %q: font %s is not a standard PDF font", r.Text, r.Font.BaseFont()))
		}
		if !winAnsi(r.Text) {
			errs = append(errs, fmt.Errorf("replacement %q: text has characters outside WinAnsiEncoding", r.Text))
		}
	}
	for _, f := range l.Fields {
		if !f.Font.IsCoreFont() {
			errs = append(errs, fmt.Errorf("field %s: font %s is not a standard PDF font", f.Name, f.Font.BaseFont()))
		}
		if !winAnsi(f.Value) {
			errs = append(errs, fmt.Errorf("field %s: value %q has characters outside WinAnsiEncoding", f.Name, f.Value))
		}
	}
	return errors.Join(errs...)
}

// LoadLayout reads a YAML or JSON layout file. Page defaults to 1 and the
// background to white when the file leaves them out.
func LoadLayout(path string) (Layout, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("page", 1)
	v.SetDefault("background", defaultBackground)

	if err := v.ReadInConfig(); err != nil {
		return Layout{}, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}

	var layout Layout
	if err := v.Unmarshal(&layout); err != nil {
		return Layout{}, fmt.Errorf("failed to decode layout file %s: %w", path, err)
	}

	if err := layout.Validate(); err != nil {
		return Layout{}, fmt.Errorf("invalid layout file %s: %w", path, err)
	}

	return layout, nil
}
