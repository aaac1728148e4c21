// Package svghue recolors SVG icons by routing their content through a
// hue-rotation filter.
package svghue

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/beevik/etree"
	"github.com/scopelens/assetprep/internal/util"
)

type Options struct {
	FilterID string `validate:"strNotEmpty"`
	// Hue rotation in degrees
	HueRotate float64
}

func DefaultOptions() Options {
	return Options{
		FilterID:  "purple-filter",
		HueRotate: 100,
	}
}

type Result struct {
	// Element children of the root moved under the filtered group
	Moved int
}

// Recolor moves every child of the root element into a <g> referencing a new
// hueRotate filter. The filter becomes the first child of the root and the group
// the last. Running it twice nests a second group around the first.
func Recolor(r io.Reader, w io.Writer, opts Options) (*Result, error) {
	if err := util.ValidationError(util.NewValidator().Struct(opts)); err != nil {
		return nil, err
	}

	doc, err := parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}

	res := wrap(doc.Root(), opts)
	if _, err := doc.WriteTo(w); err != nil {
		return nil, fmt.Errorf("failed to write SVG: %w", err)
	}
	return res, nil
}

func wrap(root *etree.Element, opts Options) *Result {
	// new elements share the prefix of the root, if any
	tag := func(local string) string {
		if root.Space == "" {
			return local
		}
		return root.Space + ":" + local
	}

	children := append([]etree.Token(nil), root.Child...)

	filter := root.CreateElement(tag("filter"))
	filter.CreateAttr("id", opts.FilterID)
	matrix := filter.CreateElement(tag("feColorMatrix"))
	matrix.CreateAttr("type", "hueRotate")
	matrix.CreateAttr("values", strconv.FormatFloat(opts.HueRotate, 'f', -1, 64))

	group := root.CreateElement(tag("g"))
	group.CreateAttr("filter", "url(#"+opts.FilterID+")")

	res := &Result{}
	for _, c := range children {
		if _, ok := c.(*etree.Element); ok {
			res.Moved++
		}
		group.AddChild(c)
	}
	return res
}

// RecolorFile reads inFile completely before writing outFile, so both may name
// the same file.
func RecolorFile(inFile, outFile string, opts Options) (*Result, error) {
	data, err := os.ReadFile(inFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read SVG: %w", err)
	}

	var buf bytes.Buffer
	res, err := Recolor(bytes.NewReader(data), &buf, opts)
	if err != nil {
		return nil, err
	}

	if err := util.EnsureParentDir(outFile); err != nil {
		return nil, err
	}
	if err := os.WriteFile(outFile, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", outFile, err)
	}
	return res, nil
}
