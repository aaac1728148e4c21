package docxinspect

import (
	"strconv"
	"strings"
)

// newTable expands horizontally merged cells over their grid span and lets
// vertically merged continuation cells repeat the text of the cell above.
func newTable(t tableXML) Table {
	table := Table{Columns: len(t.Grid)}

	var prev []string
	for _, row := range t.Rows {
		var cells []string
		for _, c := range row.Cells {
			span := 1
			if gs := c.Properties.GridSpan; gs != nil {
				if n, err := strconv.Atoi(gs.Val); err == nil && n > 1 {
					span = n
				}
			}

			text := cellText(c)
			if vm := c.Properties.VMerge; vm != nil && vm.Val != "restart" {
				if col := len(cells); col < len(prev) {
					text = prev[col]
				}
			}

			for i := 0; i < span; i++ {
				cells = append(cells, text)
			}
		}
		table.Rows = append(table.Rows, cells)
		prev = cells
	}
	return table
}

func cellText(c cellXML) string {
	texts := make([]string, len(c.Paragraphs))
	for i, p := range c.Paragraphs {
		texts[i] = p.Text
	}
	return strings.Join(texts, "\n")
}
