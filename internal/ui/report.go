package ui

import (
	"fmt"
	"sort"
	"strings"
)

// Group is a named collection of member strings to report together, such
// as a payment plan and the users on it.
type Group struct {
	Title   string
	Members []string
}

// Cells are at least this wide so short names still form readable columns.
const minCellWidth = 10

// RenderReport renders groups of members for the given output geometry.
//
// On an interactive terminal of known width each group becomes a boxed
// table: a full-width divider, the centered title, another divider, then
// the group's members sorted and laid out in column-major order. Cell
// width is computed once across every member of every group, so
// consecutive tables share the same column rhythm.
//
// Anywhere else (pipes, redirects, terminals whose size cannot be read)
// the output is one "title<TAB>member" line per membership, in the order
// given, with nothing at all for empty groups.
//
// The caller's slices are never modified, and RenderReport performs no
// I/O; writing the result somewhere is the caller's business.
func RenderReport(groups []Group, geo Geometry) (string, error) {
	if geo.Width < 0 {
		return "", fmt.Errorf("invalid terminal width %d", geo.Width)
	}
	if geo.Interactive && geo.Width > 0 {
		return renderColumns(groups, geo.Width), nil
	}
	return renderFlat(groups), nil
}

func renderFlat(groups []Group) string {
	var b strings.Builder
	for _, g := range groups {
		for _, m := range g.Members {
			b.WriteString(g.Title)
			b.WriteByte('\t')
			b.WriteString(m)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func renderColumns(groups []Group, width int) string {
	cellWidth := minCellWidth
	for _, g := range groups {
		for _, m := range g.Members {
			if len(m) > cellWidth {
				cellWidth = len(m)
			}
		}
	}
	cellWidth++ // one gap character after every cell

	numCols := width / cellWidth
	if numCols < 1 {
		numCols = 1
	}

	divider := strings.Repeat("-", width)

	var b strings.Builder
	for _, g := range groups {
		b.WriteString(divider)
		b.WriteByte('\n')
		b.WriteString(center(g.Title, width))
		b.WriteByte('\n')
		b.WriteString(divider)
		b.WriteByte('\n')
		writeColumnBlock(&b, g.Members, cellWidth, numCols)
		b.WriteByte('\n')
	}
	return b.String()
}

// writeColumnBlock lays members out column-major: the sorted list is
// split into columns of numRows entries each, and rows are emitted by
// taking one cell from every column, left-justified to cellWidth.
func writeColumnBlock(b *strings.Builder, members []string, cellWidth, numCols int) {
	if len(members) == 0 {
		return
	}

	sorted := append([]string(nil), members...)
	sort.Strings(sorted)

	numRows := (len(sorted) + numCols - 1) / numCols

	var columns [][]string
	for start := 0; start < len(sorted); start += numRows {
		end := start + numRows
		if end > len(sorted) {
			end = len(sorted)
		}
		columns = append(columns, sorted[start:end])
	}

	for row := 0; row < numRows; row++ {
		for _, col := range columns {
			cell := ""
			if row < len(col) {
				cell = col[row]
			}
			fmt.Fprintf(b, "%-*s", cellWidth, cell)
		}
		b.WriteByte('\n')
	}
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
