package ui

import (
	"fmt"
	"io"
	"strings"

	"minisql/pkg/engine"
	"minisql/pkg/shell"
	"minisql/pkg/ui/base"
)

// maxCellWidth bounds the width of one cell in text output.
const maxCellWidth = 40

// WriteOutput prints the results of one shell run as plain text: grids as
// aligned tables, everything else as a status line.
func WriteOutput(w io.Writer, out shell.Output) error {
	for _, res := range out.Results {
		if err := writeResult(w, res); err != nil {
			return err
		}
	}
	return nil
}

func writeResult(w io.Writer, res engine.QueryResult) error {
	if !res.Success {
		_, err := fmt.Fprintf(w, "ERROR %s\n", res.Message)
		return err
	}
	if res.Columns == nil {
		_, err := fmt.Fprintln(w, res.Message)
		return err
	}
	if _, err := io.WriteString(w, RenderGrid(res.Columns, res.Rows)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "(%s)\n", res.Message)
	return err
}

// RenderGrid lays out columns and rows as a text table. CHAR values are
// shown with their padding, so cells are quoted only when they carry
// trailing spaces.
func RenderGrid(columns []string, rows [][]string) string {
	cells := make([][]string, len(rows))
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len(c)
	}
	for r, row := range rows {
		cells[r] = make([]string, len(columns))
		for i := range columns {
			v := ""
			if i < len(row) {
				v = displayCell(row[i])
			}
			cells[r][i] = v
			widths[i] = base.Clamp(max(widths[i], len(v)), 1, maxCellWidth)
		}
	}

	var b strings.Builder
	writeRow := func(vals []string) {
		for i, v := range vals {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(base.PadString(base.TruncateString(v, widths[i]), widths[i]))
		}
		b.WriteString("\n")
	}

	writeRow(columns)
	for i, w := range widths {
		if i > 0 {
			b.WriteString("-+-")
		}
		b.WriteString(strings.Repeat("-", w))
	}
	b.WriteString("\n")
	for _, row := range cells {
		writeRow(row)
	}
	return b.String()
}

func displayCell(v string) string {
	if strings.HasSuffix(v, " ") {
		return "'" + v + "'"
	}
	return v
}
