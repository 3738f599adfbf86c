package table

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// Dump prints a console view of records: the first and last rows entries
// with an ellipsis between them, followed by the table's dimensions.
// If rows is not positive, or the table is short enough, every record is shown.
func Dump(w io.Writer, records []Record, rows int) error {
	cells := [][3]string{{"dec", "hex", "char"}}
	if rows <= 0 || 2*rows >= len(records) {
		for _, r := range records {
			cells = append(cells, dumpCells(r))
		}
	} else {
		for _, r := range records[:rows] {
			cells = append(cells, dumpCells(r))
		}
		cells = append(cells, [3]string{ellipsis, ellipsis, ellipsis})
		for _, r := range records[len(records)-rows:] {
			cells = append(cells, dumpCells(r))
		}
	}

	var widths [3]int
	for _, c := range cells {
		for i := range c {
			widths[i] = max(widths[i], runewidth.StringWidth(c[i]))
		}
	}

	var b strings.Builder
	for _, c := range cells {
		b.WriteString(runewidth.FillRight(c[0], widths[0]))
		b.WriteString("  ")
		b.WriteString(runewidth.FillLeft(c[1], widths[1]))
		b.WriteString("  ")
		b.WriteString(runewidth.FillLeft(c[2], widths[2]))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "\n[%d rows x 2 columns]\n", len(records))

	_, err := io.WriteString(w, b.String())
	return err
}

func dumpCells(r Record) [3]string {
	return [3]string{strconv.Itoa(r.CodePoint), r.Hex, displayChar(r.Char)}
}

// displayChar escapes characters that have no visible glyph of their own.
func displayChar(c rune) string {
	if unicode.IsGraphic(c) {
		return string(c)
	}
	q := strconv.QuoteRuneToASCII(c)
	return q[1 : len(q)-1]
}
