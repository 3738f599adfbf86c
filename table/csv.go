package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Header is the first row of every table file.
var Header = []string{"dec", "hex", "char"}

// Write serializes records as UTF-8 CSV, header first, in the order given.
func Write(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	row := make([]string, len(Header))
	for _, r := range records {
		row[0] = strconv.Itoa(r.CodePoint)
		row[1] = r.Hex
		row[2] = string(r.Char)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r.CodePoint, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}
	return nil
}

// WriteFile writes records to path, creating or truncating it.
func WriteFile(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, records); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// Read parses a table written by Write.
// It does not check the table's invariants; see Check.
func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.UTF8.NewDecoder()))
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty input", ErrBadHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadHeader, err)
	}
	if !slices.Equal(header, Header) {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrBadHeader, header, Header)
	}

	var records []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadRow, err)
		}
		line, _ := cr.FieldPos(0)
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return records, nil
}

func parseRow(row []string) (Record, error) {
	cp, err := strconv.Atoi(row[0])
	if err != nil {
		return Record{}, fmt.Errorf("%w: dec %q: %w", ErrBadRow, row[0], err)
	}
	c, size := utf8.DecodeRuneInString(row[2])
	if size == 0 || size != len(row[2]) || (c == utf8.RuneError && size == 1) {
		return Record{}, fmt.Errorf("%w: char %q is not a single character", ErrBadRow, row[2])
	}
	return Record{CodePoint: cp, Hex: row[1], Char: c}, nil
}

// Check verifies that records form a valid table: strictly ascending code
// points, each representable, with hex and char columns that agree with it.
// The first violation is returned.
func Check(records []Record) error {
	prev := -1
	for i, r := range records {
		switch {
		case !Representable(r.CodePoint):
			return fmt.Errorf("row %d: %d: %w", i+1, r.CodePoint, ErrUnrepresentable)
		case r.CodePoint <= prev:
			return fmt.Errorf("row %d: %d after %d: %w", i+1, r.CodePoint, prev, ErrNotAscending)
		case r.Hex != HexForm(r.CodePoint):
			return fmt.Errorf("row %d: %q for %d: %w", i+1, r.Hex, r.CodePoint, ErrHexMismatch)
		case r.Char != rune(r.CodePoint):
			return fmt.Errorf("row %d: %q for %d: %w", i+1, r.Char, r.CodePoint, ErrCharMismatch)
		}
		prev = r.CodePoint
	}
	return nil
}
