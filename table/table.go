package table

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultStart and DefaultEnd bound the range used when no other is given.
	DefaultStart = 0
	DefaultEnd   = 1024

	// FullEnd is the upper bound of a full-table run. It is the count of
	// Unicode scalar values, not the highest code point.
	FullEnd = 1112064

	// MaxCodePoint is the highest code point Build accepts.
	MaxCodePoint = unicode.MaxRune
)

// Record is one row of the table.
type Record struct {
	CodePoint int
	Hex       string
	Char      rune
}

// Representable reports whether cp has a non-empty UTF-8 encoding.
func Representable(cp int) bool {
	if cp < 0 || cp > MaxCodePoint {
		return false
	}
	return utf8.RuneLen(rune(cp)) > 0
}

// HexForm returns cp as a lowercase hexadecimal string with a 0x prefix.
func HexForm(cp int) string {
	return "0x" + strconv.FormatInt(int64(cp), 16)
}

// Build returns a Record for every representable code point in [start, end],
// in ascending order. Code points without a UTF-8 encoding are skipped.
//
// start must be non-negative, no greater than end, and end must not exceed
// MaxCodePoint; otherwise Build returns no records and an error wrapping
// ErrNegativeStart, ErrInvalidRange or ErrOutOfRange.
func Build(start, end int) ([]Record, error) {
	switch {
	case start < 0:
		return nil, fmt.Errorf("invalid range [%d, %d]: %w", start, end, ErrNegativeStart)
	case start > end:
		return nil, fmt.Errorf("invalid range [%d, %d]: %w", start, end, ErrInvalidRange)
	case end > MaxCodePoint:
		return nil, fmt.Errorf("invalid range [%d, %d]: %w (max %s)", start, end, ErrOutOfRange, HexForm(MaxCodePoint))
	}

	records := make([]Record, 0, end-start+1)
	for i := start; i <= end; i++ {
		if !Representable(i) {
			continue
		}
		records = append(records, Record{
			CodePoint: i,
			Hex:       HexForm(i),
			Char:      rune(i),
		})
	}
	return records, nil
}
