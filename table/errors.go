package table

import "errors"

// Sentinel errors for package table.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Range errors
	ErrNegativeStart = errors.New("range start is negative")
	ErrInvalidRange  = errors.New("range start is greater than range end")
	ErrOutOfRange    = errors.New("range end is beyond the last Unicode code point")

	// Parse errors
	ErrBadHeader = errors.New("unexpected table header")
	ErrBadRow    = errors.New("malformed table row")

	// Check errors
	ErrNotAscending    = errors.New("code points are not strictly ascending")
	ErrUnrepresentable = errors.New("code point has no UTF-8 encoding")
	ErrHexMismatch     = errors.New("hex column does not match code point")
	ErrCharMismatch    = errors.New("char column does not match code point")
)
