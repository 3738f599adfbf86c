// Package table builds and serializes the number-character table.
//
// Every integer in a closed range is mapped to the Unicode character it
// names. Integers whose character has no UTF-8 encoding (the surrogate
// halves U+D800 through U+DFFF) are dropped without comment; everything
// else becomes a Record holding the integer, its 0x-prefixed lowercase hex
// form, and the character itself.
//
// Key Components:
//
// Building:
//   - Build enumerates [start, end] in ascending order
//   - Representable is the sole filtering predicate
//   - HexForm renders the hex column
//
// Serialization:
//   - Write and WriteFile emit a UTF-8 CSV with the header dec,hex,char
//   - WriteFile replaces the destination atomically via a temporary sibling
//   - Read and ReadFile parse a table back, Check verifies its invariants
//
// Presentation:
//   - Dump prints a truncated, width-aligned view for the console
//   - CountByPlane summarizes records per Unicode plane
package table
