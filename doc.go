// Package main provides the numchar command-line interface.
//
// numchar builds a table of Unicode code points and the characters they name,
// leaving out numbers that have no UTF-8 encoding, and writes it as a UTF-8
// CSV file with the header dec,hex,char. A truncated view of the table is
// printed before the file is written.
//
// The main binary supports multiple subcommands:
//   - build: Build the table and write it as CSV
//   - validate: Check a previously written table
//   - count: Count representable code points per Unicode plane
package main
