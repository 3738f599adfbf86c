// Package cmd provides the command-line interface implementation for numchar.
//
// This package contains all the subcommand implementations for the numchar CLI
// tool. It uses the Cobra library for command structure and Fang for styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - build: Build the number-character table and write it as CSV
//   - validate: Re-read a written table and check its invariants
//   - count: Count representable code points per Unicode plane
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The table package does the work;
// commands only parse flags and report.
package cmd
