package cmd

import (
	"github.com/dendrascience/numchar/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the numchar CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "numchar",
		Short: "numchar - A table of every Unicode code point and its character",
		Long: `numchar maps each number in a range to the Unicode character it names and
writes the (dec, hex, char) triples to a UTF-8 CSV file. Numbers whose
character cannot be encoded as UTF-8, such as the surrogate halves
U+D800 to U+DFFF, are left out.

Use subcommands to perform different operations:
  - build: Build the table and write it as CSV
  - validate: Check a previously written table
  - count: Count representable code points per Unicode plane`,
		Version: version.GetFullVersion(),
	}

	groupTable := "table"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupTable,
		Title: "Table Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	buildCmd := NewBuildCmd()
	validateCmd := NewValidateCmd()
	countCmd := NewCountCmd()

	buildCmd.GroupID = groupTable
	validateCmd.GroupID = groupUtilities
	countCmd.GroupID = groupUtilities

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(countCmd)

	return rootCmd
}
