package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/dendrascience/numchar/table"
	"github.com/spf13/cobra"
)

// NewValidateCmd creates and returns the validate subcommand for the numchar CLI.
// It re-reads a written table and checks it for consistency.
func NewValidateCmd() *cobra.Command {
	var (
		path    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a number-character table file",
		Long: `Validate a table written by build.

This command parses the CSV file and checks that code points are strictly
ascending, that each one has a UTF-8 encoding, and that the hex and char
columns agree with the dec column.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), path, verbose)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "Path to the table file to validate (required)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("path")

	return cmd
}

func runValidate(out io.Writer, path string, verbose bool) error {
	if verbose {
		log.Printf("Validating %s", path)
	}

	records, err := table.ReadFile(path)
	if err != nil {
		return err
	}
	if err := table.Check(records); err != nil {
		return fmt.Errorf("%s is invalid: %w", path, err)
	}

	fmt.Fprintf(out, "Validation complete:\n")
	fmt.Fprintf(out, "  Rows checked: %d\n", len(records))
	if verbose {
		for _, pc := range table.CountByPlane(records) {
			fmt.Fprintf(out, "  Plane %d (%s): %d\n", pc.Plane, pc.Name, pc.Count)
		}
	}
	return nil
}
