package cmd

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/dendrascience/numchar/table"
	"github.com/spf13/cobra"
)

// DefaultOutput is the file written by build when --output is not given.
const DefaultOutput = "number_character_table.csv"

type buildOptions struct {
	start      int
	end        int
	outputPath string
	rows       int
	quiet      bool
	verbose    bool
}

// NewBuildCmd creates and returns the build subcommand for the numchar CLI.
// It builds the table for a range, prints it and writes it as CSV.
func NewBuildCmd() *cobra.Command {
	var opts buildOptions

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the number-character table and write it as CSV",
		Long: `Build the number-character table for a range of code points.

Every number from --start to --end inclusive is mapped to its Unicode
character. Numbers without a UTF-8 encoding are skipped. The table is
printed to stdout and written to --output with the header dec,hex,char.

Range bounds may be given in decimal or with a 0x prefix. The default
range, 0 to 1112064, produces the full table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.start, "start", "s", table.DefaultStart, "First code point of the range")
	cmd.Flags().IntVarP(&opts.end, "end", "e", table.FullEnd, "Last code point of the range (inclusive)")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", DefaultOutput, "Path of the CSV file to write")
	cmd.Flags().IntVarP(&opts.rows, "rows", "n", 5, "Rows to print from each end of the table (0 prints all)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Do not print the table")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func runBuild(out io.Writer, opts buildOptions) error {
	began := time.Now()
	records, err := table.Build(opts.start, opts.end)
	if err != nil {
		return err
	}
	if opts.verbose {
		log.Printf("Built %d records from [%d, %d] in %s", len(records), opts.start, opts.end, time.Since(began))
	}

	if !opts.quiet {
		if err := table.Dump(out, records, opts.rows); err != nil {
			return fmt.Errorf("failed to print table: %w", err)
		}
	}

	if err := table.WriteFile(opts.outputPath, records); err != nil {
		return err
	}
	if opts.verbose {
		log.Printf("Wrote %s", opts.outputPath)
	}
	return nil
}
