package cmd

import (
	"fmt"
	"io"

	"github.com/dendrascience/numchar/table"
	"github.com/spf13/cobra"
)

// NewCountCmd creates and returns the count subcommand for the numchar CLI.
// It counts representable code points per plane without writing a file.
func NewCountCmd() *cobra.Command {
	var start, end int

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count representable code points per Unicode plane",
		Long: `Count the code points in a range that build would keep, grouped by
Unicode plane. Nothing is written to disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd.OutOrStdout(), start, end)
		},
	}

	cmd.Flags().IntVarP(&start, "start", "s", table.DefaultStart, "First code point of the range")
	cmd.Flags().IntVarP(&end, "end", "e", table.FullEnd, "Last code point of the range (inclusive)")

	return cmd
}

func runCount(out io.Writer, start, end int) error {
	records, err := table.Build(start, end)
	if err != nil {
		return err
	}

	for _, pc := range table.CountByPlane(records) {
		fmt.Fprintf(out, "%2d  %-36s %8d\n", pc.Plane, pc.Name, pc.Count)
	}
	fmt.Fprintf(out, "Total: %d of %d\n", len(records), end-start+1)
	return nil
}
