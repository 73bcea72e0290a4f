package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/rawtime/pkg/rawtime"
)

var compareCmd = &cobra.Command{
	Use:   "compare <a> <b>",
	Short: "Compare two times",
	Long: `Prints the ordering of a and b (-1, 0 or 1), the earlier and later of the
two, and the difference a - b. Spans too long for a duration are printed
in milliseconds.

Example:
  rawtime compare 2024-02-29 "2024-03-01 12:00:00"`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	a, err := parseTime(args[0])
	if err != nil {
		return err
	}
	b, err := parseTime(args[1])
	if err != nil {
		return err
	}

	out(cmd, "compare:    %d\n", a.Compare(b))
	out(cmd, "min:        %s\n", format(rawtime.Min(a, b)))
	out(cmd, "max:        %s\n", format(rawtime.Max(a, b)))
	if d, err := rawtime.Difference(a, b); err == nil {
		out(cmd, "difference: %s\n", d)
	} else {
		out(cmd, "difference: %dms\n", rawtime.DifferenceMilliseconds(a, b))
	}
	return nil
}
