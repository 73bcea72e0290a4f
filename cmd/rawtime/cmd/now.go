package cmd

import (
	"github.com/spf13/cobra"
)

var nowPrecision string

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current local time",
	Long: `Prints the current local time in the configured layout, or as an
encoded integer when --precision is given.`,
	Args: cobra.NoArgs,
	RunE: runNow,
}

func init() {
	rootCmd.AddCommand(nowCmd)
	nowCmd.Flags().StringVarP(&nowPrecision, "precision", "p", "", "print the day, minute, second or full encoding")
}

func runNow(cmd *cobra.Command, args []string) error {
	rt, err := calc.Now()
	if err != nil {
		return err
	}

	if nowPrecision == "" {
		out(cmd, "%s\n", format(rt))
		return nil
	}
	p, err := lookupPrecision(nowPrecision)
	if err != nil {
		return err
	}
	out(cmd, "%d\n", p.encode(rt))
	return nil
}
