package cmd

import (
	"github.com/spf13/cobra"
)

var encodePrecision string

var encodeCmd = &cobra.Command{
	Use:   "encode <time>",
	Short: "Encode a time as a decimal integer",
	Long: `Encodes a time as yyyyMMdd, yyyyMMddHHmm, yyyyMMddHHmmss or
yyyyMMddHHmmssfff, depending on --precision.

Examples:
  rawtime encode "2024-02-29 23:58:07.042"
  rawtime encode 2024-02-29 --precision day`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringVarP(&encodePrecision, "precision", "p", "full", "day, minute, second or full")
}

func runEncode(cmd *cobra.Command, args []string) error {
	p, err := lookupPrecision(encodePrecision)
	if err != nil {
		return err
	}

	timer := logger.StartTimer("encode").WithField("precision", p.name)
	rt, err := parseTime(args[0])
	if err != nil {
		timer.StopWithError(err)
		return err
	}
	timer.Stop()

	out(cmd, "%d\n", p.encode(rt))
	return nil
}
