package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/rawtime/foundation/core/log"
)

var decodePrecision string

var decodeCmd = &cobra.Command{
	Use:   "decode <integer>",
	Short: "Decode a decimal integer encoding",
	Long: `Decodes an encoded integer and prints it in the configured layout.
Without --precision the precision follows from the number of digits.

Examples:
  rawtime decode 20240229235807042
  rawtime decode 10101 --precision day
  rawtime decode 20240229 --format display-date --locale de`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringVarP(&decodePrecision, "precision", "p", "", "day, minute, second or full (default: by digit count)")
}

func runDecode(cmd *cobra.Command, args []string) error {
	arg := strings.TrimSpace(args[0])
	n, err := parseInt(arg, "encoding")
	if err != nil {
		return err
	}

	p, ok := precisionByDigits[len(arg)]
	if decodePrecision != "" || !ok {
		name := decodePrecision
		if name == "" {
			name = "full"
		}
		if p, err = lookupPrecision(name); err != nil {
			return err
		}
	}

	rt, err := p.decode(n)
	if err != nil {
		return err
	}
	logger.Debug("decoded", mdwlog.Int64("value", n).Merge(mdwlog.String("precision", p.name)))

	out(cmd, "%s\n", format(rt))
	return nil
}
