package cmd

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/rawtime/foundation/core/error"
	"github.com/msto63/rawtime/pkg/rawtime"
)

type addFunc func(*rawtime.Calculator, rawtime.RawTime, int) (rawtime.RawTime, error)

// units maps every accepted unit spelling to the calculator method
var units = map[string]addFunc{
	"years":        (*rawtime.Calculator).AddYears,
	"year":         (*rawtime.Calculator).AddYears,
	"y":            (*rawtime.Calculator).AddYears,
	"months":       (*rawtime.Calculator).AddMonths,
	"month":        (*rawtime.Calculator).AddMonths,
	"mo":           (*rawtime.Calculator).AddMonths,
	"days":         (*rawtime.Calculator).AddDays,
	"day":          (*rawtime.Calculator).AddDays,
	"d":            (*rawtime.Calculator).AddDays,
	"hours":        (*rawtime.Calculator).AddHours,
	"hour":         (*rawtime.Calculator).AddHours,
	"h":            (*rawtime.Calculator).AddHours,
	"minutes":      (*rawtime.Calculator).AddMinutes,
	"minute":       (*rawtime.Calculator).AddMinutes,
	"min":          (*rawtime.Calculator).AddMinutes,
	"m":            (*rawtime.Calculator).AddMinutes,
	"seconds":      (*rawtime.Calculator).AddSeconds,
	"second":       (*rawtime.Calculator).AddSeconds,
	"s":            (*rawtime.Calculator).AddSeconds,
	"milliseconds": (*rawtime.Calculator).AddMilliseconds,
	"millisecond":  (*rawtime.Calculator).AddMilliseconds,
	"ms":           (*rawtime.Calculator).AddMilliseconds,
}

var addCmd = &cobra.Command{
	Use:   "add <time> <amount> <unit>",
	Short: "Shift a time by an amount of a calendar unit",
	Long: `Adds a signed amount of years, months, days, hours, minutes, seconds or
milliseconds. Month and year steps clamp the day to the end of the target
month. Results outside years 1-9999 are an error.

Examples:
  rawtime add 2024-01-31 1 month
  rawtime add "2024-02-29 23:58:07.042" -- -90 min`,
	Args: cobra.ExactArgs(3),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	add, ok := units[strings.ToLower(args[2])]
	if !ok {
		return mdwerror.Newf("unknown unit %q", args[2]).
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("valid", unitNames())
	}
	n, err := parseInt(args[1], "amount")
	if err != nil {
		return err
	}
	if int64(int(n)) != n {
		return mdwerror.Newf("amount %d does not fit an int", n).
			WithCode(mdwerror.CodeInvalidInput)
	}

	rt, err := parseTime(args[0])
	if err != nil {
		return err
	}

	timer := logger.StartTimer("add").
		WithField("unit", args[2]).
		WithField("amount", n)
	shifted, err := add(calc, rt, int(n))
	if err != nil {
		timer.StopWithError(err)
		return err
	}
	timer.Stop()

	out(cmd, "%s\n", format(shifted))
	return nil
}

func unitNames() []string {
	names := make([]string, 0, len(units))
	for name := range units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
