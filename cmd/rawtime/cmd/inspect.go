package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/rawtime/foundation/utils/timex"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <time>",
	Short: "Show the fields, encodings and hash of a time",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	rt, err := parseTime(args[0])
	if err != nil {
		return err
	}

	weekday := calc.Format(rt, timex.FormatSpec{Layout: "Monday", Locale: cfg.Locale()})
	rows := []row{
		{"year", strconv.Itoa(rt.Year())},
		{"month", strconv.Itoa(rt.Month())},
		{"day", strconv.Itoa(rt.Day())},
		{"hour", strconv.Itoa(rt.Hour())},
		{"minute", strconv.Itoa(rt.Minute())},
		{"second", strconv.Itoa(rt.Second())},
		{"millisecond", strconv.Itoa(rt.Millisecond())},
		{"weekday", weekday},
		{"day of year", strconv.Itoa(calc.DayOfYear(rt))},
		{"encoded day", strconv.FormatInt(rt.EncodeDay(), 10)},
		{"encoded minute", strconv.FormatInt(rt.EncodeMinute(), 10)},
		{"encoded second", strconv.FormatInt(rt.EncodeSecond(), 10)},
		{"encoded full", strconv.FormatInt(rt.EncodeFull(), 10)},
		{"hash", fmt.Sprintf("%016x", rt.Hash())},
	}

	out(cmd, "%s\n", renderPanel(format(rt), rows))
	return nil
}
