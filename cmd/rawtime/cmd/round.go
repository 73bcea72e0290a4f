package cmd

import (
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/rawtime/foundation/core/log"
	"github.com/msto63/rawtime/pkg/rawtime"
)

var (
	roundInterval int
	roundPolicy   string
)

var roundCmd = &cobra.Command{
	Use:   "round <time>",
	Short: "Round the minute to a multiple of an interval",
	Long: `Rounds the minute of a time to a multiple of --interval (1-60) using
--policy math, floor or ceiling. Both default to the [rounding] section of
the configuration. Seconds and milliseconds are kept.

Examples:
  rawtime round "2024-02-29 23:58:00" --interval 15 --policy ceiling
  rawtime round 202402292358 --policy floor`,
	Args: cobra.ExactArgs(1),
	RunE: runRound,
}

func init() {
	rootCmd.AddCommand(roundCmd)
	roundCmd.Flags().IntVarP(&roundInterval, "interval", "i", 0, "interval in minutes (default from config)")
	roundCmd.Flags().StringVar(&roundPolicy, "policy", "", "math, floor or ceiling (default from config)")
}

func runRound(cmd *cobra.Command, args []string) error {
	interval := cfg.Rounding.Interval
	if cmd.Flags().Changed("interval") {
		interval = roundInterval
	}
	policy := cfg.RoundingPolicy()
	if roundPolicy != "" {
		p, err := rawtime.ParseRoundingPolicy(roundPolicy)
		if err != nil {
			return err
		}
		policy = p
	}

	rt, err := parseTime(args[0])
	if err != nil {
		return err
	}
	rounded, err := calc.RoundMinute(rt, interval, policy)
	if err != nil {
		return err
	}
	logger.Debug("rounded", mdwlog.Int("interval", interval).Merge(mdwlog.Fields{
		"policy": policy.String(),
		"from":   rt.String(),
		"to":     rounded.String(),
	}))

	out(cmd, "%s\n", format(rounded))
	return nil
}
