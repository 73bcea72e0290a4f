package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/rawtime/foundation/core/error"
	mdwlog "github.com/msto63/rawtime/foundation/core/log"
	"github.com/msto63/rawtime/pkg/core/config"
	"github.com/msto63/rawtime/pkg/rawtime"
)

var (
	cfgFile    string
	verbose    bool
	localeFlag string
	layoutFlag string
)

// Set up by the root PersistentPreRunE for every invocation
var (
	cfg    *config.Config
	calc   *rawtime.Calculator
	logger *mdwlog.Logger

	// clock is replaced in tests; nil means the system clock
	clock rawtime.Clock
)

var rootCmd = &cobra.Command{
	Use:   "rawtime",
	Short: "Civil date/time values and their integer encodings",
	Long: `rawtime converts civil date/time values between text and the
yyyyMMddHHmmssfff integer encoding, rounds and shifts them, and compares them.

Time arguments are text in any configured layout, or an encoded integer of
8, 12, 14 or 17 digits (day, minute, second or full precision).

Configuration is read from --config, $RAWTIME_CONFIG, ./rawtime.toml or
./rawtime.yaml, in that order.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and reports a failure on stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd, err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", "", "language for month and weekday names (en, de, fr)")
	rootCmd.PersistentFlags().StringVar(&layoutFlag, "format", "", "output layout name or Go reference layout")
}

func setup(cmd *cobra.Command, args []string) error {
	logger = nil

	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if localeFlag != "" {
		cfg.Format.Locale = localeFlag
	}
	if layoutFlag != "" {
		cfg.Format.Layout = layoutFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := cfg.LogLevel()
	if verbose {
		level = mdwlog.LevelDebug
	}
	logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: cfg.LogFormat(),
		Output: cmd.ErrOrStderr(),
		Name:   "rawtime",
	}).WithCorrelationID(uuid.NewString()).
		WithFields(mdwlog.String("command", cmd.Name()).Merge(mdwlog.Int("args", len(args))))

	calc = rawtime.NewCalculator(nil, clock)

	logger.Debug("configuration loaded", mdwlog.Fields{
		"locale": cfg.Locale().String(),
		"layout": cfg.Format.Layout,
	})
	return nil
}

func printError(cmd *cobra.Command, err error) {
	if logger != nil {
		logger.LogError(err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}

// parseTime reads a time argument. All-digit arguments of a known length are
// decoded as integer encodings; everything else goes through the configured
// parse layouts.
func parseTime(arg string) (rawtime.RawTime, error) {
	arg = strings.TrimSpace(arg)
	if isDigits(arg) {
		if p, ok := precisionByDigits[len(arg)]; ok {
			n, err := strconv.ParseInt(arg, 10, 64)
			if err == nil {
				logger.Trace("time argument is an encoding", mdwlog.String("arg", arg).Merge(mdwlog.Field("precision", p.name)))
				return p.decode(n)
			}
		}
	}
	logger.Trace("time argument is text", mdwlog.String("arg", arg))
	return calc.Parse(arg, cfg.ParseRules())
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseInt(arg, what string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return 0, mdwerror.Wrap(err, "invalid "+what).
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail(what, arg)
	}
	return n, nil
}

func format(rt rawtime.RawTime) string {
	return calc.Format(rt, cfg.FormatSpec())
}

func out(cmd *cobra.Command, msg string, args ...interface{}) {
	fmt.Fprintf(cmd.OutOrStdout(), msg, args...)
}
