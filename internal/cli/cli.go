package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"commission-engine/internal/calendar"
	"commission-engine/internal/commission"
	"commission-engine/internal/hierarchy"
	"commission-engine/internal/partnerio"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

type Options struct {
	Input     string
	Output    string
	Days      int // 0 means the length of the current month
	Rate      float64
	LogLevel  string
	LogFormat string
}

// Parse processes command-line arguments. It returns the options, a boolean
// indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("commissions", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Daily Commission Engine for a MLM Network.

Usage:
  commissions --input partners.json --output commissions.json [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to input JSON file.")
	outputFlag := flagSet.String("output", "", "Path to output JSON file.")
	daysFlag := flagSet.Int("days", 0, "Days in month used to derive daily revenue. 0 uses the current month.")
	rateFlag := flagSet.Float64("rate", commission.DefaultRate, "Commission rate applied to descendant revenue.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "console", "Log output format. Options: 'console' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if *inputFlag == "" || *outputFlag == "" {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "both --input and --output are required"}
	}
	if *daysFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid days: must be positive"}
	}
	if *rateFlag < 0 || *rateFlag > 1 {
		return nil, false, &ExitError{Code: 2, Message: "invalid rate: must be between 0 and 1"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "console" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'console' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &Options{
		Input:     *inputFlag,
		Output:    *outputFlag,
		Days:      *daysFlag,
		Rate:      *rateFlag,
		LogLevel:  logLevel,
		LogFormat: logFormat,
	}, false, nil
}

// Run reads the partners, computes their commissions and writes the result.
// now picks the month when opts.Days is 0.
func Run(opts *Options, logger *zap.Logger, now time.Time) error {
	partners, err := partnerio.LoadPartners(opts.Input)
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}

	days := opts.Days
	if days == 0 {
		days = calendar.DaysInMonth(now)
	}
	logger.Debug("partners loaded", zap.Int("partners", len(partners)), zap.Int("days_in_month", days))

	commissions, err := commission.NewCalculator(opts.Rate).Calculate(partners, days)
	if err != nil {
		logger.Debug("hierarchy rejected", zap.Error(err))
		return &ExitError{Code: 1, Message: hierarchyMessage(err)}
	}

	if err := partnerio.SaveCommissions(opts.Output, commissions); err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}

	logger.Info("commissions written",
		zap.String("output", opts.Output),
		zap.Int("partners", len(commissions)),
		zap.Int("days_in_month", days),
	)
	return nil
}

func hierarchyMessage(err error) string {
	switch {
	case errors.Is(err, hierarchy.ErrMultipleRoots):
		return "Multiple root partners detected. Please correct input data."
	case errors.Is(err, hierarchy.ErrRootNotFound):
		return "No root partner found. Please correct input data."
	case errors.Is(err, hierarchy.ErrParentNotFound):
		return "A partner references a parent that does not exist. Please correct input data."
	case errors.Is(err, hierarchy.ErrCycleDetected):
		return "Cycle detected in partners structure. Please correct input data."
	default:
		return err.Error()
	}
}
