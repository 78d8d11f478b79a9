// Command commissions computes daily MLM commissions from a partners file.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"commission-engine/internal/cli"
	"commission-engine/internal/logging"
)

func main() {
	opts, exit, err := cli.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		fail(err)
	}
	if exit {
		return
	}

	logger := logging.New(opts.LogLevel, opts.LogFormat)
	err = cli.Run(opts, logger, time.Now())
	_ = logger.Sync()
	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, exitErr.Message)
		os.Exit(exitErr.Code)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
