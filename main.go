// Package main implements the main entry point for an interpreter of the
// Brainfuck language family, executing both the Brainfuck and the
// Ichiglyph surface encodings.
package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/retroenv/retrobf/internal/cli"
	"github.com/retroenv/retrobf/internal/config"
	"github.com/retroenv/retrobf/internal/fileprocessor"
	"github.com/retroenv/retrobf/internal/loader"
	"github.com/retroenv/retrobf/internal/options"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	var opts options.Program
	input, err := cli.ParseFlags(cli.Options{
		Binary:   "retrobf",
		Usage:    "source file to execute",
		Register: func(flags *flag.FlagSet) { registerFlags(flags, &opts) },
	})

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts.Quiet, "retrobf", version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}
	opts.Input = input

	fileprocessor.PrintBanner(logger, opts.Quiet, "retrobf", version, commit, date)

	if err := fileprocessor.ProcessFile(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Execution failed", log.Err(err))
		os.Exit(exitCode(err))
	}
}

func registerFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Lang, "lang", "", "language encoding of the source file (brainfuck, ichiglyph) - if not auto-detected from file extension")
	flags.IntVar(&opts.TapeLimit, "tape-limit", 0, "maximum data memory size in bytes, 0 for unlimited")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

// exitCode maps load errors to the distinct exit codes of the CLI.
// Execution faults of the engine are reported but do not change the exit
// code, a faulted run terminates the same way a completed run does.
func exitCode(err error) int {
	switch {
	case errors.Is(err, loader.ErrOpen):
		return 2
	case errors.Is(err, loader.ErrStat):
		return 3
	case errors.Is(err, loader.ErrRead):
		return 4
	default:
		return 0
	}
}
