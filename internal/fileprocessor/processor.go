// Package fileprocessor handles program loading and execution operations
package fileprocessor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrobf/internal/detector"
	"github.com/retroenv/retrobf/internal/interpreter"
	"github.com/retroenv/retrobf/internal/loader"
	"github.com/retroenv/retrobf/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete execution workflow for one source file:
// encoding detection, program loading and interpretation. Input and output
// of the executed program are connected to the process standard streams.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	encoding, err := detector.New(logger).Detect(opts)
	if err != nil {
		return err
	}

	program, err := loader.New().Load(opts.Input, encoding)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	logger.Debug("Executing program",
		log.String("file", opts.Input),
		log.String("encoding", encoding.Name()),
		log.Int("units", len(program)/encoding.OpcodeSize()))

	in := interpreter.New(program, encoding, interpreter.Options{
		Input:     os.Stdin,
		Output:    os.Stdout,
		TapeLimit: opts.TapeLimit,
	})

	outcome, err := in.Run(ctx)
	if err != nil {
		return fmt.Errorf("executing program: %w", err)
	}

	if outcome != interpreter.OutcomeCompleted {
		logger.Debug("Execution terminated early",
			log.String("reason", outcome.String()))
	}
	return nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, quiet bool, name, version, commit, date string) {
	if quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info(name, log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
