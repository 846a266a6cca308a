// Package main implements an Ichiglyph to Brainfuck transpiler.
// It decodes the Ichiglyph instructions of the source file and outputs the
// corresponding Brainfuck instructions, any units not representing an
// Ichiglyph instruction are silently dropped.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrobf/internal/lang/brainfuck"
	"github.com/retroenv/retrobf/internal/lang/ichiglyph"
	"github.com/retroenv/retrobf/internal/loader"
	"github.com/retroenv/retrobf/internal/transpile"
	"github.com/retroenv/retrogolib/buildinfo"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

type optionFlags struct {
	input  string
	output string
}

func main() {
	options := readArguments()

	if err := transpileFile(options); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("transpiling failed: %w", err))
		os.Exit(exitCode(err))
	}
}

func readArguments() optionFlags {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	options := optionFlags{}

	flags.StringVar(&options.output, "o", "", "name of the output .b file, printed on console if no name given")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()

	if err != nil || len(args) == 0 {
		printBanner()
		fmt.Printf("usage: ig2bf [options] <source file>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}
	options.input = args[0]

	return options
}

func printBanner() {
	fmt.Println("[--------------------------------------]")
	fmt.Println("[ ig2bf - Ichiglyph to Brainfuck       ]")
	fmt.Printf("[--------------------------------------]\n\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}

func transpileFile(options optionFlags) error {
	source, err := loader.New().Load(options.input, ichiglyph.New())
	if err != nil {
		return err
	}

	var outputFile io.WriteCloser
	if options.output == "" {
		outputFile = os.Stdout
	} else {
		outputFile, err = os.Create(options.output)
		if err != nil {
			return fmt.Errorf("creating file '%s': %w", options.output, err)
		}
	}

	if err := transpile.Transpile(outputFile, source, ichiglyph.New(), brainfuck.New()); err != nil {
		return err
	}
	if options.output != "" {
		if err := outputFile.Close(); err != nil {
			return fmt.Errorf("closing file: %w", err)
		}
	}
	return nil
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, loader.ErrOpen):
		return 2
	case errors.Is(err, loader.ErrStat):
		return 3
	case errors.Is(err, loader.ErrRead):
		return 4
	default:
		return 1
	}
}
