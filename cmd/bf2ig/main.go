// Package main implements a Brainfuck to Ichiglyph transpiler.
// It decodes the Brainfuck instructions of the source file and outputs the
// corresponding Ichiglyph instructions, any characters not representing a
// Brainfuck instruction are silently dropped.
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

	flags.StringVar(&options.output, "o", "", "name of the output .ig file, printed on console if no name given")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()

	if err != nil || len(args) == 0 {
		printBanner()
		fmt.Printf("usage: bf2ig [options] <source file>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}
	options.input = args[0]

	return options
}

func printBanner() {
	fmt.Println("[--------------------------------------]")
	fmt.Println("[ bf2ig - Brainfuck to Ichiglyph       ]")
	fmt.Printf("[--------------------------------------]\n\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}

func transpileFile(options optionFlags) error {
	source, err := loader.New().Load(options.input, brainfuck.New())
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

	if err := transpile.Transpile(outputFile, source, brainfuck.New(), ichiglyph.New()); err != nil {
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
