// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
)

// Options describes a command line surface: the binary name and the flag
// set to register on it.
type Options struct {
	Binary   string // binary name shown in the usage text
	Usage    string // description of the positional argument
	Register func(flags *flag.FlagSet)
}

// ParseFlags parses command line flags and returns the positional source
// file argument. A missing source file argument is reported as a
// UsageError.
func ParseFlags(opts Options) (string, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	if opts.Register != nil {
		opts.Register(flags)
	}

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return "", &UsageError{binary: opts.Binary, usage: opts.Usage, flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return "", err
	}

	return args[0], nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	binary string
	usage  string
	flags  *flag.FlagSet
	msg    string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage information of the binary.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: %s [options] <%s>\n\n", e.binary, e.usage)
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after the source file, please pass the source file as last argument", arg),
			}
		}
	}
	return nil
}
