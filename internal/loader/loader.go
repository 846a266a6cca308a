// Package loader handles program source file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrobf/internal/lang"
)

// Typed sentinel errors, the CLI maps them to distinct exit codes.
var (
	ErrOpen = errors.New("unable to open")
	ErrStat = errors.New("unable to stat")
	ErrRead = errors.New("unable to read")
)

// Loader handles loading program source files from disk.
type Loader struct{}

// New creates a new program source loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the program source file fully into memory. The program length
// is interpreted in opcode units of the given encoding, a trailing partial
// unit is truncated.
func (l *Loader) Load(name string, encoding lang.Encoding) ([]byte, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %s", ErrOpen, name, err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w %s: %s", ErrStat, name, err)
	}

	program := make([]byte, info.Size())
	if _, err := io.ReadFull(file, program); err != nil {
		return nil, fmt.Errorf("%w %s: %s", ErrRead, name, err)
	}

	size := encoding.OpcodeSize()
	units := len(program) / size
	return program[:units*size], nil
}
