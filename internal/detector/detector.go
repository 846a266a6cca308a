// Package detector handles surface encoding detection.
package detector

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrobf/internal/lang"
	"github.com/retroenv/retrobf/internal/lang/brainfuck"
	"github.com/retroenv/retrobf/internal/lang/ichiglyph"
	"github.com/retroenv/retrobf/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles encoding detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new encoding detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the surface encoding from options or file
// auto-detection. It first checks if an encoding is explicitly specified
// in the options, otherwise it detects the encoding from the input
// filename extension.
func (d *Detector) Detect(opts options.Program) (lang.Encoding, error) {
	if opts.Lang != "" {
		encoding, ok := FromString(opts.Lang)
		if !ok {
			return nil, fmt.Errorf("unsupported language encoding '%s'", opts.Lang)
		}
		return encoding, nil
	}

	encoding := d.detectFromFile(opts.Input)
	d.logger.Debug("Auto-detected encoding",
		log.String("encoding", encoding.Name()),
		log.String("file", opts.Input))
	return encoding, nil
}

// FromString returns the encoding with the given name.
func FromString(name string) (lang.Encoding, bool) {
	switch strings.ToLower(name) {
	case brainfuck.Name:
		return brainfuck.New(), true
	case ichiglyph.Name:
		return ichiglyph.New(), true
	default:
		return nil, false
	}
}

// detectFromFile determines the encoding based on the file extension.
func (d *Detector) detectFromFile(filename string) lang.Encoding {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".ig", ".ichi":
		return ichiglyph.New()
	default:
		// Brainfuck sources commonly use .b or .bf, default to Brainfuck
		// for unknown extensions
		return brainfuck.New()
	}
}
