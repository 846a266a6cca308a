// Package options contains the program options.
package options

// Program options of the interpreter.
type Program struct {
	Input string // program source file
	Lang  string // surface encoding, auto-detected from file extension if empty

	TapeLimit int // maximum data memory size in bytes, 0 for unlimited

	Debug bool
	Quiet bool
}
