// Package interpreter implements the execution engine of the language
// family. One engine executes both surface encodings, parameterized by the
// encoding that decodes the fixed-width opcode units of the program.
//
// The engine consists of a fetch-decode-execute loop over an immutable
// program buffer. Loop jumps are resolved at execution time by a linear
// balance-counted scan, no jump targets are precomputed.
package interpreter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/retroenv/retrobf/internal/lang"
	"github.com/retroenv/retrobf/internal/tape"
)

// ErrInvalidPointerMotion is returned when the data pointer is moved below
// the first cell of the data memory.
var ErrInvalidPointerMotion = errors.New("data pointer moved below cell 0")

// ErrOutput is returned when writing a cell to the output sink fails.
var ErrOutput = errors.New("writing output")

// interruptCheckMask controls how often the run loop checks for context
// cancellation, every 4096 executed instructions.
const interruptCheckMask = 0xfff

// Outcome describes how a run reached its terminal state.
type Outcome int

const (
	// OutcomeCompleted is a run that executed past the end of the program.
	OutcomeCompleted Outcome = iota
	// OutcomeEndOfInput is a run terminated by reading past the available
	// input. This is a normal terminal condition, not a fault.
	OutcomeEndOfInput
	// OutcomeUnmatchedBracket is a run terminated while scanning for a
	// jump target that does not exist in the program.
	OutcomeUnmatchedBracket
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeEndOfInput:
		return "end of input"
	case OutcomeUnmatchedBracket:
		return "unmatched bracket"
	default:
		return "unknown"
	}
}

// Options configures an interpreter instance.
type Options struct {
	Input  io.Reader // input source for cell input, defaults to no input
	Output io.Writer // output sink for cell output, defaults to discard

	TapeLimit int // maximum data memory size in bytes, 0 for unlimited
}

// Interpreter executes one program. An instance is valid for exactly one
// run, the instruction pointer and data pointer are not reset.
type Interpreter struct {
	program  []byte
	encoding lang.Encoding
	data     *tape.Tape

	input  io.Reader
	output io.Writer

	ip    int // instruction pointer, in opcode units
	dp    int // data pointer
	units int // program length in opcode units

	steps   uint64
	outcome Outcome
}

// New returns a new interpreter for the program in the given encoding.
// A trailing partial opcode unit of the program buffer is ignored.
func New(program []byte, encoding lang.Encoding, options Options) *Interpreter {
	data := tape.New()
	if options.TapeLimit > 0 {
		data = tape.NewWithLimit(options.TapeLimit)
	}

	return &Interpreter{
		program:  program,
		encoding: encoding,
		data:     data,
		input:    options.Input,
		output:   options.Output,
		units:    len(program) / encoding.OpcodeSize(),
	}
}

// Run executes the program until the instruction pointer passes the end of
// the program or an early termination condition fires. It returns the
// outcome of the run, the outcome is only valid if the returned error is
// nil. Faults abort the run: tape.ErrResourceExhausted if the data memory
// can not be grown, ErrInvalidPointerMotion if the data pointer is moved
// below cell 0 and ErrOutput if the output sink fails. Cancelling the
// context stops execution between instructions and returns the context
// error.
func (in *Interpreter) Run(ctx context.Context) (Outcome, error) {
	for in.ip < in.units {
		if in.steps&interruptCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return in.outcome, err
			}
		}
		in.steps++

		if err := in.step(); err != nil {
			return in.outcome, err
		}
		in.ip++
	}
	return in.outcome, nil
}

// step fetches, decodes and executes the instruction at the instruction
// pointer. Jump instructions reposition the instruction pointer to the
// matching bracket, the run loop advancing past it afterwards resumes
// execution one instruction after the match.
func (in *Interpreter) step() error {
	switch in.decodeAt(in.ip) {
	case lang.PointerForward:
		if in.dp == math.MaxInt {
			return tape.ErrResourceExhausted
		}
		in.dp++

	case lang.PointerBackward:
		if in.dp == 0 {
			return ErrInvalidPointerMotion
		}
		in.dp--

	case lang.CellIncrement:
		return in.data.Increment(in.dp)

	case lang.CellDecrement:
		return in.data.Decrement(in.dp)

	case lang.CellOutput:
		return in.writeOutput(in.data.Get(in.dp))

	case lang.CellInput:
		value, ok := in.readInput()
		if !ok {
			in.terminate(OutcomeEndOfInput)
			return nil
		}
		return in.data.Set(in.dp, value)

	case lang.JumpForward:
		in.jumpForward()

	case lang.JumpBackward:
		in.jumpBackward()

	case lang.Nop:
	}
	return nil
}

// jumpForward scans forward for the matching jump-backward instruction if
// the current cell is 0. If the scan reaches the end of the program before
// a match is found the run terminates.
func (in *Interpreter) jumpForward() {
	if in.data.Get(in.dp) != 0 {
		return
	}

	balance := 1
	for balance != 0 {
		if in.ip == in.units-1 {
			in.terminate(OutcomeUnmatchedBracket)
			return
		}
		in.ip++

		switch in.decodeAt(in.ip) {
		case lang.JumpForward:
			balance++
		case lang.JumpBackward:
			balance--
		}
	}
}

// jumpBackward scans backward for the matching jump-forward instruction if
// the current cell is not 0. If the scan would pass the start of the
// program before a match is found the run terminates.
func (in *Interpreter) jumpBackward() {
	if in.data.Get(in.dp) == 0 {
		return
	}

	balance := 1
	for balance != 0 {
		if in.ip == 0 {
			in.terminate(OutcomeUnmatchedBracket)
			return
		}
		in.ip--

		switch in.decodeAt(in.ip) {
		case lang.JumpForward:
			balance--
		case lang.JumpBackward:
			balance++
		}
	}
}

// decodeAt decodes the opcode unit at the given instruction index.
func (in *Interpreter) decodeAt(index int) lang.Instruction {
	size := in.encoding.OpcodeSize()
	offset := index * size
	return in.encoding.Decode(in.program[offset : offset+size])
}

// terminate ends the run with the given outcome by moving the instruction
// pointer past the end of the program.
func (in *Interpreter) terminate(outcome Outcome) {
	in.outcome = outcome
	in.ip = in.units
}

// readInput reads one byte from the input source. It returns false when
// the input is exhausted.
func (in *Interpreter) readInput() (byte, bool) {
	if in.input == nil {
		return 0, false
	}
	var buf [1]byte
	if _, err := io.ReadFull(in.input, buf[:]); err != nil {
		return 0, false
	}
	return buf[0], true
}

// flusher is implemented by buffered output sinks like bufio.Writer.
type flusher interface {
	Flush() error
}

// writeOutput writes one byte to the output sink. Buffered sinks are
// flushed so that output is observable byte by byte.
func (in *Interpreter) writeOutput(value byte) error {
	if in.output == nil {
		return nil
	}
	if _, err := in.output.Write([]byte{value}); err != nil {
		return fmt.Errorf("%w: %s", ErrOutput, err)
	}
	if f, ok := in.output.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("%w: %s", ErrOutput, err)
		}
	}
	return nil
}
