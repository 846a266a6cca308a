// Package brainfuck provides the single-character Brainfuck surface
// encoding of the language family. Every instruction is encoded as one
// byte, any other byte is treated as a comment and decodes to a Nop.
package brainfuck

import (
	"github.com/retroenv/retrobf/internal/lang"
)

// Name of the encoding.
const Name = "brainfuck"

// opcodeSize is the size of Brainfuck opcode units in bytes.
const opcodeSize = 1

var _ lang.Encoding = &Encoding{}

// New returns a new Brainfuck encoding configuration.
func New() *Encoding {
	return &Encoding{}
}

// Encoding implements the lang.Encoding interface for Brainfuck.
type Encoding struct{}

var decodeTable = map[byte]lang.Instruction{
	'>': lang.PointerForward,
	'<': lang.PointerBackward,
	'+': lang.CellIncrement,
	'-': lang.CellDecrement,
	'.': lang.CellOutput,
	',': lang.CellInput,
	'[': lang.JumpForward,
	']': lang.JumpBackward,
}

var encodeTable = map[lang.Instruction]byte{
	lang.PointerForward:  '>',
	lang.PointerBackward: '<',
	lang.CellIncrement:   '+',
	lang.CellDecrement:   '-',
	lang.CellOutput:      '.',
	lang.CellInput:       ',',
	lang.JumpForward:     '[',
	lang.JumpBackward:    ']',
}

// Name returns the encoding name.
func (e *Encoding) Name() string {
	return Name
}

// OpcodeSize returns the size of one opcode unit in bytes.
func (e *Encoding) OpcodeSize() int {
	return opcodeSize
}

// Decode decodes one opcode unit into an instruction.
// The eight valid instruction characters are decoded to the respective
// instructions, any unrecognized characters are interpreted as a Nop.
func (e *Encoding) Decode(unit []byte) lang.Instruction {
	if len(unit) < opcodeSize {
		return lang.Nop
	}
	ins, ok := decodeTable[unit[0]]
	if !ok {
		return lang.Nop
	}
	return ins
}

// Encode returns the opcode unit for an instruction.
func (e *Encoding) Encode(ins lang.Instruction) ([]byte, bool) {
	opcode, ok := encodeTable[ins]
	if !ok {
		return nil, false
	}
	return []byte{opcode}, true
}
