// Package ichiglyph provides the two-character Ichiglyph surface encoding
// of the language family. Ichiglyph implements the same instruction set as
// Brainfuck, the only major difference is the encoding: every instruction
// is a two byte combination of the characters 'l', 'I' and '1'.
//
// Brainfuck | Ichiglyph
// ----------+----------
// >         | ll
// <         | lI
// +         | Il
// -         | II
// .         | 1l
// ,         | 1I
// [         | l1
// ]         | I1
//
// Any unit that is not one of the eight combinations decodes to a Nop.
package ichiglyph

import (
	"github.com/retroenv/retrobf/internal/lang"
)

// Name of the encoding.
const Name = "ichiglyph"

// opcodeSize is the size of Ichiglyph opcode units in bytes.
const opcodeSize = 2

var _ lang.Encoding = &Encoding{}

// New returns a new Ichiglyph encoding configuration.
func New() *Encoding {
	return &Encoding{}
}

// Encoding implements the lang.Encoding interface for Ichiglyph.
type Encoding struct{}

var decodeTable = map[[2]byte]lang.Instruction{
	{'l', 'l'}: lang.PointerForward,
	{'l', 'I'}: lang.PointerBackward,
	{'I', 'l'}: lang.CellIncrement,
	{'I', 'I'}: lang.CellDecrement,
	{'1', 'l'}: lang.CellOutput,
	{'1', 'I'}: lang.CellInput,
	{'l', '1'}: lang.JumpForward,
	{'I', '1'}: lang.JumpBackward,
}

var encodeTable = map[lang.Instruction][2]byte{
	lang.PointerForward:  {'l', 'l'},
	lang.PointerBackward: {'l', 'I'},
	lang.CellIncrement:   {'I', 'l'},
	lang.CellDecrement:   {'I', 'I'},
	lang.CellOutput:      {'1', 'l'},
	lang.CellInput:       {'1', 'I'},
	lang.JumpForward:     {'l', '1'},
	lang.JumpBackward:    {'I', '1'},
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
// The eight valid opcode units are decoded to the respective instructions,
// any unrecognized units are interpreted as a Nop.
func (e *Encoding) Decode(unit []byte) lang.Instruction {
	if len(unit) < opcodeSize {
		return lang.Nop
	}
	ins, ok := decodeTable[[2]byte{unit[0], unit[1]}]
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
	return []byte{opcode[0], opcode[1]}, true
}
