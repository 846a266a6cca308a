// Package lang contains the instruction set of the Brainfuck language family
// and the interface for its surface encodings.
// It acts as a bridge between the interpreter and the encoding specific code.
package lang

// Instruction is one of the nine instructions of the language family.
// The eight operational instructions match the common Brainfuck
// specification, Nop represents any program input that is not a
// recognized opcode and is simply ignored.
type Instruction int

const (
	PointerForward Instruction = iota
	PointerBackward
	CellIncrement
	CellDecrement
	CellOutput
	CellInput
	JumpForward
	JumpBackward
	Nop
)

var instructionNames = map[Instruction]string{
	PointerForward:  "pointer-forward",
	PointerBackward: "pointer-backward",
	CellIncrement:   "cell-increment",
	CellDecrement:   "cell-decrement",
	CellOutput:      "cell-output",
	CellInput:       "cell-input",
	JumpForward:     "jump-forward",
	JumpBackward:    "jump-backward",
	Nop:             "nop",
}

// String implements fmt.Stringer.
func (i Instruction) String() string {
	name, ok := instructionNames[i]
	if !ok {
		return "unknown"
	}
	return name
}

// Encoding contains encoding specific information.
// An encoding maps fixed-width opcode units to instructions and back.
type Encoding interface {
	// Name returns the encoding name.
	Name() string
	// OpcodeSize returns the size of one opcode unit in bytes.
	OpcodeSize() int
	// Decode decodes one opcode unit into an instruction.
	// Unrecognized units decode to Nop, decoding never fails.
	Decode(unit []byte) Instruction
	// Encode returns the opcode unit for an instruction.
	// Nop has no opcode representation, it returns false.
	Encode(ins Instruction) ([]byte, bool)
}
