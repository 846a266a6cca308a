package ichiglyph

import (
	"testing"

	"github.com/retroenv/retrobf/internal/lang"
	"github.com/retroenv/retrogolib/assert"
)

func TestEncodingDecode(t *testing.T) {
	enc := New()

	tests := []struct {
		name     string
		unit     []byte
		expected lang.Instruction
	}{
		{"pointer forward", []byte("ll"), lang.PointerForward},
		{"pointer backward", []byte("lI"), lang.PointerBackward},
		{"cell increment", []byte("Il"), lang.CellIncrement},
		{"cell decrement", []byte("II"), lang.CellDecrement},
		{"cell output", []byte("1l"), lang.CellOutput},
		{"cell input", []byte("1I"), lang.CellInput},
		{"jump forward", []byte("l1"), lang.JumpForward},
		{"jump backward", []byte("I1"), lang.JumpBackward},
		{"invalid combination", []byte("11"), lang.Nop},
		{"comment characters", []byte("ab"), lang.Nop},
		{"partial unit", []byte("l"), lang.Nop},
		{"empty unit", nil, lang.Nop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, enc.Decode(tt.unit))
		})
	}
}

func TestEncodingRoundTrip(t *testing.T) {
	enc := New()

	instructions := []lang.Instruction{
		lang.PointerForward, lang.PointerBackward,
		lang.CellIncrement, lang.CellDecrement,
		lang.CellOutput, lang.CellInput,
		lang.JumpForward, lang.JumpBackward,
	}

	for _, ins := range instructions {
		t.Run(ins.String(), func(t *testing.T) {
			unit, ok := enc.Encode(ins)
			assert.True(t, ok)
			assert.Equal(t, enc.OpcodeSize(), len(unit))
			assert.Equal(t, ins, enc.Decode(unit))
		})
	}
}

func TestEncodingEncodeNop(t *testing.T) {
	enc := New()

	// Nop has no opcode representation
	_, ok := enc.Encode(lang.Nop)
	assert.False(t, ok)
}

func TestEncodingName(t *testing.T) {
	enc := New()

	assert.Equal(t, Name, enc.Name())
	assert.Equal(t, 2, enc.OpcodeSize())
}
