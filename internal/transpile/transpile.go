// Package transpile converts programs between the surface encodings of the
// language family. The conversion is a pure, stateless re-encoding of the
// instruction stream, it reuses the same opcode tables as the interpreter.
package transpile

import (
	"fmt"
	"io"

	"github.com/retroenv/retrobf/internal/lang"
)

// Transpile decodes the source buffer in the from encoding and writes every
// instruction re-encoded in the to encoding. Units that do not represent an
// instruction are silently dropped, a trailing partial unit of the source
// buffer is ignored.
func Transpile(writer io.Writer, source []byte, from, to lang.Encoding) error {
	size := from.OpcodeSize()
	units := len(source) / size

	for i := 0; i < units; i++ {
		ins := from.Decode(source[i*size : (i+1)*size])

		opcode, ok := to.Encode(ins)
		if !ok {
			continue
		}
		if _, err := writer.Write(opcode); err != nil {
			return fmt.Errorf("writing %s opcode: %w", to.Name(), err)
		}
	}
	return nil
}
