package interpreter

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/retrobf/internal/lang/brainfuck"
	"github.com/retroenv/retrobf/internal/lang/ichiglyph"
	"github.com/retroenv/retrobf/internal/tape"
	"github.com/retroenv/retrogolib/assert"
)

// runBrainfuck executes a Brainfuck program with the given input and
// returns the outcome, the produced output and the execution error.
func runBrainfuck(t *testing.T, program, input string) (Outcome, string, error) {
	t.Helper()

	var output bytes.Buffer
	in := New([]byte(program), brainfuck.New(), Options{
		Input:  strings.NewReader(input),
		Output: &output,
	})
	outcome, err := in.Run(context.Background())
	return outcome, output.String(), err
}

func TestRunOutput(t *testing.T) {
	outcome, output, err := runBrainfuck(t, "+++.", "")

	assert.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, outcome)
	assert.Equal(t, "\x03", output)
}

func TestRunComments(t *testing.T) {
	// any non-instruction character is a comment
	outcome, output, err := runBrainfuck(t, "comment + comment + text\n+.", "")

	assert.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, outcome)
	assert.Equal(t, "\x03", output)
}

func TestRunEmptyProgram(t *testing.T) {
	outcome, output, err := runBrainfuck(t, "", "")

	assert.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, outcome)
	assert.Equal(t, "", output)
}

func TestRunCellWraparound(t *testing.T) {
	t.Run("decrementing 0 yields 255", func(t *testing.T) {
		outcome, output, err := runBrainfuck(t, "-.", "")

		assert.NoError(t, err)
		assert.Equal(t, OutcomeCompleted, outcome)
		assert.Equal(t, "\xff", output)
	})

	t.Run("incrementing 255 yields 0", func(t *testing.T) {
		program := strings.Repeat("+", 256) + "."
		outcome, output, err := runBrainfuck(t, program, "")

		assert.NoError(t, err)
		assert.Equal(t, OutcomeCompleted, outcome)
		assert.Equal(t, "\x00", output)
	})
}

func TestRunEcho(t *testing.T) {
	outcome, output, err := runBrainfuck(t, ",.,.", "hi")

	assert.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, outcome)
	assert.Equal(t, "hi", output)
}

func TestRunEndOfInput(t *testing.T) {
	// the run terminates at the input instruction, the second output
	// instruction is never reached
	outcome, output, err := runBrainfuck(t, ".,.", "")

	assert.NoError(t, err)
	assert.Equal(t, OutcomeEndOfInput, outcome)
	assert.Equal(t, "\x00", output)
}

func TestRunLoopSkippedOnZeroCell(t *testing.T) {
	// the loop body is skipped entirely, execution resumes after the
	// matching bracket
	outcome, output, err := runBrainfuck(t, "[-.]+++.", "")

	assert.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, outcome)
	assert.Equal(t, "\x03", output)
}

func TestRunLoopCountsDown(t *testing.T) {
	// the loop body executes exactly 3 times, moving 3 into the second cell
	outcome, output, err := runBrainfuck(t, "+++[>+<-]>.", "")

	assert.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, outcome)
	assert.Equal(t, "\x03", output)
}

func TestRunNestedLoops(t *testing.T) {
	t.Run("nested skip balances brackets", func(t *testing.T) {
		outcome, output, err := runBrainfuck(t, "[[]]+.", "")

		assert.NoError(t, err)
		assert.Equal(t, OutcomeCompleted, outcome)
		assert.Equal(t, "\x01", output)
	})

	t.Run("inner loop zeroes outer test cell", func(t *testing.T) {
		outcome, output, err := runBrainfuck(t, "+[[-]].", "")

		assert.NoError(t, err)
		assert.Equal(t, OutcomeCompleted, outcome)
		assert.Equal(t, "\x00", output)
	})
}

func TestRunUnmatchedBracket(t *testing.T) {
	t.Run("unmatched forward jump at end of program", func(t *testing.T) {
		outcome, output, err := runBrainfuck(t, ".[", "")

		assert.NoError(t, err)
		assert.Equal(t, OutcomeUnmatchedBracket, outcome)
		assert.Equal(t, "\x00", output)
	})

	t.Run("unmatched forward jump with open nesting", func(t *testing.T) {
		outcome, _, err := runBrainfuck(t, "[[]", "")

		assert.NoError(t, err)
		assert.Equal(t, OutcomeUnmatchedBracket, outcome)
	})

	t.Run("unmatched backward jump at start of program", func(t *testing.T) {
		outcome, _, err := runBrainfuck(t, "+]", "")

		assert.NoError(t, err)
		assert.Equal(t, OutcomeUnmatchedBracket, outcome)
	})

	t.Run("matched brackets do not trigger", func(t *testing.T) {
		outcome, _, err := runBrainfuck(t, "+[-]", "")

		assert.NoError(t, err)
		assert.Equal(t, OutcomeCompleted, outcome)
	})
}

func TestRunPointerUnderflow(t *testing.T) {
	_, _, err := runBrainfuck(t, "<", "")

	assert.True(t, errors.Is(err, ErrInvalidPointerMotion))
}

func TestRunTapeLimit(t *testing.T) {
	var output bytes.Buffer
	in := New([]byte("+"), brainfuck.New(), Options{
		Output:    &output,
		TapeLimit: 100,
	})

	_, err := in.Run(context.Background())
	assert.True(t, errors.Is(err, tape.ErrResourceExhausted))
}

func TestRunNoInputSource(t *testing.T) {
	var output bytes.Buffer
	in := New([]byte(",."), brainfuck.New(), Options{
		Output: &output,
	})

	outcome, err := in.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, OutcomeEndOfInput, outcome)
	assert.Equal(t, 0, output.Len())
}

func TestRunIchiglyph(t *testing.T) {
	t.Run("increment and output", func(t *testing.T) {
		var output bytes.Buffer
		program := []byte("IlIlIl1l") // +++.
		in := New(program, ichiglyph.New(), Options{Output: &output})

		outcome, err := in.Run(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, OutcomeCompleted, outcome)
		assert.Equal(t, "\x03", output.String())
	})

	t.Run("loop counts down", func(t *testing.T) {
		var output bytes.Buffer
		program := []byte("IlIlIll1llIllIIII1ll1l") // +++[>+<-]>.
		in := New(program, ichiglyph.New(), Options{Output: &output})

		outcome, err := in.Run(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, OutcomeCompleted, outcome)
		assert.Equal(t, "\x03", output.String())
	})

	t.Run("trailing partial unit is ignored", func(t *testing.T) {
		var output bytes.Buffer
		program := []byte("Il1lI") // +. with a dangling byte
		in := New(program, ichiglyph.New(), Options{Output: &output})

		outcome, err := in.Run(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, OutcomeCompleted, outcome)
		assert.Equal(t, "\x01", output.String())
	})
}

func TestRunCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// a program that would never terminate on its own
	in := New([]byte("+[]"), brainfuck.New(), Options{})

	_, err := in.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "completed", OutcomeCompleted.String())
	assert.Equal(t, "end of input", OutcomeEndOfInput.String())
	assert.Equal(t, "unmatched bracket", OutcomeUnmatchedBracket.String())
	assert.Equal(t, "unknown", Outcome(99).String())
}
