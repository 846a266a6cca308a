package cli

import (
	"errors"
	"flag"
	"os"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantFile  string
		wantLang  string
		wantUsage bool
	}{
		{
			name:     "positional argument only",
			args:     []string{"prog", "test.b"},
			wantFile: "test.b",
		},
		{
			name:     "flag before positional argument",
			args:     []string{"prog", "-lang", "ichiglyph", "test.ig"},
			wantFile: "test.ig",
			wantLang: "ichiglyph",
		},
		{
			name:      "missing positional argument",
			args:      []string{"prog"},
			wantUsage: true,
		},
		{
			name:      "flag after positional argument",
			args:      []string{"prog", "test.b", "-lang"},
			wantUsage: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })
			os.Args = tt.args

			var lang string
			file, err := ParseFlags(Options{
				Binary: "retrobf",
				Usage:  "source file to execute",
				Register: func(flags *flag.FlagSet) {
					flags.StringVar(&lang, "lang", "", "language encoding")
				},
			})

			if tt.wantUsage {
				assert.Error(t, err)
				var usageErr *UsageError
				assert.True(t, errors.As(err, &usageErr))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantFile, file)
			assert.Equal(t, tt.wantLang, lang)
		})
	}
}
