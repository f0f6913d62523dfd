package types_test

import (
	"bytes"
	"fmt"
	"testing"

	"tangled.org/ashwam.app/langid/internal/types"
)

// ====================================================================================
// CONSTANT VALIDATION TESTS
// ====================================================================================

func TestConstants(t *testing.T) {
	t.Run("ValidateSampleSize", func(t *testing.T) {
		if types.VALIDATE_SAMPLE_SIZE != 5 {
			t.Errorf("VALIDATE_SAMPLE_SIZE = %d, want 5", types.VALIDATE_SAMPLE_SIZE)
		}
	})

	t.Run("ZstExtension", func(t *testing.T) {
		if types.ZST_EXT != ".zst" {
			t.Errorf("ZST_EXT = %s, want .zst", types.ZST_EXT)
		}
	})
}

// ====================================================================================
// LOGGER INTERFACE TESTS
// ====================================================================================

type bufferLogger struct {
	buf bytes.Buffer
}

func (l *bufferLogger) Printf(format string, v ...interface{}) {
	fmt.Fprintf(&l.buf, format+"\n", v...)
}

func (l *bufferLogger) Println(v ...interface{}) {
	fmt.Fprintln(&l.buf, v...)
}

func TestLoggerInterface(t *testing.T) {
	var logger types.Logger = &bufferLogger{}

	logger.Printf("processed %d records", 42)
	logger.Println("done")

	out := logger.(*bufferLogger).buf.String()
	if out != "processed 42 records\ndone\n" {
		t.Errorf("unexpected log output: %q", out)
	}
}
