package types

// Logger is a simple logging interface used throughout langid
type Logger interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

const (
	// VALIDATE_SAMPLE_SIZE is the number of leading input lines checked
	// by --validate-only
	VALIDATE_SAMPLE_SIZE = 5

	// ZST_EXT marks transparently compressed JSONL files
	ZST_EXT = ".zst"
)
