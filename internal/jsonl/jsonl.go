package jsonl

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goccy/go-json"

	"tangled.org/ashwam.app/langid/internal/types"
)

// Record is one parsed input line.
type Record struct {
	ID   string
	Text string
	// Line is the 1-based input line number the record came from.
	Line int
}

// rawRecord distinguishes missing fields from empty ones.
type rawRecord struct {
	ID   *string `json:"id"`
	Text *string `json:"text"`
}

// SkipCounts accumulates per-reason skip totals for a run.
// Blank and malformed lines are skipped silently so one bad record
// never aborts a batch.
type SkipCounts struct {
	Blank     int
	Malformed int
}

func (s SkipCounts) Total() int {
	return s.Blank + s.Malformed
}

// Pool for scanner buffers
var scannerBufPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 64*1024)
		return &buf
	},
}

// Reader streams records from newline-delimited JSON input.
type Reader struct {
	scanner *bufio.Scanner
	bufPtr  *[]byte
	line    int
	skips   SkipCounts
}

// NewReader creates a reader over r.
func NewReader(r io.Reader) *Reader {
	bufPtr := scannerBufPool.Get().(*[]byte)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(*bufPtr, 1024*1024)

	return &Reader{scanner: scanner, bufPtr: bufPtr}
}

// Next returns the next successfully parsed record. Blank and malformed
// lines are counted and skipped. Returns io.EOF at end of input.
func (r *Reader) Next() (Record, error) {
	for r.scanner.Scan() {
		r.line++

		line := bytes.TrimSpace(r.scanner.Bytes())
		if len(line) == 0 {
			r.skips.Blank++
			continue
		}

		var raw rawRecord
		if err := json.UnmarshalNoEscape(line, &raw); err != nil {
			r.skips.Malformed++
			continue
		}

		rec := Record{Line: r.line}
		if raw.ID != nil {
			rec.ID = *raw.ID
		} else {
			rec.ID = fmt.Sprintf("line_%d", r.line)
		}
		if raw.Text != nil {
			rec.Text = *raw.Text
		}

		return rec, nil
	}

	if err := r.scanner.Err(); err != nil {
		return Record{}, fmt.Errorf("scanner error: %w", err)
	}

	return Record{}, io.EOF
}

// Skips returns the skip counts accumulated so far.
func (r *Reader) Skips() SkipCounts {
	return r.skips
}

// Release returns the scanner buffer to the pool. The reader must not
// be used afterwards.
func (r *Reader) Release() {
	if r.bufPtr != nil {
		scannerBufPool.Put(r.bufPtr)
		r.bufPtr = nil
	}
}

// Writer emits one JSON value per line. Non-ASCII characters are
// written literally.
type Writer struct {
	w *bufio.Writer
}

// NewWriter creates a writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, 64*1024)}
}

// Write marshals v and appends a newline.
func (w *Writer) Write(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal: %w", err)
	}

	if _, err := w.w.Write(data); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Flush flushes buffered output.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Validate checks that the first sampleSize input lines are valid JSON
// objects containing a "text" key. Blank lines count toward the sample
// but are not checked.
func Validate(r io.Reader, sampleSize int) error {
	bufPtr := scannerBufPool.Get().(*[]byte)
	defer scannerBufPool.Put(bufPtr)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(*bufPtr, 1024*1024)

	for i := 0; scanner.Scan(); i++ {
		if i >= sampleSize {
			break
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var obj map[string]json.RawMessage
		if err := json.Unmarshal(line, &obj); err != nil {
			return fmt.Errorf("line %d: invalid JSON: %w", i+1, err)
		}
		if _, ok := obj["text"]; !ok {
			return fmt.Errorf("line %d: JSON object must have a 'text' field", i+1)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// Open opens path for reading, transparently decompressing files with
// the .zst extension.
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}

	if strings.HasSuffix(path, types.ZST_EXT) {
		return newDecompressingReader(file), nil
	}

	return file, nil
}

// Create creates path for writing, creating missing parent directories
// and transparently compressing files with the .zst extension.
func Create(path string) (io.WriteCloser, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}

	if strings.HasSuffix(path, types.ZST_EXT) {
		return newCompressingWriter(file), nil
	}

	return file, nil
}
