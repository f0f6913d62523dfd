package jsonl

import (
	"io"
	"os"

	"github.com/valyala/gozstd"
)

// CompressionLevel is the default zstd compression level
const CompressionLevel = 2

// decompressingReader wraps a zstd decoder and the underlying file.
type decompressingReader struct {
	reader *gozstd.Reader
	file   *os.File
}

func newDecompressingReader(file *os.File) io.ReadCloser {
	return &decompressingReader{
		reader: gozstd.NewReader(file),
		file:   file,
	}
}

func (r *decompressingReader) Read(p []byte) (int, error) {
	return r.reader.Read(p)
}

func (r *decompressingReader) Close() error {
	r.reader.Release()
	return r.file.Close()
}

// compressingWriter wraps a zstd encoder and the underlying file.
type compressingWriter struct {
	writer *gozstd.Writer
	file   *os.File
}

func newCompressingWriter(file *os.File) io.WriteCloser {
	return &compressingWriter{
		writer: gozstd.NewWriterLevel(file, CompressionLevel),
		file:   file,
	}
}

func (w *compressingWriter) Write(p []byte) (int, error) {
	return w.writer.Write(p)
}

func (w *compressingWriter) Close() error {
	err := w.writer.Close()
	w.writer.Release()
	if cerr := w.file.Close(); err == nil {
		err = cerr
	}
	return err
}
