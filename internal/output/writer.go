// Package output streams rendered rows to a CSV sink in fixed-size
// chunks so that peak memory stays bounded by one chunk of rows.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
)

// DefaultChunkSize is the number of rows buffered between flushes.
const DefaultChunkSize = 50000

// ChunkedWriter buffers rows and flushes them to the sink in batches.
// Rows reach the sink in generation order; any sink error is fatal for
// the run, there is no partial-row recovery.
type ChunkedWriter struct {
	csv       *csv.Writer
	chunkSize int
	buffered  int
	rows      int
}

// NewChunkedWriter writes the header immediately and returns a writer
// that flushes every chunkSize rows.
func NewChunkedWriter(w io.Writer, header []string, chunkSize int) (*ChunkedWriter, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be > 0, got %d", chunkSize)
	}
	cw := &ChunkedWriter{
		csv:       csv.NewWriter(w),
		chunkSize: chunkSize,
	}
	if err := cw.csv.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	return cw, nil
}

// Write buffers one record and flushes the chunk when it is full.
func (cw *ChunkedWriter) Write(record []string) error {
	if err := cw.csv.Write(record); err != nil {
		return fmt.Errorf("write row %d: %w", cw.rows+1, err)
	}
	cw.rows++
	cw.buffered++
	if cw.buffered >= cw.chunkSize {
		return cw.Flush()
	}
	return nil
}

// Flush drains the current chunk to the sink.
func (cw *ChunkedWriter) Flush() error {
	cw.csv.Flush()
	if err := cw.csv.Error(); err != nil {
		return fmt.Errorf("flush chunk: %w", err)
	}
	cw.buffered = 0
	return nil
}

// Rows returns how many data rows have been written so far, not
// counting the header.
func (cw *ChunkedWriter) Rows() int {
	return cw.rows
}
