package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"
)

func TestNewChunkedWriterWritesHeaderFirst(t *testing.T) {
	var buf bytes.Buffer
	cw, err := NewChunkedWriter(&buf, []string{"a", "b", "c"}, 5)
	if err != nil {
		t.Fatalf("NewChunkedWriter: %v", err)
	}
	if err := cw.Write([]string{"1", "2", "3"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "a,b,c" {
		t.Errorf("first line = %q, want header", lines[0])
	}
	if len(lines) != 2 {
		t.Errorf("got %d lines, want header plus one row", len(lines))
	}
}

func TestNewChunkedWriterRejectsBadChunkSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := NewChunkedWriter(&bytes.Buffer{}, []string{"a"}, size); err == nil {
			t.Errorf("chunk size %d accepted", size)
		}
	}
}

func TestWriteFlushesFullChunks(t *testing.T) {
	var buf bytes.Buffer
	cw, err := NewChunkedWriter(&buf, []string{"n"}, 3)
	if err != nil {
		t.Fatalf("NewChunkedWriter: %v", err)
	}

	for i := 1; i <= 2; i++ {
		if err := cw.Write([]string{strconv.Itoa(i)}); err != nil {
			t.Fatalf("Write %d: %v", i, err)
		}
	}
	if buf.Len() != 0 {
		t.Fatalf("partial chunk flushed early: %q", buf.String())
	}

	if err := cw.Write([]string{"3"}); err != nil {
		t.Fatalf("Write 3: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("full chunk not flushed")
	}

	if err := cw.Write([]string{"4"}); err != nil {
		t.Fatalf("Write 4: %v", err)
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := [][]string{{"n"}, {"1"}, {"2"}, {"3"}, {"4"}}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i := range want {
		if records[i][0] != want[i][0] {
			t.Errorf("record %d = %q, want %q", i, records[i][0], want[i][0])
		}
	}
	if cw.Rows() != 4 {
		t.Errorf("Rows() = %d, want 4", cw.Rows())
	}
}

func TestWriteQuotesSpecialCharacters(t *testing.T) {
	var buf bytes.Buffer
	cw, err := NewChunkedWriter(&buf, []string{"name", "note"}, 1)
	if err != nil {
		t.Fatalf("NewChunkedWriter: %v", err)
	}
	if err := cw.Write([]string{"Smith, John", `said "hi"`}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if records[1][0] != "Smith, John" || records[1][1] != `said "hi"` {
		t.Errorf("round trip lost quoting: %v", records[1])
	}
}
