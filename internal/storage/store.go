package storage

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is a single blank-line separated block of a world file.
type Record struct {
	Line  int      // line number of the first entry, 1-based
	Lines []string // trimmed, non-blank lines in file order
}

// Len returns the number of lines in the record.
func (r Record) Len() int {
	return len(r.Lines)
}

// ReadRecords splits the input into records. A record ends at a blank line
// or at end of input, so files without a trailing blank line still yield
// their final record. Runs of blank lines never produce empty records.
func ReadRecords(r io.Reader) ([]Record, error) {
	var records []Record
	var cur *Record

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			if cur != nil {
				records = append(records, *cur)
				cur = nil
			}
			continue
		}

		if cur == nil {
			cur = &Record{Line: lineNo}
		}
		cur.Lines = append(cur.Lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading line %d: %w", lineNo+1, err)
	}

	if cur != nil {
		records = append(records, *cur)
	}

	return records, nil
}

// LoadRecords opens the file at path and reads its records.
// A missing file is reported with an error wrapping fs.ErrNotExist.
func LoadRecords(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}

	// Ignoring close error - file is read-only, error is not actionable
	defer func() { _ = file.Close() }()

	records, err := ReadRecords(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return records, nil
}
