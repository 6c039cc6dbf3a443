package rcplog

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Parse reads and parses a logger CSV file into a session table.
func Parse(filename string) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseReader(file)
}

// ParseReader parses a session table from an io.Reader.
//
// RaceCapture headers quote each name and unit separately ("Name"|"unit",
// with "" for unitless channels). That line is not CSV: a quote-aware parse
// reads the empty unit as an escaped quote and swallows everything after it
// into one still-open field. The header is therefore split on plain commas,
// decoration left raw for the header normalizer. Data rows go through
// encoding/csv with LazyQuotes, so a stray quote in a corrupted row becomes
// cell text for the junk tagger instead of a parse failure.
func ParseReader(r io.Reader) (*Table, error) {
	buf := bufio.NewReader(r)
	headerLine, err := buf.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	headerLine = strings.TrimRight(headerLine, "\r\n")
	if headerLine == "" {
		return nil, fmt.Errorf("empty input: no header row")
	}
	header := strings.Split(headerLine, ",")
	for i, name := range header {
		header[i] = strings.TrimSpace(name)
	}

	reader := csv.NewReader(buf)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	table := &Table{Header: header}
	for _, record := range records {
		table.AppendRow(record)
	}

	return table, nil
}

// Write saves the table to a file. The output is staged in a temporary file
// next to the destination and renamed into place on success, so a failed
// run never leaves a partial file that looks complete.
func (t *Table) Write(filename string) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if err := t.WriteToWriter(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	return nil
}

// WriteToWriter writes the header and all kept rows to w as CRLF-terminated
// CSV, matching the line endings the downstream tool expects. Removed rows
// are omitted.
func (t *Table) WriteToWriter(w io.Writer) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true

	if err := writer.Write(t.Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range t.Rows {
		if row.Removed {
			continue
		}
		if err := writer.Write(row.Cells); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
