package catalog

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// readText parses the "<name>, <price>" text format.
//
// PARSING PROCESS:
//   1. Open the file
//   2. Scan it one physical line at a time
//   3. Split each line with its own CSV reader: comma separated, leading
//      space trimmed, variable field count so malformed lines surface as
//      records
//   4. Feed every record to the builder with its line number
//
// A line is never allowed to run into the next one, so an unbalanced quote
// costs only the line it is on. Blank lines are skipped and not reported.
func readText(path string, b *builder) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return scanText(file, b)
}

func scanText(r io.Reader, b *builder) error {
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		record, err := splitRecord(text)
		if err != nil {
			b.reject(lineNo, text, fmt.Sprintf("unreadable record: %v", err))
			continue
		}
		b.add(lineNo, text, record)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read menu: %w", err)
	}
	return nil
}

// splitRecord splits one menu line into its fields.
func splitRecord(line string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(line))
	configureReader(reader)

	record, err := reader.Read()
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return nil, parseErr.Err
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// configureReader sets up the CSV reader for menu records.
func configureReader(reader *csv.Reader) {
	reader.Comma = ','

	// Let wrong field counts through so they can be reported per line.
	reader.FieldsPerRecord = -1

	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
}
