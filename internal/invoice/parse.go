package invoice

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ginjaninja78/cafeteria-billing/internal/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const columnSep = " | "

var (
	headerPattern  = regexp.MustCompile(`^--- Invoice at (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})(?: \(ref ([0-9a-fA-F-]{36})\))? ---$`)
	summaryPattern = regexp.MustCompile(`^\s*(Total|Payment|Change): (.+)$`)
)

// ParseError reports a log line that does not fit the block format.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invoice log line %d: %s", e.Line, e.Message)
}

// ParseLog reads every invoice block from r.
//
// Blocks without a "(ref ...)" part in the header, as written by older
// versions of the counter, are accepted and get a nil ID. Lines outside of a
// block are ignored.
func ParseLog(r io.Reader, symbol string) ([]*Invoice, error) {
	scanner := bufio.NewScanner(r)

	var (
		invoices []*Invoice
		current  *Invoice
		lineNo   int
	)

	for scanner.Scan() {
		lineNo++
		text := strings.TrimRight(scanner.Text(), "\r")

		if m := headerPattern.FindStringSubmatch(text); m != nil {
			if current != nil {
				return nil, &ParseError{Line: lineNo, Message: "new invoice before separator"}
			}
			ts, err := time.ParseInLocation(TimestampLayout, m[1], time.Local)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Message: err.Error()}
			}
			current = &Invoice{Timestamp: ts}
			if m[2] != "" {
				if current.ID, err = uuid.Parse(m[2]); err != nil {
					return nil, &ParseError{Line: lineNo, Message: err.Error()}
				}
			}
			continue
		}

		if current == nil {
			continue
		}

		switch {
		case text == separator:
			invoices = append(invoices, current)
			current = nil

		// Rows come before summaries: an item may be called "Total: ...".
		case strings.Contains(text, columnSep):
			line, err := parseRow(text, symbol)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Message: err.Error()}
			}
			current.Lines = append(current.Lines, line)

		case summaryPattern.MatchString(text):
			m := summaryPattern.FindStringSubmatch(text)
			amount, err := parseMoney(m[2], symbol)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Message: err.Error()}
			}
			switch m[1] {
			case "Total":
				current.Total = amount
			case "Payment":
				current.Payment = amount
			case "Change":
				current.Change = amount
			}

		default:
			return nil, &ParseError{Line: lineNo, Message: fmt.Sprintf("unexpected line %q", text)}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read invoice log: %w", err)
	}
	if current != nil {
		return nil, &ParseError{Line: lineNo, Message: "invoice block is not terminated"}
	}

	return invoices, nil
}

// parseRow parses "name | qty | $unit | $total". The numeric columns are
// taken from the right so the name itself may contain the column separator.
func parseRow(text, symbol string) (pricing.PricedLine, error) {
	var cols [3]string
	rest := text
	for i := len(cols) - 1; i >= 0; i-- {
		idx := strings.LastIndex(rest, columnSep)
		if idx < 0 {
			return pricing.PricedLine{}, fmt.Errorf("expected 4 columns, got %d", len(cols)-i)
		}
		cols[i] = rest[idx+len(columnSep):]
		rest = rest[:idx]
	}

	qty, err := strconv.Atoi(strings.TrimSpace(cols[0]))
	if err != nil {
		return pricing.PricedLine{}, fmt.Errorf("bad quantity %q", cols[0])
	}
	unit, err := parseMoney(cols[1], symbol)
	if err != nil {
		return pricing.PricedLine{}, err
	}
	total, err := parseMoney(cols[2], symbol)
	if err != nil {
		return pricing.PricedLine{}, err
	}

	return pricing.PricedLine{
		Name:      strings.TrimSpace(rest),
		Quantity:  qty,
		UnitPrice: unit,
		LineTotal: total,
	}, nil
}

func parseMoney(text, symbol string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(text)
	if symbol != "" {
		cleaned = strings.TrimPrefix(cleaned, symbol)
	}
	d, err := decimal.NewFromString(strings.TrimSpace(cleaned))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("bad amount %q", text)
	}
	return d, nil
}
