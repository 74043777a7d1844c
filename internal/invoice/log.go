package invoice

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ginjaninja78/cafeteria-billing/pkg/utils"
)

// WriteBlock writes one invoice in the log block format:
//
//	--- Invoice at 2026-01-02 15:04:05 (ref 3f0c...) ---
//	Tea        |     2 | $      1.50 | $      3.00
//	                    Total: $3.00
//	                  Payment: $5.00
//	                   Change: $2.00
//	-----------------------------------
func WriteBlock(w io.Writer, inv *Invoice, symbol string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "\n--- Invoice at %s (ref %s) ---\n", inv.Timestamp.Format(TimestampLayout), inv.ID)
	for _, l := range inv.Lines {
		fmt.Fprintf(bw, "%-10s | %5d | %s%10s | %s%10s\n",
			l.Name,
			l.Quantity,
			symbol, l.UnitPrice.StringFixed(2),
			symbol, l.LineTotal.StringFixed(2),
		)
	}
	writeSummary(bw, inv, symbol)
	fmt.Fprintln(bw, separator)

	return bw.Flush()
}

// Recorder appends invoices to the invoice log and reads them back.
type Recorder struct {
	path   string
	symbol string
}

// NewRecorder creates a recorder for the log at path.
func NewRecorder(path, symbol string) *Recorder {
	return &Recorder{path: path, symbol: symbol}
}

// Path returns the log location.
func (r *Recorder) Path() string { return r.path }

// Append writes inv at the end of the log, creating the file and its
// directory when needed. The file is closed before Append returns.
func (r *Recorder) Append(inv *Invoice) (err error) {
	if err := utils.EnsureParentDir(r.path); err != nil {
		return err
	}

	file, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open invoice log: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close invoice log: %w", cerr)
		}
	}()

	if err := WriteBlock(file, inv, r.symbol); err != nil {
		return fmt.Errorf("failed to write invoice: %w", err)
	}
	return nil
}

// ReadAll parses every invoice in the log. A log that does not exist yet
// holds no invoices.
func (r *Recorder) ReadAll() ([]*Invoice, error) {
	file, err := os.Open(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open invoice log: %w", err)
	}
	defer file.Close()

	return ParseLog(file, r.symbol)
}
