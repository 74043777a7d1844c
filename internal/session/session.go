// =============================================================================
// Cafeteria Billing - Checkout Session
// =============================================================================
//
// The session drives one customer through the counter dialogue. It owns the
// catalog, the order ledger and the dialogue state; nothing is kept in
// package-level variables.
//
// DIALOGUE FLOW:
//   Browsing -> Ordering -> Modifying -> AwaitingConfirmation
//            -> AwaitingPayment -> Finalized
//
//   Modifying -> Ordering             "add more items"
//   AwaitingConfirmation -> Modifying customer declines
//
// ERROR HANDLING:
//   Bad input, unknown items and short payments are reported and the
//   dialogue re-prompts. Only closed input ends a session early.
//
// =============================================================================

package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ginjaninja78/cafeteria-billing/internal/catalog"
	"github.com/ginjaninja78/cafeteria-billing/internal/invoice"
	"github.com/ginjaninja78/cafeteria-billing/internal/logging"
	"github.com/ginjaninja78/cafeteria-billing/internal/order"
	"github.com/ginjaninja78/cafeteria-billing/internal/payment"
	"github.com/ginjaninja78/cafeteria-billing/internal/pricing"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Recorder persists finalized invoices.
type Recorder interface {
	Append(inv *invoice.Invoice) error
}

// Options configures a session.
type Options struct {
	// CurrencySymbol is printed before amounts. Default "$".
	CurrencySymbol string

	// Farewell is printed under the final invoice.
	Farewell string

	// Terminal clears the screen between views. Default NopTerminal.
	Terminal Terminal

	// Logger receives structured events. Default no-op.
	Logger *zap.SugaredLogger

	// Now is the clock used to timestamp invoices. Default time.Now.
	Now func() time.Time
}

// Session is one checkout at the counter.
type Session struct {
	catalog  *catalog.Catalog
	ledger   *order.Ledger
	recorder Recorder
	state    State

	in  *bufio.Reader
	out io.Writer

	symbol   string
	farewell string
	term     Terminal
	log      *zap.SugaredLogger
	now      func() time.Time
}

// New creates a session reading customer input from in and writing the
// dialogue to out.
func New(c *catalog.Catalog, in io.Reader, out io.Writer, rec Recorder, opts Options) *Session {
	if c == nil {
		c = catalog.Empty()
	}
	if opts.CurrencySymbol == "" {
		opts.CurrencySymbol = "$"
	}
	if opts.Terminal == nil {
		opts.Terminal = NopTerminal{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Session{
		catalog:  c,
		ledger:   order.NewLedger(c),
		recorder: rec,
		state:    Browsing,
		in:       bufio.NewReader(in),
		out:      out,
		symbol:   opts.CurrencySymbol,
		farewell: opts.Farewell,
		term:     opts.Terminal,
		log:      logging.OrNop(opts.Logger),
		now:      opts.Now,
	}
}

// State returns the current dialogue state.
func (s *Session) State() State { return s.state }

// Ledger exposes the order being built.
func (s *Session) Ledger() *order.Ledger { return s.ledger }

// =============================================================================
// MAIN LOOP
// =============================================================================

// Run executes the dialogue until one invoice is finalized.
//
// RETURNS:
//   - The finalized invoice.
//   - ErrInputClosed if input ends first.
func (s *Session) Run() (*invoice.Invoice, error) {
	s.term.Clear()
	fmt.Fprintln(s.out, "Welcome to the Cafeteria Billing System!")
	s.displayMenu()

	if err := s.transition(Ordering); err != nil {
		return nil, err
	}
	if err := s.takeOrder(); err != nil {
		return nil, err
	}
	if err := s.transition(Modifying); err != nil {
		return nil, err
	}

	for {
		if err := s.modifyOrder(); err != nil {
			return nil, err
		}

		quote := s.quote()
		fmt.Fprintf(s.out, "Current total: %s\n", s.money(quote.Total))

		if err := s.transition(AwaitingConfirmation); err != nil {
			return nil, err
		}
		proceed, err := s.confirm()
		if err != nil {
			return nil, err
		}
		if !proceed {
			fmt.Fprintln(s.out, "You can continue modifying the order.")
			if err := s.transition(Modifying); err != nil {
				return nil, err
			}
			continue
		}

		if err := s.transition(AwaitingPayment); err != nil {
			return nil, err
		}
		receipt, err := s.collectPayment(quote.Total)
		if err != nil {
			return nil, err
		}

		return s.finalize(quote, receipt)
	}
}

// finalize snapshots the invoice, shows it, records it and clears the order.
func (s *Session) finalize(q pricing.Quote, r payment.Receipt) (*invoice.Invoice, error) {
	inv := invoice.New(q, r, s.now())

	s.term.Clear()
	inv.Render(s.out, s.symbol, s.farewell)

	if s.recorder != nil {
		if err := s.recorder.Append(inv); err != nil {
			fmt.Fprintln(s.out, "Warning: the invoice could not be recorded.")
			s.log.Errorw("invoice not recorded", "ref", inv.ID.String(), "error", err)
		}
	}

	s.log.Infow("invoice finalized",
		"ref", inv.ID.String(),
		"lines", len(inv.Lines),
		"total", inv.Total.StringFixed(2),
		"payment", inv.Payment.StringFixed(2),
		"change", inv.Change.StringFixed(2),
	)

	s.ledger.Reset()
	if err := s.transition(Finalized); err != nil {
		return nil, err
	}
	return inv, nil
}

// transition moves the dialogue to the next state.
func (s *Session) transition(to State) error {
	if !CanTransition(s.state, to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s.state, to)
	}
	s.log.Debugw("session state", "from", s.state.String(), "to", to.String())
	s.state = to
	return nil
}

// =============================================================================
// ORDERING
// =============================================================================

// finishKey is the reserved menu number that ends ordering.
func (s *Session) finishKey() int {
	return s.catalog.Len() + 1
}

func (s *Session) displayMenu() {
	fmt.Fprintln(s.out, "\n--- Cafeteria Menu ---")
	for _, e := range s.catalog.Entries() {
		fmt.Fprintf(s.out, "%d. %-10s - %s\n", e.Key, e.Name, s.money(e.UnitPrice))
	}
	fmt.Fprintf(s.out, "%d. Finish Order\n", s.finishKey())
	fmt.Fprintln(s.out, "----------------------")
}

// takeOrder reads item numbers and quantities until the customer finishes
// with at least one item ordered.
func (s *Session) takeOrder() error {
	for {
		choice, err := s.promptInt(fmt.Sprintf("\nEnter the item number (or %d to finish ordering): ", s.finishKey()))
		if errors.Is(err, errNotANumber) {
			fmt.Fprintln(s.out, "Invalid input. Please enter a valid number.")
			continue
		}
		if err != nil {
			return err
		}

		if choice == s.finishKey() {
			if s.ledger.IsEmpty() {
				fmt.Fprintln(s.out, "You must add at least one item to continue with billing.")
				if _, err := s.prompt("Press Enter to go back to the menu..."); err != nil {
					return err
				}
				s.term.Clear()
				s.displayMenu()
				continue
			}
			return nil
		}

		entry, ok := s.catalog.Entry(choice)
		if !ok {
			fmt.Fprintln(s.out, "Invalid choice. Please select a valid item number.")
			continue
		}

		quantity, err := s.promptInt(fmt.Sprintf("Enter quantity for %s: ", entry.Name))
		if errors.Is(err, errNotANumber) {
			fmt.Fprintln(s.out, "Invalid input. Please enter a valid number.")
			continue
		}
		if err != nil {
			return err
		}

		line, err := s.ledger.AddItem(entry.Key, quantity)
		if errors.Is(err, order.ErrInvalidQuantity) {
			fmt.Fprintf(s.out, "Quantity must be between 1 and %d per item.\n", order.MaxQuantity)
			continue
		}
		if err != nil {
			fmt.Fprintln(s.out, "Invalid choice. Please select a valid item number.")
			continue
		}

		s.log.Infow("item added", "item", entry.Name, "quantity", quantity, "ordered", line.Quantity)
	}
}

// =============================================================================
// MODIFYING
// =============================================================================

// modifyOrder runs the modify menu until the customer finalizes a non-empty
// order.
func (s *Session) modifyOrder() error {
	redraw := true
	for {
		if redraw {
			s.term.Clear()
			redraw = false
		}

		fmt.Fprintln(s.out, "\n--- Modify Order ---")
		fmt.Fprintln(s.out, "1. Add more items")
		fmt.Fprintln(s.out, "2. Delete an item")
		fmt.Fprintln(s.out, "3. Update item quantity")
		fmt.Fprintln(s.out, "4. View current order")
		fmt.Fprintln(s.out, "5. Finalize order")

		choice, err := s.prompt("Select an option: ")
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			if err := s.addMore(); err != nil {
				return err
			}
			redraw = true

		case "2":
			if err := s.deleteItem(); err != nil {
				return err
			}

		case "3":
			if err := s.updateQuantity(); err != nil {
				return err
			}

		case "4":
			s.printSummary()
			if _, err := s.prompt("\nPress Enter to continue..."); err != nil {
				return err
			}
			redraw = true

		case "5":
			if err := s.checkFinalizable(); err != nil {
				fmt.Fprintln(s.out, "Your order is empty. Add at least one item before finalizing.")
				continue
			}
			fmt.Fprintln(s.out, "Order finalized.")
			return nil

		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

func (s *Session) checkFinalizable() error {
	if s.ledger.IsEmpty() {
		return ErrEmptyOrder
	}
	return nil
}

func (s *Session) addMore() error {
	if err := s.transition(Ordering); err != nil {
		return err
	}
	s.term.Clear()
	s.displayMenu()
	if err := s.takeOrder(); err != nil {
		return err
	}
	return s.transition(Modifying)
}

func (s *Session) deleteItem() error {
	name, err := s.prompt("Enter the item name to delete: ")
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)

	removed, err := s.ledger.RemoveItem(name)
	if errors.Is(err, order.ErrItemNotFound) {
		fmt.Fprintf(s.out, "%s not found in the order.\n", name)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "%s removed from the order.\n", removed.Name)
	s.log.Infow("item removed", "item", removed.Name, "quantity", removed.Quantity)
	return nil
}

func (s *Session) updateQuantity() error {
	name, err := s.prompt("Enter the item name to update: ")
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)

	if s.ledger.Quantity(name) == 0 {
		fmt.Fprintf(s.out, "%s not found in the order.\n", name)
		return nil
	}

	quantity, err := s.promptInt(fmt.Sprintf("Enter new quantity for %s: ", name))
	if errors.Is(err, errNotANumber) {
		fmt.Fprintln(s.out, "Invalid input. Please enter a valid number.")
		return nil
	}
	if err != nil {
		return err
	}

	line, err := s.ledger.SetQuantity(name, quantity)
	switch {
	case errors.Is(err, order.ErrInvalidQuantity):
		fmt.Fprintf(s.out, "Quantity must be between 0 and %d.\n", order.MaxQuantity)
	case err != nil:
		fmt.Fprintf(s.out, "%s not found in the order.\n", name)
	case line.Quantity == 0:
		fmt.Fprintf(s.out, "%s removed from the order.\n", line.Name)
		s.log.Infow("item removed", "item", line.Name)
	default:
		fmt.Fprintf(s.out, "%s quantity updated to %d.\n", line.Name, line.Quantity)
		s.log.Infow("quantity updated", "item", line.Name, "quantity", line.Quantity)
	}
	return nil
}

// =============================================================================
// PRICING, CONFIRMATION AND PAYMENT
// =============================================================================

// quote prices the order and reports unresolved lines as warnings.
func (s *Session) quote() pricing.Quote {
	q := pricing.Price(s.ledger.Lines(), s.catalog)
	for _, u := range q.Unresolved {
		fmt.Fprintf(s.out, "Warning: %s not found in the menu. Skipping.\n", u.Name)
		s.log.Warnw("unresolved order line", "item", u.Name, "quantity", u.Quantity)
	}
	return q
}

func (s *Session) printSummary() {
	q := s.quote()
	fmt.Fprintln(s.out, "\n--- Current Order ---")
	invoice.WriteTable(s.out, q.Lines)
}

// confirm asks whether to proceed to payment. Only y/yes/n/no are accepted.
func (s *Session) confirm() (bool, error) {
	for {
		answer, err := s.prompt("Do you want to finalize the order and proceed to payment? (yes'y'/no'n'): ")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please enter 'yes/y' or 'no/n'.")
		}
	}
}

// collectPayment loops until the tendered amount covers total.
func (s *Session) collectPayment(total decimal.Decimal) (payment.Receipt, error) {
	settlement := payment.NewSettlement(total)

	for {
		text, err := s.prompt(fmt.Sprintf("\nEnter payment amount (%s required): ", s.money(settlement.Total())))
		if err != nil {
			return payment.Receipt{}, err
		}

		amount, err := payment.ParseAmount(text, s.symbol)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Please enter a valid amount.")
			continue
		}

		receipt, err := settlement.Settle(amount)
		var short *payment.InsufficientPaymentError
		switch {
		case errors.As(err, &short):
			fmt.Fprintf(s.out, "Insufficient amount. You still owe %s.\n", s.money(short.Shortfall))
			s.log.Infow("insufficient payment", "tendered", amount.StringFixed(2), "shortfall", short.Shortfall.StringFixed(2))
		case errors.Is(err, payment.ErrNegativeAmount):
			fmt.Fprintln(s.out, "Invalid input. Please enter a valid amount.")
		case err != nil:
			return payment.Receipt{}, err
		default:
			return receipt, nil
		}
	}
}

// =============================================================================
// INPUT HELPERS
// =============================================================================

var errNotANumber = errors.New("not a number")

// prompt writes msg and reads one line of input without its line ending.
func (s *Session) prompt(msg string) (string, error) {
	fmt.Fprint(s.out, msg)

	line, err := s.in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", ErrInputClosed
		}
	} else if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// promptInt reads a whole number. Non-numeric input yields errNotANumber.
func (s *Session) promptInt(msg string) (int, error) {
	text, err := s.prompt(msg)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, errNotANumber
	}
	return n, nil
}

func (s *Session) money(d decimal.Decimal) string {
	return s.symbol + d.StringFixed(2)
}
