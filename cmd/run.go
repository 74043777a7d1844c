// =============================================================================
// Cafeteria Billing - Run Command
// =============================================================================
//
// The 'run' command serves one customer: it loads the menu, runs the checkout
// dialogue on stdin/stdout and appends the invoice to the invoice log.
//
// COMMAND USAGE:
//   billing run [flags]
//
// FLAGS:
//   --menu         : Menu source to use instead of menu_file
//   --invoice-log  : Invoice log to use instead of invoice_log
//   --no-clear     : Never clear the screen
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/ginjaninja78/cafeteria-billing/internal/invoice"
	"github.com/ginjaninja78/cafeteria-billing/internal/session"
	"github.com/spf13/cobra"
)

var (
	menuPath       string
	invoiceLogPath string
	noClear        bool
)

// runCmd represents the 'run' command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Serve one customer at the counter",
	Long: `Run loads the menu and walks one customer through ordering, editing the
order, confirming and paying. The final invoice is shown and appended to the
invoice log.

If the menu cannot be read the counter still opens with an empty menu.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&menuPath, "menu", "", "Menu source (overrides menu_file)")
	runCmd.Flags().StringVar(&invoiceLogPath, "invoice-log", "", "Invoice log (overrides invoice_log)")
	runCmd.Flags().BoolVar(&noClear, "no-clear", false, "Never clear the screen")
}

// runSession wires the configuration into a checkout session and runs it.
func runSession(in io.Reader, out io.Writer) error {
	log := logger.Sugar()

	if menuPath != "" {
		appConfig.MenuFile = menuPath
	}
	if invoiceLogPath != "" {
		appConfig.InvoiceLog = invoiceLogPath
	}

	menu := loadCatalog(appConfig.MenuFile, out, log)

	var term session.Terminal = session.NopTerminal{}
	if appConfig.ShouldClearScreen() && !noClear {
		term = session.ANSITerminal{Out: out}
	}

	s := session.New(menu, in, out,
		invoice.NewRecorder(appConfig.InvoiceLog, appConfig.CurrencySymbol),
		session.Options{
			CurrencySymbol: appConfig.CurrencySymbol,
			Farewell:       appConfig.Farewell,
			Terminal:       term,
			Logger:         log,
		},
	)

	inv, err := s.Run()
	if errors.Is(err, session.ErrInputClosed) {
		fmt.Fprintln(out, "\nInput closed, the order was abandoned.")
		log.Warnw("session abandoned", "state", s.State().String())
		return nil
	}
	if err != nil {
		return fmt.Errorf("checkout failed: %w", err)
	}

	log.Infow("session complete", "ref", inv.ID.String(), "log", appConfig.InvoiceLog)
	return nil
}
