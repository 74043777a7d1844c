// =============================================================================
// Cafeteria Billing - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (billing)
//   ├── runCmd      (billing run)
//   ├── menuCmd     (billing menu)
//   ├── invoicesCmd (billing invoices list|export)
//   └── versionCmd  (billing version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Loading the configuration before any subcommand runs
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/ginjaninja78/cafeteria-billing/internal/catalog"
	"github.com/ginjaninja78/cafeteria-billing/internal/config"
	"github.com/ginjaninja78/cafeteria-billing/internal/logging"
	"github.com/ginjaninja78/cafeteria-billing/pkg/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
var cfgFile string

// verbose mirrors log records to stderr when set to true.
var verbose bool

// appConfig is the configuration loaded by the persistent pre-run hook.
var appConfig *config.Config

// logger is the application logger built by the persistent pre-run hook.
var logger *zap.Logger

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "billing",
	Short: "Cafeteria Billing - point-of-sale for a single cafeteria counter",
	Long: `Cafeteria Billing takes a customer's order at the counter, lets the order be
edited, computes the total, collects payment and records the invoice.

Example Usage:
  billing run                      # Serve one customer
  billing run --menu today.xlsx    # Serve from a spreadsheet menu
  billing menu                     # Check the menu file
  billing invoices export          # Export the invoice log to a workbook`,

	// PersistentPreRunE loads the configuration and the logger for every
	// subcommand.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		appConfig = cfg

		l, err := logging.New(cfg, verbose)
		if err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
		logger = l
		return nil
	},

	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// init sets up the persistent flags.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (defaults apply when it does not exist)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Mirror log records to stderr",
	)
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// loadCatalog loads the menu at path and reports problems to out. An
// unreadable menu yields an empty catalog so the counter still opens.
func loadCatalog(path string, out io.Writer, log *zap.SugaredLogger) *catalog.Catalog {
	c, report, err := catalog.Load(path)
	if err != nil {
		if utils.FileExists(path) {
			fmt.Fprintf(out, "Menu file '%s' could not be read.\n", path)
		} else {
			fmt.Fprintf(out, "Menu file '%s' not found.\n", path)
		}
		log.Warnw("menu unavailable, continuing with an empty menu", "path", path, "error", err)
		return catalog.Empty()
	}

	for _, p := range report.Problems {
		log.Warnw("menu record", "path", path, "severity", p.Severity, "line", p.Line, "value", p.Value, "message", p.Message)
	}
	if n := report.Skipped(); n > 0 {
		fmt.Fprintf(out, "Warning: skipped %d malformed menu record(s) in '%s'.\n", n, path)
	}

	log.Infow("menu loaded", "path", path, "items", report.Loaded, "skipped", report.Skipped())
	return c
}
