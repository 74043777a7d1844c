// =============================================================================
// Cafeteria Billing - Menu Command
// =============================================================================
//
// The 'menu' command loads the menu source and prints the catalog together
// with every skipped or suspicious record. Use it to check a menu file before
// opening the counter.
//
// COMMAND USAGE:
//   billing menu [--menu path]
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/ginjaninja78/cafeteria-billing/internal/catalog"
	"github.com/spf13/cobra"
)

var checkMenuPath string

// menuCmd represents the 'menu' command.
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Load the menu and report malformed records",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := appConfig.MenuFile
		if checkMenuPath != "" {
			path = checkMenuPath
		}
		return printMenu(cmd.OutOrStdout(), path, appConfig.CurrencySymbol)
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
	menuCmd.Flags().StringVar(&checkMenuPath, "menu", "", "Menu source (overrides menu_file)")
}

func printMenu(out io.Writer, path, symbol string) error {
	c, report, err := catalog.Load(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Menu: %s\n\n", path)
	for _, e := range c.Entries() {
		fmt.Fprintf(out, "%3d. %-20s %s%s\n", e.Key, e.Name, symbol, e.UnitPrice.StringFixed(2))
	}

	fmt.Fprintf(out, "\nLoaded:   %d\n", report.Loaded)
	fmt.Fprintf(out, "Skipped:  %d\n", report.Skipped())
	fmt.Fprintf(out, "Warnings: %d\n", report.Warnings())

	for i, p := range report.Problems {
		fmt.Fprintf(out, "%d. %s\n", i+1, p.Error())
	}

	return nil
}
