// =============================================================================
// Cafeteria Billing - Version Command
// =============================================================================
//
// The 'version' command prints the release the counter is running, so an
// invoice log can be matched to the build that wrote it.
//
// COMMAND USAGE:
//   billing version
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version and BuildDate are stamped by the release build:
//
//   go build -o billing -ldflags "\
//     -X github.com/ginjaninja78/cafeteria-billing/cmd.Version=1.0.0 \
//     -X github.com/ginjaninja78/cafeteria-billing/cmd.BuildDate=$(date -u +%Y-%m-%d)" .
var (
	Version   = "1.0.0"
	BuildDate = "unknown"
)

// versionCmd represents the 'version' command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Long:  `Display the application version, build date, and Go runtime version.`,

	// The version needs neither configuration nor logging.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },

	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Cafeteria Billing")
		fmt.Fprintf(out, "Version:    %s\n", Version)
		fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
		fmt.Fprintf(out, "Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "Platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
