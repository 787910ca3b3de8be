package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes.
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "redline",
	Short: "Review AI-suggested text edits hunk by hunk",
	Long: "Redline diffs an original text against an AI-revised version, groups the\n" +
		"changes into hunks, records per-hunk accept/reject decisions, and produces\n" +
		"the final text that honors those decisions.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(decideCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print redline version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "redline version %s\n", version)
	},
}
