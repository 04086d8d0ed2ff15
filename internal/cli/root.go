// Package cli implements the winkit command line, a diagnostic harness for
// inspecting and driving top-level windows.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winkit/internal/logger"
	"github.com/Norgate-AV/winkit/internal/version"
)

var (
	verbose  bool
	showLogs bool

	// log is replaced with a real logger once the root command runs; tests
	// and bare helper calls get the no-op.
	log logger.LoggerInterface = logger.NewNoOpLogger()

	// osExit is swapped out by tests that exercise exit paths.
	osExit = os.Exit
)

var RootCmd = &cobra.Command{
	Use:     "winkit <command>",
	Short:   "winkit - Inspect and drive top-level windows",
	Version: version.GetVersion(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logger.NewLogger(logger.LoggerOptions{Verbose: verbose})
		if err != nil {
			return err
		}

		log = l

		if showLogs {
			if err := logger.PrintLogFile(os.Stdout, logger.LoggerOptions{}); err != nil {
				return err
			}

			osExit(0)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Close()
	},
}

func init() {
	RootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&showLogs, "logs", "l", false, "print the log file and exit")
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}
