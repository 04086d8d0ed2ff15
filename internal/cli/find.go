package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winkit"
)

var findCmd = &cobra.Command{
	Use:   "find <title>",
	Short: "Find a window by its exact title",
	Args:  cobra.ExactArgs(1),
	RunE:  runFind,
}

func init() {
	RootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	title := args[0]
	log.Debug("Looking up window", "title", title)

	w, err := winkit.FindWindow(title)
	if err != nil {
		log.Error("Window not found", "title", title, "error", err)
		return fmt.Errorf("no window titled %q: %w", title, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), w.String())

	return nil
}
