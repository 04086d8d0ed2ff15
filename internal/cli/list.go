package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winkit"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List top-level windows",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "include invisible and untitled windows")
	RootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	log.Debug("Enumerating top-level windows", "all", listAll)

	count := 0
	winkit.EnumWindows(func(w winkit.Window) bool {
		title := w.Title()
		if !listAll && (title == "" || !w.Visible()) {
			return true
		}

		count++
		fmt.Fprintf(cmd.OutOrStdout(), "%#x\t%s\n", w.Handle(), title)

		return true
	})

	log.Debug("Enumeration complete", "count", count)

	return nil
}
