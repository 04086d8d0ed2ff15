package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winkit"
)

var focusCmd = &cobra.Command{
	Use:   "focus <title>",
	Short: "Bring a window to the foreground",
	Args:  cobra.ExactArgs(1),
	RunE:  runFocus,
}

func init() {
	RootCmd.AddCommand(focusCmd)
}

func runFocus(cmd *cobra.Command, args []string) error {
	title := args[0]

	w, err := winkit.FindWindow(title)
	if err != nil {
		return fmt.Errorf("no window titled %q: %w", title, err)
	}

	// A minimized window cannot meaningfully take the foreground; restore
	// it first.
	if w.Minimized() {
		log.Debug("Window is minimized, restoring", "hwnd", w.Handle())
		w.Restore()
	}

	if err := w.SetForeground(); err != nil {
		log.Error("Focus refused by the OS", "hwnd", w.Handle(), "error", err)
		return err
	}

	log.Info("Window focused", "title", title)

	return nil
}
