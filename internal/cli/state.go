package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winkit"
)

var stateCmd = &cobra.Command{
	Use:   "state <title> <show|hide|minimize|maximize|restore>",
	Short: "Change a window's show state",
	Args:  validateStateArgs,
	RunE:  runState,
}

func init() {
	RootCmd.AddCommand(stateCmd)
}

func validateStateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		return err
	}

	if _, err := parseShowAction(args[1]); err != nil {
		return err
	}

	return nil
}

// parseShowAction maps an action word to its show command.
func parseShowAction(action string) (winkit.ShowCmd, error) {
	switch action {
	case "show":
		return winkit.ShowCmdShow, nil
	case "hide":
		return winkit.ShowCmdHide, nil
	case "minimize":
		return winkit.ShowCmdMinimized, nil
	case "maximize":
		return winkit.ShowCmdMaximized, nil
	case "restore":
		return winkit.ShowCmdRestore, nil
	default:
		return 0, fmt.Errorf("unknown action %q: want show, hide, minimize, maximize or restore", action)
	}
}

func runState(cmd *cobra.Command, args []string) error {
	title := args[0]

	action, err := parseShowAction(args[1])
	if err != nil {
		return err
	}

	w, err := winkit.FindWindow(title)
	if err != nil {
		return fmt.Errorf("no window titled %q: %w", title, err)
	}

	wasVisible := w.ShowWindow(action)
	log.Debug("Show state changed", "hwnd", w.Handle(), "action", args[1], "wasVisible", wasVisible)
	log.Info("Window state changed", "title", title, "action", args[1])

	return nil
}
