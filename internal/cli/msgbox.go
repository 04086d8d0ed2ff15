package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winkit"
)

var (
	msgboxCaption string
	msgboxType    string
)

var msgboxCmd = &cobra.Command{
	Use:   "msgbox <text>",
	Short: "Show a message box and report the button pressed",
	Args:  validateMsgboxArgs,
	RunE:  runMsgbox,
}

func init() {
	msgboxCmd.Flags().StringVarP(&msgboxCaption, "caption", "c", "winkit", "dialog caption")
	msgboxCmd.Flags().StringVarP(&msgboxType, "type", "t", "ok", "button layout: ok, ok-cancel, abort-retry-ignore, yes-no-cancel, yes-no, retry-cancel, cancel-try-continue")
	RootCmd.AddCommand(msgboxCmd)
}

func validateMsgboxArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return err
	}

	if _, err := parseBoxType(msgboxType); err != nil {
		return err
	}

	return nil
}

// parseBoxType maps a layout name to its message box type.
func parseBoxType(name string) (winkit.BoxType, error) {
	switch name {
	case "ok":
		return winkit.OK, nil
	case "ok-cancel":
		return winkit.OkCancel, nil
	case "abort-retry-ignore":
		return winkit.AbortRetryIgnore, nil
	case "yes-no-cancel":
		return winkit.YesNoCancel, nil
	case "yes-no":
		return winkit.YesNo, nil
	case "retry-cancel":
		return winkit.RetryCancel, nil
	case "cancel-try-continue":
		return winkit.CancelTryContinue, nil
	default:
		return 0, fmt.Errorf("unknown box type %q", name)
	}
}

func runMsgbox(cmd *cobra.Command, args []string) error {
	boxType, err := parseBoxType(msgboxType)
	if err != nil {
		return err
	}

	log.Debug("Showing message box", "caption", msgboxCaption, "type", msgboxType)

	result, err := winkit.MessageBox(winkit.Window{}, args[0], msgboxCaption, boxType)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.String())

	return nil
}
