package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winkit"
)

var moveNoRepaint bool

var moveCmd = &cobra.Command{
	Use:   "move <title> <x> <y> <width> <height>",
	Short: "Move and resize a window",
	Args:  validateMoveArgs,
	RunE:  runMove,
}

func init() {
	moveCmd.Flags().BoolVar(&moveNoRepaint, "no-repaint", false, "skip the redraw after moving")
	RootCmd.AddCommand(moveCmd)
}

// validateMoveArgs checks arity and that the four geometry arguments parse
// as integers, with width and height nonnegative.
func validateMoveArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(5)(cmd, args); err != nil {
		return err
	}

	if _, _, _, _, err := parseGeometry(args[1:]); err != nil {
		return err
	}

	return nil
}

// parseGeometry parses x, y, width and height from the given arguments.
func parseGeometry(args []string) (x, y, width, height int32, err error) {
	vals := make([]int32, 4)
	names := []string{"x", "y", "width", "height"}

	for i, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			return 0, 0, 0, 0, fmt.Errorf("%s must be an integer, got %q", names[i], arg)
		}

		if i >= 2 && n < 0 {
			return 0, 0, 0, 0, fmt.Errorf("%s must be nonnegative, got %d", names[i], n)
		}

		vals[i] = int32(n)
	}

	return vals[0], vals[1], vals[2], vals[3], nil
}

func runMove(cmd *cobra.Command, args []string) error {
	title := args[0]

	x, y, width, height, err := parseGeometry(args[1:])
	if err != nil {
		return err
	}

	w, err := winkit.FindWindow(title)
	if err != nil {
		return fmt.Errorf("no window titled %q: %w", title, err)
	}

	log.Debug("Moving window", "hwnd", w.Handle(), "x", x, "y", y, "width", width, "height", height)

	if err := w.Move(x, y, width, height, !moveNoRepaint); err != nil {
		return err
	}

	log.Info("Window moved", "title", title)

	return nil
}
