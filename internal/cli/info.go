package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winkit"
)

var infoCmd = &cobra.Command{
	Use:   "info <title>",
	Short: "Show details about a window",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	RootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	title := args[0]

	w, err := winkit.FindWindow(title)
	if err != nil {
		return fmt.Errorf("no window titled %q: %w", title, err)
	}

	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Handle:    %#x\n", w.Handle())
	fmt.Fprintf(out, "Title:     %s\n", w.Title())
	fmt.Fprintf(out, "Visible:   %v\n", w.Visible())
	fmt.Fprintf(out, "Minimized: %v\n", w.Minimized())
	fmt.Fprintf(out, "Maximized: %v\n", w.Maximized())
	fmt.Fprintf(out, "Unicode:   %v\n", w.IsUnicode())

	tid, pid := w.ThreadProcessID()
	fmt.Fprintf(out, "Thread:    %d\n", tid)
	fmt.Fprintf(out, "Process:   %d\n", pid)

	if r, err := w.Rect(); err == nil {
		fmt.Fprintf(out, "Rect:      (%d, %d) %dx%d\n", r.Left, r.Top, r.Width(), r.Height())
	}

	if c, err := w.ClientRect(); err == nil {
		fmt.Fprintf(out, "Client:    %dx%d\n", c.Width(), c.Height())
	}

	if p, err := w.Placement(); err == nil {
		fmt.Fprintf(out, "ShowCmd:   %d\n", p.ShowCmd)
		fmt.Fprintf(out, "Normal:    (%d, %d) %dx%d\n",
			p.NormalPosition.Left, p.NormalPosition.Top,
			p.NormalPosition.Width(), p.NormalPosition.Height())
	}

	if m := winkit.MonitorFromWindow(w, winkit.NearestMonitor); m.Valid() {
		fmt.Fprintf(out, "Monitor:   %#x\n", m.Handle())
	}

	fmt.Fprintf(out, "Scale:     %d%%\n", winkit.ScaleFactorForDevice())

	return nil
}
