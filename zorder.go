package winkit

import "github.com/Norgate-AV/winkit/internal/winapi"

// BringToTop moves the window to the top of the z-order.
//
// Caveat: observed to be unreliable for actually restacking windows; prefer
// SetForeground when the goal is to put a window in front of the user.
func (w Window) BringToTop() error {
	if ret := api.BringWindowToTop(w.hwnd); ret == 0 {
		return lastCallError("BringWindowToTop")
	}

	return nil
}

// SetForeground activates the window and brings its thread to the
// foreground. The OS applies its own rules about which processes may take
// the foreground and publishes no error code when it refuses, so a failure
// is reported as ErrSetForegroundWindow with no code attached.
func (w Window) SetForeground() error {
	if ret := api.SetForegroundWindow(w.hwnd); ret == 0 {
		// Deliberately no last-error fetch: this call does not set one.
		return ErrSetForegroundWindow
	}

	return nil
}

// SetPos moves, resizes and restacks the window in one call. insertAfter
// anchors the window in the z-order (ZOrderTop by default semantics of the
// underlying call) and flags are the Pos* bits passed through unchanged.
func (w Window) SetPos(left, top, width, height int32, insertAfter ZOrder, flags uint32) error {
	ret := api.SetWindowPos(w.hwnd, uintptr(insertAfter), left, top, width, height, flags)
	if ret == 0 {
		return lastCallError("SetWindowPos")
	}

	return nil
}

// Move moves and resizes the window so that its top-left corner sits at
// (x, y) with the given outer size. repaint forces a redraw after the move.
func (w Window) Move(x, y, width, height int32, repaint bool) error {
	if ret := api.MoveWindow(w.hwnd, x, y, width, height, repaint); ret == 0 {
		return lastCallError("MoveWindow")
	}

	return nil
}

// LockSetForegroundWindow enables or disables the calling process's ability
// to take the foreground through SetForeground. The toggle is process-wide.
func LockSetForegroundWindow(lock bool) error {
	code := uint32(winapi.LSFW_UNLOCK)
	if lock {
		code = winapi.LSFW_LOCK
	}

	if ret := api.LockSetForegroundWindow(code); ret == 0 {
		return lastCallError("LockSetForegroundWindow")
	}

	return nil
}
