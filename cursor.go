package winkit

// CursorPos returns the mouse cursor's position in screen coordinates.
func CursorPos() (Point, error) {
	p, ret := api.GetCursorPos()
	if ret == 0 {
		return Point{}, lastCallError("GetCursorPos")
	}

	return pointFromNative(p), nil
}

// ClipCursor confines the mouse cursor to the given screen rectangle. A nil
// rectangle releases the confinement and lets the cursor move anywhere.
func ClipCursor(r *Rect) error {
	var ret uintptr
	if r == nil {
		ret = api.ClipCursor(nil)
	} else {
		n := r.native()
		ret = api.ClipCursor(&n)
	}

	if ret == 0 {
		return lastCallError("ClipCursor")
	}

	return nil
}

// IsProcessDPIAware reports whether the current process has declared itself
// DPI aware.
func IsProcessDPIAware() bool {
	return api.IsProcessDPIAware()
}

// WaitMessage blocks until a message is available on the calling thread's
// message queue. The boolean result carries no retrievable error code.
func WaitMessage() bool {
	return api.WaitMessage() != 0
}
