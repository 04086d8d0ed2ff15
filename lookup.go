package winkit

import "github.com/Norgate-AV/winkit/internal/winapi"

// FindWindow returns the top-level window whose title matches name exactly.
// A null native result means no window matched and is reported as a
// *NativeCallError.
func FindWindow(name string) (Window, error) {
	hwnd := api.FindWindow(name)
	if hwnd == 0 {
		return Window{}, lastCallError("FindWindowW")
	}

	return Window{hwnd: hwnd}, nil
}

// ForegroundWindow returns the window the user is currently working with.
// A null handle is a valid "no foreground window" answer, reported through
// ok; this lookup never fails, because the native call sets no error code
// on a null result.
func ForegroundWindow() (w Window, ok bool) {
	hwnd := api.GetForegroundWindow()
	if hwnd == 0 {
		return Window{}, false
	}

	return Window{hwnd: hwnd}, true
}

// ActiveWindow returns the active window attached to the calling thread's
// message queue. Like ForegroundWindow, a null result is a valid answer and
// never an error.
func ActiveWindow() (w Window, ok bool) {
	hwnd := api.GetActiveWindow()
	if hwnd == 0 {
		return Window{}, false
	}

	return Window{hwnd: hwnd}, true
}

// DesktopWindow returns the desktop window that covers the whole screen.
func DesktopWindow() Window {
	return Window{hwnd: api.GetDesktopWindow()}
}

// Related returns the window standing in the given relationship to w: its
// first child, owner, neighbours in the z-order, and so on.
func (w Window) Related(rel Relationship) (Window, error) {
	hwnd := api.GetWindow(w.hwnd, uint32(rel))
	if hwnd == 0 {
		return Window{}, lastCallError("GetWindow")
	}

	return Window{hwnd: hwnd}, nil
}

// IsChild reports whether child is a child (or descendant) window of parent.
func IsChild(parent, child Window) bool {
	return api.IsChild(parent.hwnd, child.hwnd)
}

// WindowFromPoint returns the window containing the given screen point.
func WindowFromPoint(x, y int32) (w Window, ok bool) {
	hwnd := api.WindowFromPoint(winapi.POINT{X: x, Y: y})
	if hwnd == 0 {
		return Window{}, false
	}

	return Window{hwnd: hwnd}, true
}

// WindowFromPhysicalPoint returns the window containing the given physical
// screen point, ignoring DPI virtualization.
func WindowFromPhysicalPoint(x, y int32) (w Window, ok bool) {
	hwnd := api.WindowFromPhysicalPoint(winapi.POINT{X: x, Y: y})
	if hwnd == 0 {
		return Window{}, false
	}

	return Window{hwnd: hwnd}, true
}

// LogicalToPhysicalPoint converts a point in the window's logical coordinate
// space into physical screen coordinates.
//
// Caveat: observed to hand back (0, 0) regardless of the input point in some
// sessions; the behavior is unverified upstream and results should be treated
// with suspicion.
func (w Window) LogicalToPhysicalPoint(p Point) (Point, error) {
	n := winapi.POINT{X: p.X, Y: p.Y}
	if ret := api.LogicalToPhysicalPoint(w.hwnd, &n); ret == 0 {
		return Point{}, lastCallError("LogicalToPhysicalPoint")
	}

	return pointFromNative(n), nil
}

// PhysicalToLogicalPoint converts a physical screen point into the window's
// logical coordinate space. It shares LogicalToPhysicalPoint's caveat: the
// transform is unverified upstream and may hand back (0, 0).
func (w Window) PhysicalToLogicalPoint(p Point) (Point, error) {
	n := winapi.POINT{X: p.X, Y: p.Y}
	if ret := api.PhysicalToLogicalPoint(w.hwnd, &n); ret == 0 {
		return Point{}, lastCallError("PhysicalToLogicalPoint")
	}

	return pointFromNative(n), nil
}

// EnumWindows visits every top-level window in z-order until visit returns
// false.
func EnumWindows(visit func(Window) bool) {
	api.EnumWindows(func(hwnd uintptr) bool {
		return visit(Window{hwnd: hwnd})
	})
}

// AllWindows returns every top-level window currently known to the OS. The
// slice is a snapshot: windows may be created or destroyed while it is read.
func AllWindows() []Window {
	var windows []Window

	EnumWindows(func(w Window) bool {
		windows = append(windows, w)
		return true
	})

	return windows
}
