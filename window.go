package winkit

import (
	"fmt"
	"syscall"
	"time"
)

// Window wraps a native window handle. It is a plain value: equality and
// hashing are defined on the numeric handle alone, and holding a Window
// carries no liveness guarantee, since the OS recycles handle values.
//
// The zero Window is not a valid target for window operations, but may be
// passed where an optional owner is accepted (see MessageBox).
type Window struct {
	hwnd uintptr
}

// NewWindow wraps a raw handle value. It fails with ErrInvalidHandle when
// hwnd is zero; it performs no other check, and in particular does not verify
// that the handle currently names a live window.
func NewWindow(hwnd uintptr) (Window, error) {
	if hwnd == 0 {
		return Window{}, ErrInvalidHandle
	}

	return Window{hwnd: hwnd}, nil
}

// Handle returns the raw native handle value.
func (w Window) Handle() uintptr {
	return w.hwnd
}

func (w Window) String() string {
	r, err := w.Rect()
	if err != nil {
		return fmt.Sprintf("Window(hwnd=%#x)", w.hwnd)
	}

	return fmt.Sprintf("Window(hwnd=%#x, left=%d, top=%d, width=%d, height=%d, title=%q)",
		w.hwnd, r.Left, r.Top, r.Width(), r.Height(), w.Title())
}

// Rect returns the window's bounding rectangle in screen coordinates.
func (w Window) Rect() (Rect, error) {
	r, ret := api.GetWindowRect(w.hwnd)
	if ret == 0 {
		return Rect{}, lastCallError("GetWindowRect")
	}

	return rectFromNative(r), nil
}

// ClientRect returns the window's client-area rectangle. Coordinates are
// relative to the client area's own origin, so Left and Top are zero.
func (w Window) ClientRect() (Rect, error) {
	r, ret := api.GetClientRect(w.hwnd)
	if ret == 0 {
		return Rect{}, lastCallError("GetClientRect")
	}

	return rectFromNative(r), nil
}

// The derived geometry accessors below issue a fresh rectangle query on
// every read. Two consecutive reads can observe different values if the
// window was resized in between: always-fresh is chosen over possibly-stale.

// Width returns the window's current outer width.
func (w Window) Width() (int32, error) {
	r, err := w.Rect()
	if err != nil {
		return 0, err
	}

	return r.Width(), nil
}

// Height returns the window's current outer height.
func (w Window) Height() (int32, error) {
	r, err := w.Rect()
	if err != nil {
		return 0, err
	}

	return r.Height(), nil
}

// Size returns the window's current outer width and height.
func (w Window) Size() (width, height int32, err error) {
	r, err := w.Rect()
	if err != nil {
		return 0, 0, err
	}

	return r.Width(), r.Height(), nil
}

// TopLeft returns the window's top-left corner in screen coordinates.
func (w Window) TopLeft() (Point, error) {
	r, err := w.Rect()
	if err != nil {
		return Point{}, err
	}

	return Point{X: r.Left, Y: r.Top}, nil
}

// TopRight returns the window's top-right corner in screen coordinates.
func (w Window) TopRight() (Point, error) {
	r, err := w.Rect()
	if err != nil {
		return Point{}, err
	}

	return Point{X: r.Right, Y: r.Top}, nil
}

// BottomLeft returns the window's bottom-left corner in screen coordinates.
func (w Window) BottomLeft() (Point, error) {
	r, err := w.Rect()
	if err != nil {
		return Point{}, err
	}

	return Point{X: r.Left, Y: r.Bottom}, nil
}

// BottomRight returns the window's bottom-right corner in screen coordinates.
func (w Window) BottomRight() (Point, error) {
	r, err := w.Rect()
	if err != nil {
		return Point{}, err
	}

	return Point{X: r.Right, Y: r.Bottom}, nil
}

// Title returns the text of the window's title bar. The required length is
// queried first, then a buffer of length+1 characters is filled and decoded.
//
// Known limitation: an empty result cannot be distinguished from a failed
// call; the underlying query reports both the same way.
func (w Window) Title() string {
	length := api.GetWindowTextLength(w.hwnd)
	buf := make([]uint16, length+1) // +1 for the NUL terminator
	api.GetWindowText(w.hwnd, buf)

	return syscall.UTF16ToString(buf)
}

// SetTitle replaces the text of the window's title bar.
func (w Window) SetTitle(text string) error {
	if ret := api.SetWindowText(w.hwnd, text); ret == 0 {
		return lastCallError("SetWindowTextW")
	}

	return nil
}

// Visible reports whether the window is shown. Visibility, minimized and
// maximized are independent facts: a window can be visible and minimized at
// the same time.
func (w Window) Visible() bool {
	return api.IsWindowVisible(w.hwnd)
}

// Minimized reports whether the window is iconic (minimized).
func (w Window) Minimized() bool {
	return api.IsIconic(w.hwnd)
}

// Maximized reports whether the window is zoomed (maximized).
func (w Window) Maximized() bool {
	return api.IsZoomed(w.hwnd)
}

// Exists reports whether the handle currently names a live window. The
// answer can be stale by the time it is read: handles are recycled, so a
// window another thread owns may be destroyed right after the query.
func (w Window) Exists() bool {
	return api.IsWindow(w.hwnd)
}

// IsUnicode reports whether the window is a native Unicode window.
func (w Window) IsUnicode() bool {
	return api.IsWindowUnicode(w.hwnd)
}

// ShowWindow performs the given show action. The return value reports
// whether the window was visible immediately BEFORE the call, not its state
// afterwards; the native call communicates prior state through its result
// and callers rely on exactly that.
func (w Window) ShowWindow(cmd ShowCmd) (wasVisible bool) {
	return api.ShowWindow(w.hwnd, int32(cmd)) != 0
}

// ShowWindowAsync posts the show action without waiting for the target
// window's thread to process it. Fire-and-forget: the boolean only
// acknowledges that the request was posted; no completion signal exists.
func (w Window) ShowWindowAsync(cmd ShowCmd) bool {
	return api.ShowWindowAsync(w.hwnd, int32(cmd)) != 0
}

// Hide makes the window invisible. Hiding is not minimizing: the window only
// reappears when Show is called. Reports whether the window was visible
// before the call.
func (w Window) Hide() (wasVisible bool) {
	return w.ShowWindow(ShowCmdHide)
}

// Show makes the window visible. Reports whether the window was visible
// before the call.
func (w Window) Show() (wasVisible bool) {
	return w.ShowWindow(ShowCmdShow)
}

// Maximize zooms the window to fill its monitor.
func (w Window) Maximize() (wasVisible bool) {
	return w.ShowWindow(ShowCmdMaximized)
}

// Minimize minimizes the window to the taskbar.
func (w Window) Minimize() (wasVisible bool) {
	return w.ShowWindow(ShowCmdMinimized)
}

// Restore brings the window back from the minimized or maximized state.
func (w Window) Restore() (wasVisible bool) {
	return w.ShowWindow(ShowCmdRestore)
}

// ForceMinimize minimizes the window even when its owning thread is busy.
func (w Window) ForceMinimize() (wasVisible bool) {
	return w.ShowWindow(ShowCmdForceMinimize)
}

// SetVisible shows or hides the window. Reports whether the window was
// visible before the call.
func (w Window) SetVisible(visible bool) (wasVisible bool) {
	if visible {
		return w.Show()
	}

	return w.Hide()
}

// SetMaximized drives the window into or out of the maximized state. Setting
// false on a window that is not currently maximized performs no native
// mutating call at all; setting false on a maximized window issues exactly
// one restore.
func (w Window) SetMaximized(maximized bool) {
	if maximized {
		w.Maximize()
		return
	}

	if api.IsZoomed(w.hwnd) {
		w.Restore()
	}
}

// SetMinimized drives the window into or out of the minimized state,
// following the same conditional-no-op rule as SetMaximized: setting false
// on a window that is not minimized does nothing, while setting false on a
// minimized window issues exactly one OpenIcon restore.
func (w Window) SetMinimized(minimized bool) error {
	if minimized {
		w.Minimize()
		return nil
	}

	if api.IsIconic(w.hwnd) {
		return w.OpenIcon()
	}

	return nil
}

// OpenIcon restores a minimized window to its previous size and position and
// activates it.
func (w Window) OpenIcon() error {
	if ret := api.OpenIcon(w.hwnd); ret == 0 {
		return lastCallError("OpenIcon")
	}

	return nil
}

// Close activates the window and minimizes it. Despite the native name this
// does not destroy the window.
func (w Window) Close() error {
	if ret := api.CloseWindow(w.hwnd); ret == 0 {
		return lastCallError("CloseWindow")
	}

	return nil
}

// Destroy destroys the window. Only a window created by the calling thread
// can be destroyed this way.
func (w Window) Destroy() error {
	if ret := api.DestroyWindow(w.hwnd); ret == 0 {
		return lastCallError("DestroyWindow")
	}

	return nil
}

// Placement returns the window's show state together with its minimized,
// maximized and restored positions.
func (w Window) Placement() (WindowPlacement, error) {
	wp, ret := api.GetWindowPlacement(w.hwnd)
	if ret == 0 {
		return WindowPlacement{}, lastCallError("GetWindowPlacement")
	}

	return WindowPlacement{
		ShowCmd:        ShowCmd(wp.ShowCmd),
		Flags:          wp.Flags,
		MinPosition:    pointFromNative(wp.PtMinPosition),
		MaxPosition:    pointFromNative(wp.PtMaxPosition),
		NormalPosition: rectFromNative(wp.RcNormalPosition),
	}, nil
}

// Animate shows or hides the window with a roll, slide, center or blend
// animation over the given duration. AnimActivate and AnimHide conflict and
// are rejected before any native call is issued. The native call's own
// result is not inspected.
func (w Window) Animate(d time.Duration, flags AnimationFlags) error {
	if flags&AnimActivate != 0 && flags&AnimHide != 0 {
		return &ValidationError{Reason: "animation flags cannot combine AnimActivate with AnimHide"}
	}

	api.AnimateWindow(w.hwnd, uint32(d.Milliseconds()), uint32(flags))
	return nil
}

// ThreadProcessID returns the id of the thread that created the window and
// the id of the process that owns that thread.
func (w Window) ThreadProcessID() (tid, pid uint32) {
	return api.GetWindowThreadProcessID(w.hwnd)
}
