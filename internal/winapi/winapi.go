// Package winapi declares the fixed set of user32, kernel32 and shcore entry
// points that the facade is allowed to reach. Each native call has exactly one
// statically declared binding with a checked Go signature; there is no
// by-name dynamic dispatch.
//
// Methods that wrap calls using the zero/null failure convention return the
// raw uintptr result and leave the translation of zero results to the caller,
// which must read the thread-local last-error slot immediately if it wants
// the failure code (see Caller.GetLastError).
package winapi

// Caller is the native call boundary. The real implementation talks to the
// operating system; tests substitute an in-memory fake.
type Caller interface {
	AnimateWindow(hwnd uintptr, milliseconds, flags uint32) uintptr
	BringWindowToTop(hwnd uintptr) uintptr
	ClipCursor(r *RECT) uintptr
	CloseWindow(hwnd uintptr) uintptr
	DestroyWindow(hwnd uintptr) uintptr
	EnumWindows(visit func(hwnd uintptr) bool)
	FindWindow(name string) uintptr
	FormatMessage(code uint32) string
	GetActiveWindow() uintptr
	GetClientRect(hwnd uintptr) (RECT, uintptr)
	GetCursorPos() (POINT, uintptr)
	GetDesktopWindow() uintptr
	GetForegroundWindow() uintptr

	// GetLastError reads the calling thread's last-error slot. The value is
	// only meaningful when no other native call has run on the thread since
	// the failing call; every method on this interface may overwrite it.
	GetLastError() uint32

	GetScaleFactorForDevice(deviceType uint32) uintptr
	GetWindow(hwnd uintptr, cmd uint32) uintptr
	GetWindowPlacement(hwnd uintptr) (WINDOWPLACEMENT, uintptr)
	GetWindowRect(hwnd uintptr) (RECT, uintptr)
	GetWindowText(hwnd uintptr, buf []uint16) int32
	GetWindowTextLength(hwnd uintptr) int32
	GetWindowThreadProcessID(hwnd uintptr) (tid, pid uint32)
	IsChild(parent, child uintptr) bool
	IsIconic(hwnd uintptr) bool
	IsProcessDPIAware() bool
	IsWindow(hwnd uintptr) bool
	IsWindowUnicode(hwnd uintptr) bool
	IsWindowVisible(hwnd uintptr) bool
	IsZoomed(hwnd uintptr) bool
	LockSetForegroundWindow(lockCode uint32) uintptr
	LogicalToPhysicalPoint(hwnd uintptr, p *POINT) uintptr
	MessageBox(owner uintptr, text, caption string, boxType uint32) uintptr
	MonitorFromPoint(p POINT, flags uint32) uintptr
	MonitorFromRect(r RECT, flags uint32) uintptr
	MonitorFromWindow(hwnd uintptr, flags uint32) uintptr
	MoveWindow(hwnd uintptr, x, y, width, height int32, repaint bool) uintptr
	OpenIcon(hwnd uintptr) uintptr
	PhysicalToLogicalPoint(hwnd uintptr, p *POINT) uintptr
	SetForegroundWindow(hwnd uintptr) uintptr
	SetWindowPos(hwnd, insertAfter uintptr, x, y, cx, cy int32, flags uint32) uintptr
	SetWindowText(hwnd uintptr, text string) uintptr
	ShowWindow(hwnd uintptr, cmd int32) uintptr
	ShowWindowAsync(hwnd uintptr, cmd int32) uintptr
	WaitMessage() uintptr
	WindowFromPhysicalPoint(p POINT) uintptr
	WindowFromPoint(p POINT) uintptr
}
