// Package testutil provides an in-memory winapi.Caller for tests, with a
// call log and a simulated thread-local last-error slot.
package testutil

import (
	"fmt"
	"unicode/utf16"

	"github.com/Norgate-AV/winkit/internal/winapi"
)

// WindowState is the mock's picture of one window.
type WindowState struct {
	Title   string
	Visible bool
	Iconic  bool
	Zoomed  bool
	Unicode bool
	Rect    winapi.RECT
	Client  winapi.RECT
	Flags   uint32 // WINDOWPLACEMENT flag bits
	TID     uint32
	PID     uint32
	Parent  uintptr
}

type related struct {
	hwnd uintptr
	cmd  uint32
}

// MockCaller implements winapi.Caller against an in-memory window table.
//
// Every method appends the native entry-point name to Calls and, except for
// GetLastError and FormatMessage, overwrites the simulated last-error slot:
// with the planted code when the call was forced to fail, with zero
// otherwise. That models the ordering hazard of the real slot: interleave
// any call between a failure and its retrieval and the code is gone.
type MockCaller struct {
	Calls []string

	lastError uint32

	failures    map[string]uint32 // entry point -> planted error code
	windows     map[uintptr]*WindowState
	findResults map[string]uintptr
	relations   map[related]uintptr
	messages    map[uint32]string
	enumOrder   []uintptr

	physicalOffset   winapi.POINT
	foreground       uintptr
	active           uintptr
	desktop          uintptr
	messageBoxID     uintptr
	monitor          uintptr
	scaleFactor      uintptr
	cursor           winapi.POINT
	dpiAware         bool
	foregroundLocked bool
}

func NewMockCaller() *MockCaller {
	return &MockCaller{
		failures:     map[string]uint32{},
		windows:      map[uintptr]*WindowState{},
		findResults:  map[string]uintptr{},
		relations:    map[related]uintptr{},
		messages:     map[uint32]string{},
		desktop:      0x10010,
		messageBoxID: winapi.IDOK,
		monitor:      0x2001,
		scaleFactor:  100,
	}
}

// Fluent configuration, builder style.

// WithWindow registers a window under the given handle.
func (m *MockCaller) WithWindow(hwnd uintptr, state WindowState) *MockCaller {
	s := state
	m.windows[hwnd] = &s
	m.enumOrder = append(m.enumOrder, hwnd)

	return m
}

// WithFailure forces the named entry point to report failure and plants the
// error code the last-error slot will hold immediately afterwards.
func (m *MockCaller) WithFailure(call string, code uint32) *MockCaller {
	m.failures[call] = code
	return m
}

// WithFindResult maps a FindWindowW title lookup to a handle.
func (m *MockCaller) WithFindResult(title string, hwnd uintptr) *MockCaller {
	m.findResults[title] = hwnd
	return m
}

// WithRelated maps a GetWindow(hwnd, cmd) query to a handle.
func (m *MockCaller) WithRelated(hwnd uintptr, cmd uint32, result uintptr) *MockCaller {
	m.relations[related{hwnd: hwnd, cmd: cmd}] = result
	return m
}

// WithMessage registers the FormatMessageW text for an error code.
func (m *MockCaller) WithMessage(code uint32, text string) *MockCaller {
	m.messages[code] = text
	return m
}

func (m *MockCaller) WithForeground(hwnd uintptr) *MockCaller {
	m.foreground = hwnd
	return m
}

func (m *MockCaller) WithActive(hwnd uintptr) *MockCaller {
	m.active = hwnd
	return m
}

func (m *MockCaller) WithDesktop(hwnd uintptr) *MockCaller {
	m.desktop = hwnd
	return m
}

// WithMessageBoxResult sets the button id MessageBoxW reports, e.g.
// winapi.IDCANCEL for a user pressing Cancel.
func (m *MockCaller) WithMessageBoxResult(id uintptr) *MockCaller {
	m.messageBoxID = id
	return m
}

func (m *MockCaller) WithMonitor(hmonitor uintptr) *MockCaller {
	m.monitor = hmonitor
	return m
}

func (m *MockCaller) WithScaleFactor(percent uintptr) *MockCaller {
	m.scaleFactor = percent
	return m
}

func (m *MockCaller) WithCursorPos(x, y int32) *MockCaller {
	m.cursor = winapi.POINT{X: x, Y: y}
	return m
}

func (m *MockCaller) WithDPIAware(aware bool) *MockCaller {
	m.dpiAware = aware
	return m
}

// WithPhysicalOffset models a virtualized desktop where physical coordinates
// sit at a fixed offset from logical ones.
func (m *MockCaller) WithPhysicalOffset(dx, dy int32) *MockCaller {
	m.physicalOffset = winapi.POINT{X: dx, Y: dy}
	return m
}

// Window returns the mutable state registered for hwnd, creating an empty
// record when none exists. Tests use it to assert post-call state.
func (m *MockCaller) Window(hwnd uintptr) *WindowState {
	s, ok := m.windows[hwnd]
	if !ok {
		s = &WindowState{}
		m.windows[hwnd] = s
	}

	return s
}

// ForegroundLocked reports the state driven by LockSetForegroundWindow.
func (m *MockCaller) ForegroundLocked() bool {
	return m.foregroundLocked
}

// CallsNamed returns how many times the named entry point was invoked.
func (m *MockCaller) CallsNamed(name string) int {
	n := 0
	for _, c := range m.Calls {
		if c == name {
			n++
		}
	}

	return n
}

// record logs the call, updates the last-error slot, and reports whether the
// call was forced to fail.
func (m *MockCaller) record(call string) (failed bool) {
	m.Calls = append(m.Calls, call)

	if code, ok := m.failures[call]; ok {
		m.lastError = code
		return true
	}

	// A successful call leaves the slot in an unspecified state for any
	// earlier failure; zero is as good a stand-in as any.
	m.lastError = 0

	return false
}

// winapi.Caller implementation.

func (m *MockCaller) AnimateWindow(hwnd uintptr, milliseconds, flags uint32) uintptr {
	if m.record("AnimateWindow") {
		return 0
	}

	w := m.Window(hwnd)
	if flags&winapi.AW_HIDE != 0 {
		w.Visible = false
	} else {
		w.Visible = true
	}

	return 1
}

func (m *MockCaller) BringWindowToTop(hwnd uintptr) uintptr {
	if m.record("BringWindowToTop") {
		return 0
	}

	return 1
}

func (m *MockCaller) ClipCursor(r *winapi.RECT) uintptr {
	if m.record("ClipCursor") {
		return 0
	}

	return 1
}

func (m *MockCaller) CloseWindow(hwnd uintptr) uintptr {
	if m.record("CloseWindow") {
		return 0
	}

	m.Window(hwnd).Iconic = true

	return 1
}

func (m *MockCaller) DestroyWindow(hwnd uintptr) uintptr {
	if m.record("DestroyWindow") {
		return 0
	}

	delete(m.windows, hwnd)

	return 1
}

func (m *MockCaller) EnumWindows(visit func(hwnd uintptr) bool) {
	m.record("EnumWindows")

	for _, hwnd := range m.enumOrder {
		if _, ok := m.windows[hwnd]; !ok {
			continue
		}
		if !visit(hwnd) {
			return
		}
	}
}

func (m *MockCaller) FindWindow(name string) uintptr {
	if m.record("FindWindowW") {
		return 0
	}

	return m.findResults[name]
}

func (m *MockCaller) FormatMessage(code uint32) string {
	// Deliberately not recorded as slot-clobbering: the facade calls it as
	// part of error retrieval, after reading the code.
	m.Calls = append(m.Calls, "FormatMessageW")

	if text, ok := m.messages[code]; ok {
		return text
	}

	return fmt.Sprintf("simulated error %d", code)
}

func (m *MockCaller) GetActiveWindow() uintptr {
	m.record("GetActiveWindow")
	return m.active
}

func (m *MockCaller) GetClientRect(hwnd uintptr) (winapi.RECT, uintptr) {
	if m.record("GetClientRect") {
		return winapi.RECT{}, 0
	}

	return m.Window(hwnd).Client, 1
}

func (m *MockCaller) GetCursorPos() (winapi.POINT, uintptr) {
	if m.record("GetCursorPos") {
		return winapi.POINT{}, 0
	}

	return m.cursor, 1
}

func (m *MockCaller) GetDesktopWindow() uintptr {
	m.record("GetDesktopWindow")
	return m.desktop
}

func (m *MockCaller) GetForegroundWindow() uintptr {
	m.record("GetForegroundWindow")
	return m.foreground
}

func (m *MockCaller) GetLastError() uint32 {
	// Reads the slot without disturbing it, like the real call.
	m.Calls = append(m.Calls, "GetLastError")
	return m.lastError
}

func (m *MockCaller) GetScaleFactorForDevice(deviceType uint32) uintptr {
	m.record("GetScaleFactorForDevice")
	return m.scaleFactor
}

func (m *MockCaller) GetWindow(hwnd uintptr, cmd uint32) uintptr {
	if m.record("GetWindow") {
		return 0
	}

	return m.relations[related{hwnd: hwnd, cmd: cmd}]
}

func (m *MockCaller) GetWindowPlacement(hwnd uintptr) (winapi.WINDOWPLACEMENT, uintptr) {
	if m.record("GetWindowPlacement") {
		return winapi.WINDOWPLACEMENT{}, 0
	}

	w := m.Window(hwnd)

	wp := winapi.WINDOWPLACEMENT{
		Flags:            w.Flags,
		ShowCmd:          uint32(winapi.SW_SHOWNORMAL),
		RcNormalPosition: w.Rect,
	}
	wp.Length = 44 // size is irrelevant to the fake

	switch {
	case w.Iconic:
		wp.ShowCmd = winapi.SW_SHOWMINIMIZED
	case w.Zoomed:
		wp.ShowCmd = winapi.SW_SHOWMAXIMIZED
	}

	return wp, 1
}

func (m *MockCaller) GetWindowRect(hwnd uintptr) (winapi.RECT, uintptr) {
	if m.record("GetWindowRect") {
		return winapi.RECT{}, 0
	}

	return m.Window(hwnd).Rect, 1
}

func (m *MockCaller) GetWindowText(hwnd uintptr, buf []uint16) int32 {
	if m.record("GetWindowTextW") {
		return 0
	}

	encoded := utf16.Encode([]rune(m.Window(hwnd).Title))

	n := copy(buf, encoded)
	if n < len(buf) {
		buf[n] = 0
	}

	return int32(n)
}

func (m *MockCaller) GetWindowTextLength(hwnd uintptr) int32 {
	if m.record("GetWindowTextLengthW") {
		return 0
	}

	return int32(len(utf16.Encode([]rune(m.Window(hwnd).Title))))
}

func (m *MockCaller) GetWindowThreadProcessID(hwnd uintptr) (tid, pid uint32) {
	m.record("GetWindowThreadProcessId")

	w := m.Window(hwnd)
	return w.TID, w.PID
}

func (m *MockCaller) IsChild(parent, child uintptr) bool {
	m.record("IsChild")
	return m.Window(child).Parent == parent && parent != 0
}

func (m *MockCaller) IsIconic(hwnd uintptr) bool {
	m.record("IsIconic")
	return m.Window(hwnd).Iconic
}

func (m *MockCaller) IsProcessDPIAware() bool {
	m.record("IsProcessDPIAware")
	return m.dpiAware
}

func (m *MockCaller) IsWindow(hwnd uintptr) bool {
	m.record("IsWindow")

	_, ok := m.windows[hwnd]
	return ok
}

func (m *MockCaller) IsWindowUnicode(hwnd uintptr) bool {
	m.record("IsWindowUnicode")
	return m.Window(hwnd).Unicode
}

func (m *MockCaller) IsWindowVisible(hwnd uintptr) bool {
	m.record("IsWindowVisible")
	return m.Window(hwnd).Visible
}

func (m *MockCaller) IsZoomed(hwnd uintptr) bool {
	m.record("IsZoomed")
	return m.Window(hwnd).Zoomed
}

func (m *MockCaller) LockSetForegroundWindow(lockCode uint32) uintptr {
	if m.record("LockSetForegroundWindow") {
		return 0
	}

	m.foregroundLocked = lockCode == winapi.LSFW_LOCK

	return 1
}

func (m *MockCaller) LogicalToPhysicalPoint(hwnd uintptr, p *winapi.POINT) uintptr {
	if m.record("LogicalToPhysicalPoint") {
		return 0
	}

	p.X += m.physicalOffset.X
	p.Y += m.physicalOffset.Y

	return 1
}

func (m *MockCaller) MessageBox(owner uintptr, text, caption string, boxType uint32) uintptr {
	if m.record("MessageBoxW") {
		return 0
	}

	return m.messageBoxID
}

func (m *MockCaller) MonitorFromPoint(p winapi.POINT, flags uint32) uintptr {
	m.record("MonitorFromPoint")
	return m.monitorFor(flags)
}

func (m *MockCaller) MonitorFromRect(r winapi.RECT, flags uint32) uintptr {
	m.record("MonitorFromRect")
	return m.monitorFor(flags)
}

func (m *MockCaller) MonitorFromWindow(hwnd uintptr, flags uint32) uintptr {
	m.record("MonitorFromWindow")
	return m.monitorFor(flags)
}

// monitorFor models a desktop where nothing matches exactly: the fallback
// flag alone decides the answer.
func (m *MockCaller) monitorFor(flags uint32) uintptr {
	if flags == winapi.MONITOR_DEFAULTTONULL {
		return 0
	}

	return m.monitor
}

func (m *MockCaller) MoveWindow(hwnd uintptr, x, y, width, height int32, repaint bool) uintptr {
	if m.record("MoveWindow") {
		return 0
	}

	m.Window(hwnd).Rect = winapi.RECT{Left: x, Top: y, Right: x + width, Bottom: y + height}

	return 1
}

func (m *MockCaller) OpenIcon(hwnd uintptr) uintptr {
	if m.record("OpenIcon") {
		return 0
	}

	w := m.Window(hwnd)
	w.Iconic = false
	w.Visible = true

	return 1
}

func (m *MockCaller) PhysicalToLogicalPoint(hwnd uintptr, p *winapi.POINT) uintptr {
	if m.record("PhysicalToLogicalPoint") {
		return 0
	}

	p.X -= m.physicalOffset.X
	p.Y -= m.physicalOffset.Y

	return 1
}

func (m *MockCaller) SetForegroundWindow(hwnd uintptr) uintptr {
	if m.record("SetForegroundWindow") {
		return 0
	}

	m.foreground = hwnd

	return 1
}

func (m *MockCaller) SetWindowPos(hwnd, insertAfter uintptr, x, y, cx, cy int32, flags uint32) uintptr {
	if m.record("SetWindowPos") {
		return 0
	}

	w := m.Window(hwnd)
	if flags&winapi.SWP_NOMOVE == 0 && flags&winapi.SWP_NOSIZE == 0 {
		w.Rect = winapi.RECT{Left: x, Top: y, Right: x + cx, Bottom: y + cy}
	}

	return 1
}

func (m *MockCaller) SetWindowText(hwnd uintptr, text string) uintptr {
	if m.record("SetWindowTextW") {
		return 0
	}

	m.Window(hwnd).Title = text

	return 1
}

func (m *MockCaller) ShowWindow(hwnd uintptr, cmd int32) uintptr {
	if m.record("ShowWindow") {
		return 0
	}

	return m.applyShowCmd(hwnd, cmd)
}

func (m *MockCaller) ShowWindowAsync(hwnd uintptr, cmd int32) uintptr {
	if m.record("ShowWindowAsync") {
		return 0
	}

	// The real call only acknowledges that the request was posted; the fake
	// applies it immediately, which is the most useful approximation.
	m.applyShowCmd(hwnd, cmd)

	return 1
}

// applyShowCmd mutates window state the way ShowWindow does and returns the
// prior visibility as the native result (nonzero when the window was
// visible before the call).
func (m *MockCaller) applyShowCmd(hwnd uintptr, cmd int32) uintptr {
	w := m.Window(hwnd)

	var prev uintptr
	if w.Visible {
		prev = 1
	}

	switch cmd {
	case winapi.SW_HIDE:
		w.Visible = false
	case winapi.SW_SHOW, winapi.SW_SHOWNORMAL, winapi.SW_SHOWNA, winapi.SW_SHOWNOACTIVATE:
		w.Visible = true
	case winapi.SW_SHOWMAXIMIZED:
		w.Visible = true
		w.Zoomed = true
		w.Iconic = false
	case winapi.SW_SHOWMINIMIZED, winapi.SW_MINIMIZE, winapi.SW_SHOWMINNOACTIVE, winapi.SW_FORCEMINIMIZE:
		w.Visible = true
		w.Iconic = true
	case winapi.SW_RESTORE:
		w.Visible = true
		w.Iconic = false
		w.Zoomed = false
	}

	return prev
}

func (m *MockCaller) WaitMessage() uintptr {
	if m.record("WaitMessage") {
		return 0
	}

	return 1
}

func (m *MockCaller) WindowFromPhysicalPoint(p winapi.POINT) uintptr {
	m.record("WindowFromPhysicalPoint")
	return m.windowAt(p)
}

func (m *MockCaller) WindowFromPoint(p winapi.POINT) uintptr {
	m.record("WindowFromPoint")
	return m.windowAt(p)
}

func (m *MockCaller) windowAt(p winapi.POINT) uintptr {
	for _, hwnd := range m.enumOrder {
		w, ok := m.windows[hwnd]
		if !ok || !w.Visible {
			continue
		}
		r := w.Rect
		if p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom {
			return hwnd
		}
	}

	return 0
}

var _ winapi.Caller = (*MockCaller)(nil)
