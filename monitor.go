package winkit

import "github.com/Norgate-AV/winkit/internal/winapi"

// Monitor wraps a native display-monitor handle. Unlike window handles, no
// recycling concern is documented for monitor handles.
type Monitor struct {
	hmonitor uintptr
}

// Handle returns the raw native monitor handle value.
func (m Monitor) Handle() uintptr {
	return m.hmonitor
}

// Valid reports whether the handle names a monitor. Only the NullOnNoMatch
// fallback can produce an invalid Monitor.
func (m Monitor) Valid() bool {
	return m.hmonitor != 0
}

// MonitorFromPoint returns the monitor containing the given screen point.
// The lookup never fails: fallback selects what is returned when no monitor
// contains the point (nearest monitor, primary monitor, or an invalid
// Monitor for NullOnNoMatch).
func MonitorFromPoint(x, y int32, fallback MonitorFallback) Monitor {
	return Monitor{hmonitor: api.MonitorFromPoint(winapi.POINT{X: x, Y: y}, uint32(fallback))}
}

// MonitorFromRect returns the monitor with the largest intersection with r,
// with the same fallback behavior as MonitorFromPoint.
func MonitorFromRect(r Rect, fallback MonitorFallback) Monitor {
	return Monitor{hmonitor: api.MonitorFromRect(r.native(), uint32(fallback))}
}

// MonitorFromWindow returns the monitor with the largest intersection with
// the window's bounding rectangle, with the same fallback behavior as
// MonitorFromPoint.
func MonitorFromWindow(w Window, fallback MonitorFallback) Monitor {
	return Monitor{hmonitor: api.MonitorFromWindow(w.hwnd, uint32(fallback))}
}

// ScaleFactorForDevice returns the primary display's scale factor as an
// integer percentage, e.g. 150 for a monitor scaled to 150%.
func ScaleFactorForDevice() int {
	return int(api.GetScaleFactorForDevice(0))
}

// DPI is not implemented. The per-monitor DPI query was never finished and
// guessing its binary contract would be worse than failing loudly.
func (m Monitor) DPI() (x, y uint32, err error) {
	return 0, 0, ErrNotImplemented
}

// Info is not implemented. The extended monitor-info query was never
// finished; see DPI.
func (m Monitor) Info() error {
	return ErrNotImplemented
}
