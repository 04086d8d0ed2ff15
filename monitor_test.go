package winkit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/winkit/internal/testutil"
)

func TestMonitorFromPoint_NearestFallback(t *testing.T) {
	mock := installMock(t)
	mock.WithMonitor(0x2001)

	// A point off every display still resolves under the nearest fallback.
	m := MonitorFromPoint(-10000, -10000, NearestMonitor)

	assert.True(t, m.Valid())
	assert.Equal(t, uintptr(0x2001), m.Handle())
}

func TestMonitorFromPoint_NullFallback(t *testing.T) {
	installMock(t)

	m := MonitorFromPoint(-10000, -10000, NullOnNoMatch)

	// NullOnNoMatch is the only fallback that can produce an invalid
	// Monitor, and that is not an error.
	assert.False(t, m.Valid())
}

func TestMonitorFromRect(t *testing.T) {
	mock := installMock(t)
	mock.WithMonitor(0x2002)

	m := MonitorFromRect(rect(0, 0, 800, 600), PrimaryMonitor)

	assert.True(t, m.Valid())
	assert.Equal(t, uintptr(0x2002), m.Handle())
}

func TestMonitorFromWindow(t *testing.T) {
	mock := installMock(t)
	mock.WithWindow(0x10, testutil.WindowState{Visible: true}).
		WithMonitor(0x2003)

	w, _ := NewWindow(0x10)

	m := MonitorFromWindow(w, NearestMonitor)

	assert.True(t, m.Valid())
	assert.Equal(t, uintptr(0x2003), m.Handle())
}

func TestScaleFactorForDevice(t *testing.T) {
	mock := installMock(t)
	mock.WithScaleFactor(150)

	assert.Equal(t, 150, ScaleFactorForDevice())
}

func TestMonitor_DPI_NotImplemented(t *testing.T) {
	installMock(t)

	m := MonitorFromPoint(0, 0, PrimaryMonitor)

	_, _, err := m.DPI()
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestMonitor_Info_NotImplemented(t *testing.T) {
	installMock(t)

	m := MonitorFromPoint(0, 0, PrimaryMonitor)

	assert.ErrorIs(t, m.Info(), ErrNotImplemented)
}
